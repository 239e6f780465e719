package responses

import "carepulse-service/internal/app/models"

// PatientLookup distinguishes "no patient yet" from a failed read.
type PatientLookup struct {
	Found   bool            `json:"found"`
	Patient *models.Patient `json:"patient"`
}
