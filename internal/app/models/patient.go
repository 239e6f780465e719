package models

import "time"

type Patient struct {
	ID                        string    `json:"id" bson:"_id,omitempty"`
	UserID                    string    `json:"userId" bson:"userId"`
	Name                      string    `json:"name" bson:"name"`
	Email                     string    `json:"email" bson:"email"`
	Phone                     string    `json:"phone" bson:"phone"`
	BirthDate                 time.Time `json:"birthDate" bson:"birthDate"`
	Gender                    string    `json:"gender" bson:"gender"`
	Address                   string    `json:"address" bson:"address"`
	Occupation                string    `json:"occupation" bson:"occupation"`
	EmergencyContactName      string    `json:"emergencyContactName" bson:"emergencyContactName"`
	EmergencyContactNumber    string    `json:"emergencyContactNumber" bson:"emergencyContactNumber"`
	PrimaryPhysician          string    `json:"primaryPhysician" bson:"primaryPhysician"`
	InsuranceProvider         string    `json:"insuranceProvider" bson:"insuranceProvider"`
	InsurancePolicyNumber     string    `json:"insurancePolicyNumber" bson:"insurancePolicyNumber"`
	Allergies                 string    `json:"allergies,omitempty" bson:"allergies,omitempty"`
	CurrentMedication         string    `json:"currentMedication,omitempty" bson:"currentMedication,omitempty"`
	FamilyMedicalHistory      string    `json:"familyMedicalHistory,omitempty" bson:"familyMedicalHistory,omitempty"`
	PastMedicalHistory        string    `json:"pastMedicalHistory,omitempty" bson:"pastMedicalHistory,omitempty"`
	IdentificationType        string    `json:"identificationType,omitempty" bson:"identificationType,omitempty"`
	IdentificationNumber      string    `json:"identificationNumber,omitempty" bson:"identificationNumber,omitempty"`
	IdentificationDocumentID  *string   `json:"identificationDocumentId" bson:"identificationDocumentId"`
	IdentificationDocumentURL *string   `json:"identificationDocumentUrl" bson:"identificationDocumentUrl"`
	TreatmentConsent          bool      `json:"treatmentConsent" bson:"treatmentConsent"`
	DisclosureConsent         bool      `json:"disclosureConsent" bson:"disclosureConsent"`
	PrivacyConsent            bool      `json:"privacyConsent" bson:"privacyConsent"`
	TimeModel                 `bson:",inline"`
}

// IdentificationDocument is an uploaded scan waiting to be stored next to a
// patient registration.
type IdentificationDocument struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}

// StoredObject is what the object store hands back after a successful put.
type StoredObject struct {
	ID  string
	URL string
}
