package contracts

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/dto/requests"
	"context"
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient, document *models.IdentificationDocument) (*models.Patient, error)
	GetPatientByUserID(ctx context.Context, userID string) (*models.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	FindByIDs(ctx context.Context, patientIDs []string) (map[string]models.Patient, error)
}
