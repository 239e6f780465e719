package patients

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"context"
)

type patientRepository struct {
	Store contracts.DocumentStore
}

func NewPatientRepository(store contracts.DocumentStore) contracts.PatientRepository {
	return &patientRepository{
		Store: store,
	}
}

func (r *patientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	patient.SetCreatedAtUpdatedAt()
	patientID, err := r.Store.CreateRecord(ctx, constvars.MongoCollectionPatients, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID
	return patient, nil
}

func (r *patientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Store.GetRecord(ctx, constvars.MongoCollectionPatients, patientID, &patient)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// FindByUserID returns the oldest patient registered by the user, or nil.
func (r *patientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	var patients []models.Patient
	query := contracts.Query{
		Filters: []contracts.Filter{{Field: "userId", Value: userID}},
		SortBy:  "createdAt",
		Limit:   1,
	}
	err := r.Store.QueryRecords(ctx, constvars.MongoCollectionPatients, query, &patients)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, nil
	}
	return &patients[0], nil
}

func (r *patientRepository) FindByIDs(ctx context.Context, patientIDs []string) (map[string]models.Patient, error) {
	result := make(map[string]models.Patient, len(patientIDs))
	if len(patientIDs) == 0 {
		return result, nil
	}

	var patients []models.Patient
	query := contracts.Query{
		Filters: []contracts.Filter{{Field: "_id", Value: patientIDs}},
	}
	err := r.Store.QueryRecords(ctx, constvars.MongoCollectionPatients, query, &patients)
	if err != nil {
		return nil, err
	}
	for _, patient := range patients {
		result[patient.ID] = patient
	}
	return result, nil
}
