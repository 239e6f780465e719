package appointments

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"context"
)

type appointmentRepository struct {
	Store contracts.DocumentStore
}

func NewAppointmentRepository(store contracts.DocumentStore) contracts.AppointmentRepository {
	return &appointmentRepository{
		Store: store,
	}
}

func (r *appointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	appointment.SetCreatedAtUpdatedAt()
	appointmentID, err := r.Store.CreateRecord(ctx, constvars.MongoCollectionAppointments, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID
	return appointment, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Store.GetRecord(ctx, constvars.MongoCollectionAppointments, appointmentID, &appointment)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// FindAllByRecency returns every appointment, newest first.
func (r *appointmentRepository) FindAllByRecency(ctx context.Context) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	query := contracts.Query{
		SortBy:     "createdAt",
		Descending: true,
	}
	err := r.Store.QueryRecords(ctx, constvars.MongoCollectionAppointments, query, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateAppointment(ctx context.Context, appointmentID string, fields map[string]interface{}) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Store.UpdateRecord(ctx, constvars.MongoCollectionAppointments, appointmentID, fields, &appointment)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
