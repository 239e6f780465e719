package contracts

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, patch models.AppointmentPatch) (*models.Appointment, error)
	ScheduleAppointment(ctx context.Context, appointmentID string, request *requests.ScheduleAppointment) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*models.Appointment, error)
	ListRecentAppointments(ctx context.Context) (*responses.RecentAppointments, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAllByRecency(ctx context.Context) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, fields map[string]interface{}) (*models.Appointment, error)
}
