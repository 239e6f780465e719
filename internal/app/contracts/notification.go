package contracts

import (
	"carepulse-service/internal/pkg/dto/requests"
	"context"
)

type NotificationService interface {
	PublishAppointmentNotification(ctx context.Context, message *requests.AppointmentNotification) error
}
