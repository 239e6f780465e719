package notification

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"context"

	"go.uber.org/zap"
)

// logNotificationService writes notifications to the log instead of a broker.
// It backs the memory store driver used for local runs.
type logNotificationService struct {
	Log *zap.Logger
}

func NewLogNotificationService(logger *zap.Logger) contracts.NotificationService {
	return &logNotificationService{Log: logger}
}

func (s *logNotificationService) PublishAppointmentNotification(ctx context.Context, message *requests.AppointmentNotification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("logNotificationService.PublishAppointmentNotification",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, message.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, message.AppointmentID),
		zap.String(constvars.LoggingNotificationTypeKey, message.Type),
		zap.String("content", message.Content),
	)
	return nil
}
