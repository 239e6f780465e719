package notification

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the subset of *amqp091.Channel the service needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQNotificationService struct {
	Channel Publisher
	Queue   string
	Log     *zap.Logger
}

func NewRabbitMQNotificationService(channel Publisher, queue string, logger *zap.Logger) contracts.NotificationService {
	return &rabbitMQNotificationService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *rabbitMQNotificationService) PublishAppointmentNotification(ctx context.Context, message *requests.AppointmentNotification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("rabbitMQNotificationService.PublishAppointmentNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, message.AppointmentID),
		zap.String(constvars.LoggingNotificationTypeKey, message.Type),
	)

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    message.AppointmentID + ":" + message.Type,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
			"request_id":       requestID,
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, publishing)
	if err != nil {
		s.Log.Error("rabbitMQNotificationService.PublishAppointmentNotification error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("rabbitMQNotificationService.PublishAppointmentNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)
	return nil
}
