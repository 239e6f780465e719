package notification

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	queue    string
	messages []amqp091.Publishing
	err      error
}

func (p *recordingPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if p.err != nil {
		return p.err
	}
	p.queue = key
	p.messages = append(p.messages, msg)
	return nil
}

func TestPublishAppointmentNotification(t *testing.T) {
	publisher := &recordingPublisher{}
	service := NewRabbitMQNotificationService(publisher, "appointment_notifications", zap.NewNop())

	message := &requests.AppointmentNotification{
		UserID:        "u1",
		AppointmentID: "a1",
		Type:          "schedule",
		Content:       "Greetings from CarePulse.",
	}
	require.NoError(t, service.PublishAppointmentNotification(context.Background(), message))

	require.Len(t, publisher.messages, 1)
	assert.Equal(t, "appointment_notifications", publisher.queue)

	published := publisher.messages[0]
	assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
	assert.Equal(t, constvars.MIMEApplicationJSON, published.ContentType)

	var decoded requests.AppointmentNotification
	require.NoError(t, json.Unmarshal(published.Body, &decoded))
	assert.Equal(t, *message, decoded)
}

func TestPublishAppointmentNotification_Error(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("channel closed")}
	service := NewRabbitMQNotificationService(publisher, "appointment_notifications", zap.NewNop())

	err := service.PublishAppointmentNotification(context.Background(), &requests.AppointmentNotification{AppointmentID: "a1"})
	assert.Error(t, err)
}
