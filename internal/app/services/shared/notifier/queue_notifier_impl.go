package notifier

import (
	"context"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// QueueMessage is the notification body published for a downstream delivery worker.
type QueueMessage struct {
	MessageID string    `json:"messageId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// publisher is the part of *amqp091.Channel the queue notifier uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type queueNotifier struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

func NewQueueNotifier(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.UserNotifier, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}
	return &queueNotifier{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (s *queueNotifier) NotifyUser(ctx context.Context, userID, message string) (*contracts.NotificationResult, error) {
	requestID := utils.GetRequestID(ctx)

	s.Log.Info("queueNotifier.NotifyUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	payload := QueueMessage{
		MessageID: uuid.NewString(),
		UserID:    userID,
		Text:      message,
		CreatedAt: time.Now().UTC(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		s.Log.Error("queueNotifier.NotifyUser error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    payload.MessageID,
		Timestamp:    payload.CreatedAt,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, publishing)
	if err != nil {
		s.Log.Error("queueNotifier.NotifyUser error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return nil, exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("queueNotifier.NotifyUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)

	return &contracts.NotificationResult{OK: true, TS: payload.MessageID}, nil
}
