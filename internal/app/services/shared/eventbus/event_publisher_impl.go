package eventbus

import (
	"context"
	"qsights-service/internal/app/contracts"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes questionnaire lifecycle events to a durable queue with
// publisher confirms enabled.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.EventQueueName, // name
		true,                     // durable
		false,                    // autoDelete
		false,                    // exclusive
		false,                    // noWait
		nil,                      // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	return &Service{ch: ch, log: log, confirms: confirms}, nil
}

func (s *Service) PublishQuestionnaireEvent(ctx context.Context, event contracts.QuestionnaireEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",                       // exchange
		constvars.EventQueueName, // routing key
		false,                    // mandatory
		false,                    // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.EventQueueName)
	}

	select {
	case confirm := <-s.confirms:
		if !confirm.Ack {
			return exceptions.ErrRabbitMQPublishMessage(nil, constvars.EventQueueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), constvars.EventQueueName)
	}

	s.log.Info("questionnaire event published",
		zap.String("type", event.Type),
		zap.String("questionnaire_id", event.QuestionnaireID),
		zap.Int("version", event.Version),
	)
	return nil
}
