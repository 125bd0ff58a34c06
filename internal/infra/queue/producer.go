package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// channelPublisher is the part of *amqp.Channel the producer needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch channelPublisher
	// ReportError is told about broker failures; nil ignores them.
	ReportError func(service string)
}

func NewProducer(ch channelPublisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishLifecycle(ctx context.Context, event LifecycleEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal lifecycle event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.console
		RoutingKey,   // k.lifecycle
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         event.Type,
			MessageId:    event.EnrolmentID,
			Timestamp:    event.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		if p.ReportError != nil {
			p.ReportError(ServiceRabbitMQ)
		}
		return fmt.Errorf("publish %s to RabbitMQ: %w", event.Type, err)
	}
	return nil
}
