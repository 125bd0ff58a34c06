package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EnrolmentMailer sends the office notice for a new enrolment.
type EnrolmentMailer interface {
	SendEnrolmentNotice(student, program, enrolmentID string) error
}

type consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

var errMalformed = errors.New("malformed lifecycle event")

// Integration names used when reporting failures.
const (
	ServiceRabbitMQ = "rabbitmq"
	ServiceSMTP     = "smtp"
)

type Worker struct {
	Channel     consumer
	Mailer      EnrolmentMailer
	ReportError func(service string)
}

func NewWorker(ch consumer, mailer EnrolmentMailer) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

// Start consumes queueName until ctx is cancelled or the delivery channel
// closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("register consumer on %s: %w", queueName, err)
	}

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ [WORKER] stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	log.Printf("📥 [WORKER] message received (%s)", d.Type)

	if err := w.HandleDelivery(ctx, d.Body); err != nil {
		log.Printf("❌ [WORKER] %v", err)
		// malformed or failed messages go to the DLQ instead of looping
		d.Nack(false, false)
		return
	}
	d.Ack(false)
}

// HandleDelivery decodes one message body and routes it by event type.
func (w *Worker) HandleDelivery(ctx context.Context, body []byte) error {
	var event LifecycleEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}

	switch event.Type {
	case EventEnrolmentCreated:
		if w.Mailer == nil {
			return nil
		}
		if err := w.Mailer.SendEnrolmentNotice(event.Student, event.Program, event.EnrolmentID); err != nil {
			if w.ReportError != nil {
				w.ReportError(ServiceSMTP)
			}
			return fmt.Errorf("enrolment notice for %s: %w", event.EnrolmentID, err)
		}
		log.Printf("✅ [WORKER] enrolment notice sent for %s (%s)", event.Student, event.EnrolmentID)
		return nil
	default:
		log.Printf("⚠️ [WORKER] unknown event type %q, acking", event.Type)
		return nil
	}
}
