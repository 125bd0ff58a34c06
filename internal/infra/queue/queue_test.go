package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEnrolmentNotice(student, program, enrolmentID string) error {
	args := m.Called(student, program, enrolmentID)
	return args.Error(0)
}

type fakeAcknowledger struct {
	acked, nacked int
	requeue       bool
}

func (a *fakeAcknowledger) Ack(uint64, bool) error { a.acked++; return nil }
func (a *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}
func (a *fakeAcknowledger) Reject(uint64, bool) error { return nil }

func sampleEvent() LifecycleEvent {
	return LifecycleEvent{
		Type:        EventEnrolmentCreated,
		EnrolmentID: "en-42",
		Student:     "Mia Jenkins",
		Program:     "Youth Circus Foundation",
		SourceID:    "sf-8001",
		OccurredAt:  time.Date(2025, 11, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestProducerPublishesToConsoleExchange(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithContext", mock.Anything, ExchangeName, RoutingKey, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var got LifecycleEvent
			if err := json.Unmarshal(msg.Body, &got); err != nil {
				return false
			}
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.Type == EventEnrolmentCreated &&
				got.EnrolmentID == "en-42"
		})).Return(nil).Once()

	err := NewProducer(ch).PublishLifecycle(context.Background(), sampleEvent())

	require.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestProducerWrapsBrokerError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.ErrClosed)

	var reported []string
	p := NewProducer(ch)
	p.ReportError = func(service string) { reported = append(reported, service) }

	err := p.PublishLifecycle(context.Background(), sampleEvent())

	assert.ErrorIs(t, err, amqp.ErrClosed)
	assert.Equal(t, []string{ServiceRabbitMQ}, reported)
}

func TestWorkerSendsEnrolmentNotice(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("SendEnrolmentNotice", "Mia Jenkins", "Youth Circus Foundation", "en-42").Return(nil).Once()

	body, _ := json.Marshal(sampleEvent())
	ack := &fakeAcknowledger{}
	w := NewWorker(nil, mailer)
	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: body})

	assert.Equal(t, 1, ack.acked)
	assert.Equal(t, 0, ack.nacked)
	mailer.AssertExpectations(t)
}

func TestWorkerDeadLettersFailures(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("SendEnrolmentNotice", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	var reported []string
	w := NewWorker(nil, mailer)
	w.ReportError = func(service string) { reported = append(reported, service) }

	ack := &fakeAcknowledger{}
	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte("{not json")})
	assert.Equal(t, 1, ack.nacked)
	assert.False(t, ack.requeue)
	mailer.AssertNotCalled(t, "SendEnrolmentNotice", mock.Anything, mock.Anything, mock.Anything)

	body, _ := json.Marshal(sampleEvent())
	ack = &fakeAcknowledger{}
	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: body})
	assert.Equal(t, 1, ack.nacked)

	// only the mail failure counts as an integration error
	assert.Equal(t, []string{ServiceSMTP}, reported)
}

func TestWorkerAcksUnknownEvents(t *testing.T) {
	w := NewWorker(nil, nil)
	err := w.HandleDelivery(context.Background(), []byte(`{"type":"lead.created"}`))
	assert.NoError(t, err)
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	msgs := make(chan amqp.Delivery)
	ch := &stubConsumer{msgs: msgs}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- NewWorker(ch, nil).Start(ctx, QueueName) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, QueueName, ch.queue)
}

type stubConsumer struct {
	msgs  chan amqp.Delivery
	queue string
}

func (s *stubConsumer) Consume(queue, _ string, _, _, _, _ bool, _ amqp.Table) (<-chan amqp.Delivery, error) {
	s.queue = queue
	return s.msgs, nil
}
