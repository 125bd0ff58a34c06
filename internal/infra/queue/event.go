package queue

import (
	"context"
	"log"
	"time"
)

const EventEnrolmentCreated = "enrolment.created"

// LifecycleEvent is published after a cross-entity transition commits.
type LifecycleEvent struct {
	Type        string    `json:"type"`
	EnrolmentID string    `json:"enrolment_id"`
	Student     string    `json:"student"`
	Program     string    `json:"program"`
	SourceID    string    `json:"source_id"`
	Contact     string    `json:"contact,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishLifecycle(ctx context.Context, event LifecycleEvent) error
}

// LogPublisher is used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) PublishLifecycle(_ context.Context, event LifecycleEvent) error {
	log.Printf("📤 [QUEUE] %s %s (%s, %s)", event.Type, event.EnrolmentID, event.Student, event.Program)
	return nil
}
