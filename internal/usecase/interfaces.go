package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/cirkidz-admin/internal/clock"
	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
	"github.com/xavierca1/cirkidz-admin/internal/infra/notify"
	"github.com/xavierca1/cirkidz-admin/internal/infra/queue"
)

type Store interface {
	Atomic(fn func(tx *database.Collections) error) error
	View(fn func(c *database.Collections))
}

type Notifier interface {
	Notify(kind notify.Kind, message string)
}

type EventPublisher interface {
	PublishLifecycle(ctx context.Context, event queue.LifecycleEvent) error
}

// Deps is what every use case is built from.
type Deps struct {
	Store     Store
	Notifier  Notifier
	Publisher EventPublisher
	Clock     clock.Clock
	// Location is the school's timezone; "today" and zone-less timestamps
	// are read in it.
	Location *time.Location
}

func (d Deps) now() time.Time {
	c := d.Clock
	if c == nil {
		c = clock.Real()
	}
	return c.Now().In(d.location())
}

func (d Deps) location() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

func (d Deps) today() string {
	return d.now().Format(entity.DateLayout)
}

func (d Deps) success(message string) {
	if d.Notifier != nil {
		d.Notifier.Notify(notify.KindSuccess, message)
	}
}

// reject reports a validation failure to the user and returns it.
func (d Deps) reject(field, message string) error {
	if d.Notifier != nil {
		d.Notifier.Notify(notify.KindError, message)
	}
	return &ValidationError{Field: field, Message: message}
}
