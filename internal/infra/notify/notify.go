package notify

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/cirkidz-admin/internal/clock"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const DefaultTTL = 3 * time.Second

// Notifier is the fire-and-forget sink every operation reports to.
type Notifier interface {
	Notify(kind Kind, message string)
}

type Toast struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ToastQueue keeps transient notifications until they expire or are
// dismissed.
type ToastQueue struct {
	mu     sync.Mutex
	clock  clock.Clock
	ttl    time.Duration
	toasts map[string]Toast
	timers map[string]clock.Timer
}

func NewToastQueue(c clock.Clock, ttl time.Duration) *ToastQueue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ToastQueue{
		clock:  c,
		ttl:    ttl,
		toasts: make(map[string]Toast),
		timers: make(map[string]clock.Timer),
	}
}

func (q *ToastQueue) Notify(kind Kind, message string) {
	if kind == "" {
		kind = KindSuccess
	}
	toast := Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: q.clock.Now(),
	}

	q.mu.Lock()
	q.toasts[toast.ID] = toast
	q.mu.Unlock()

	timer := q.clock.AfterFunc(q.ttl, func() { q.Dismiss(toast.ID) })

	q.mu.Lock()
	if _, alive := q.toasts[toast.ID]; alive {
		q.timers[toast.ID] = timer
	}
	q.mu.Unlock()
}

// Dismiss removes a toast and cancels its expiry timer. Unknown ids are
// ignored.
func (q *ToastQueue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.toasts, id)
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
}

// List returns active toasts, oldest first.
func (q *ToastQueue) List() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Notify(kind Kind, message string) {
	if kind == KindError {
		log.Printf("⚠️ [NOTIFY] %s", message)
		return
	}
	log.Printf("✅ [NOTIFY] %s", message)
}

// Multi fans a notification out to several sinks.
type Multi []Notifier

func (m Multi) Notify(kind Kind, message string) {
	for _, n := range m {
		n.Notify(kind, message)
	}
}
