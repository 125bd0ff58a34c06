package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/cirkidz-admin/internal/clock"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
	"github.com/xavierca1/cirkidz-admin/internal/infra/notify"
	"github.com/xavierca1/cirkidz-admin/internal/infra/queue"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(kind notify.Kind, message string) {
	m.Called(kind, message)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishLifecycle(ctx context.Context, event queue.LifecycleEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var adelaide = time.FixedZone("ACDT", 10*3600+30*60)

// Friday of the seeded demo week.
var demoNow = time.Date(2025, 11, 14, 9, 30, 0, 0, adelaide)

type fixture struct {
	store     *database.DemoStore
	notifier  *MockNotifier
	publisher *MockPublisher
	clock     *clock.Fake
	deps      Deps
}

func newFixture() *fixture {
	f := &fixture{
		store:     database.NewDemoStore(database.MustDefaultSeed()),
		notifier:  new(MockNotifier),
		publisher: new(MockPublisher),
		clock:     clock.NewFake(demoNow),
	}
	f.deps = Deps{
		Store:     f.store,
		Notifier:  f.notifier,
		Publisher: f.publisher,
		Clock:     f.clock,
		Location:  adelaide,
	}
	return f
}

func (f *fixture) expectSuccess(message string) {
	f.notifier.On("Notify", notify.KindSuccess, message).Once()
}

func (f *fixture) expectError(message string) {
	f.notifier.On("Notify", notify.KindError, message).Once()
}
