package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Execute(ctx context.Context) (*usecase.DashboardOutput, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*usecase.DashboardOutput)
	return out, args.Error(1)
}

func TestSweepReportsOverdueCount(t *testing.T) {
	summary := new(MockSummarizer)
	summary.On("Execute", mock.Anything).Return(&usecase.DashboardOutput{OverdueFollowUps: 3, Today: "2025-11-14"}, nil).Once()

	var got int
	w := NewOverdueFollowUpWorker(summary, func(n int) { got = n }, time.Minute)
	w.sweep(context.Background())

	assert.Equal(t, 3, got)
	summary.AssertExpectations(t)
}

func TestSweepSkipsReportOnError(t *testing.T) {
	summary := new(MockSummarizer)
	summary.On("Execute", mock.Anything).Return(nil, errors.New("boom"))

	called := false
	w := NewOverdueFollowUpWorker(summary, func(int) { called = true }, time.Minute)
	w.sweep(context.Background())

	assert.False(t, called)
}

func TestStartSweepsImmediatelyAndStops(t *testing.T) {
	summary := new(MockSummarizer)
	summary.On("Execute", mock.Anything).Return(&usecase.DashboardOutput{OverdueFollowUps: 1}, nil)

	var (
		mu    sync.Mutex
		calls int
	)
	ctx, cancel := context.WithCancel(context.Background())
	w := NewOverdueFollowUpWorker(summary, func(int) {
		mu.Lock()
		calls++
		mu.Unlock()
		cancel()
	}, time.Hour)

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}
