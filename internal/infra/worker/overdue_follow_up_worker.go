package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/cirkidz-admin/internal/usecase"
)

// Summarizer is satisfied by *usecase.DashboardUseCase.
type Summarizer interface {
	Execute(ctx context.Context) (*usecase.DashboardOutput, error)
}

// OverdueFollowUpWorker periodically counts follow-ups whose next action is
// past due and reports them. It only reads the store.
type OverdueFollowUpWorker struct {
	summary      Summarizer
	report       func(overdue int)
	tickInterval time.Duration
}

func NewOverdueFollowUpWorker(summary Summarizer, report func(overdue int), interval time.Duration) *OverdueFollowUpWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &OverdueFollowUpWorker{
		summary:      summary,
		report:       report,
		tickInterval: interval,
	}
}

func (w *OverdueFollowUpWorker) Start(ctx context.Context) {
	log.Printf("🕒 Overdue follow-up worker started (every %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Overdue follow-up worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OverdueFollowUpWorker) sweep(ctx context.Context) {
	out, err := w.summary.Execute(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("❌ Overdue sweep failed: %v", err)
		}
		return
	}

	if w.report != nil {
		w.report(out.OverdueFollowUps)
	}
	if out.OverdueFollowUps > 0 {
		log.Printf("⏱️ %d follow-up(s) overdue as of %s", out.OverdueFollowUps, out.Today)
	}
}
