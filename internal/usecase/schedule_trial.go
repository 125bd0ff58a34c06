package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type ScheduleTrialUseCase struct {
	Deps
}

func NewScheduleTrialUseCase(d Deps) *ScheduleTrialUseCase {
	return &ScheduleTrialUseCase{Deps: d}
}

// Execute books a trial for a lead and moves the lead to Trial Scheduled.
// An unknown lead returns (nil, nil).
func (uc *ScheduleTrialUseCase) Execute(ctx context.Context, input ScheduleTrialInput) (*entity.TrialBooking, error) {
	scheduledAt, at, err := uc.scheduleTime(input.ScheduledAt, msgTrialTimeRequired)
	if err != nil {
		return nil, err
	}

	var booking *entity.TrialBooking

	tx := NewTransaction(uc.Store)
	tx.AddOperation("create booking", func(c *database.Collections) error {
		lead, ok := c.Leads.Get(input.LeadID)
		if !ok {
			return ErrNotFound
		}
		booking = entity.NewTrialBooking(lead, scheduledAt, at,
			strings.TrimSpace(input.Coach), strings.TrimSpace(input.Location), input.Notes)
		c.Bookings.InsertFront(*booking)
		return nil
	})
	tx.AddOperation("mark lead trial scheduled", func(c *database.Collections) error {
		c.Leads.Upsert(input.LeadID, func(l entity.Lead) entity.Lead {
			l.Status = entity.LeadTrialScheduled
			return l
		})
		return nil
	})

	if err := tx.Execute(ctx); err != nil {
		return nil, settle(err)
	}

	uc.success(fmt.Sprintf("Trial booked for %s.", booking.Student))
	return booking, nil
}
