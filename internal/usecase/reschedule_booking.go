package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type RescheduleBookingUseCase struct {
	Deps
}

func NewRescheduleBookingUseCase(d Deps) *RescheduleBookingUseCase {
	return &RescheduleBookingUseCase{Deps: d}
}

func (uc *RescheduleBookingUseCase) Execute(ctx context.Context, input RescheduleBookingInput) (*entity.TrialBooking, error) {
	scheduledAt, at, err := uc.scheduleTime(input.ScheduledAt, msgNewTimeRequired)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated entity.TrialBooking
	err = uc.Store.Atomic(func(tx *database.Collections) error {
		found := tx.Bookings.Upsert(input.BookingID, func(b entity.TrialBooking) entity.TrialBooking {
			updated = b.Reschedule(scheduledAt, at,
				strings.TrimSpace(input.Coach), strings.TrimSpace(input.Location), input.Notes)
			return updated
		})
		if !found {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}

	uc.success("Booking time updated.")
	return &updated, nil
}
