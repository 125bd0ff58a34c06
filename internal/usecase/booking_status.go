package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type ChangeBookingStatusUseCase struct {
	Deps
}

func NewChangeBookingStatusUseCase(d Deps) *ChangeBookingStatusUseCase {
	return &ChangeBookingStatusUseCase{Deps: d}
}

// Execute sets a booking's status directly (Confirmed, Completed, No-show...).
func (uc *ChangeBookingStatusUseCase) Execute(ctx context.Context, input ChangeBookingStatusInput) (*entity.TrialBooking, error) {
	if !input.Status.Valid() {
		return nil, uc.reject("status", msgInvalidStatus)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated entity.TrialBooking
	err := uc.Store.Atomic(func(tx *database.Collections) error {
		found := tx.Bookings.Upsert(input.BookingID, func(b entity.TrialBooking) entity.TrialBooking {
			b.Status = input.Status
			updated = b
			return b
		})
		if !found {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}

	uc.success(fmt.Sprintf("%s status updated to %s.", updated.Student, updated.Status))
	return &updated, nil
}
