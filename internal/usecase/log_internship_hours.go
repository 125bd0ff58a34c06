package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type LogInternshipHoursUseCase struct {
	Deps
}

func NewLogInternshipHoursUseCase(d Deps) *LogInternshipHoursUseCase {
	return &LogInternshipHoursUseCase{Deps: d}
}

func (uc *LogInternshipHoursUseCase) Execute(ctx context.Context, input LogInternshipHoursInput) (*entity.InternshipPlacement, error) {
	hours, ok := parseHours(string(input.Hours))
	if !ok {
		return nil, uc.reject("hours", msgInvalidHours)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated entity.InternshipPlacement
	err := uc.Store.Atomic(func(tx *database.Collections) error {
		found := tx.Placements.Upsert(input.PlacementID, func(p entity.InternshipPlacement) entity.InternshipPlacement {
			updated = p.LogHours(hours, input.Notes)
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

	uc.success(fmt.Sprintf("%s logged %s hours.", updated.Intern, formatHours(hours)))
	return &updated, nil
}
