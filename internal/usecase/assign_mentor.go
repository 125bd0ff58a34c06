package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type AssignMentorUseCase struct {
	Deps
}

func NewAssignMentorUseCase(d Deps) *AssignMentorUseCase {
	return &AssignMentorUseCase{Deps: d}
}

func (uc *AssignMentorUseCase) Execute(ctx context.Context, input AssignMentorInput) (*entity.InternshipPlacement, error) {
	mentor := strings.TrimSpace(input.Mentor)
	if mentor == "" {
		return nil, uc.reject("mentor", msgMentorRequired)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated entity.InternshipPlacement
	err := uc.Store.Atomic(func(tx *database.Collections) error {
		found := tx.Placements.Upsert(input.PlacementID, func(p entity.InternshipPlacement) entity.InternshipPlacement {
			updated = p.AssignMentor(mentor, input.Notes)
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

	uc.success(fmt.Sprintf("%s's mentor has been updated.", updated.Intern))
	return &updated, nil
}
