package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type ToggleEnrolmentStatusUseCase struct {
	Deps
}

func NewToggleEnrolmentStatusUseCase(d Deps) *ToggleEnrolmentStatusUseCase {
	return &ToggleEnrolmentStatusUseCase{Deps: d}
}

func (uc *ToggleEnrolmentStatusUseCase) Execute(ctx context.Context, enrolmentID string) (*entity.Enrolment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated entity.Enrolment
	err := uc.Store.Atomic(func(tx *database.Collections) error {
		found := tx.Enrolments.Upsert(enrolmentID, func(e entity.Enrolment) entity.Enrolment {
			e.Status = e.Status.Next()
			updated = e
			return e
		})
		if !found {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}

	uc.success(fmt.Sprintf("%s status updated.", updated.Student))
	return &updated, nil
}
