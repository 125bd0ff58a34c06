package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type LogFollowUpCallUseCase struct {
	Deps
}

func NewLogFollowUpCallUseCase(d Deps) *LogFollowUpCallUseCase {
	return &LogFollowUpCallUseCase{Deps: d}
}

// Execute records a sales call: the next action, its due date and when the
// family was last contacted.
func (uc *LogFollowUpCallUseCase) Execute(ctx context.Context, input LogFollowUpCallInput) (*entity.SalesFollowUp, error) {
	due := strings.TrimSpace(input.NextActionDue)
	if due == "" {
		return nil, uc.reject("next_action_due", msgDueDateRequired)
	}
	if !isValidDate(due) {
		return nil, uc.reject("next_action_due", msgInvalidDate)
	}
	if blank(input.NextAction) {
		return nil, uc.reject("next_action", msgNextActionRequired)
	}
	if input.FollowUpStatus != "" && !input.FollowUpStatus.Valid() {
		return nil, uc.reject("follow_up_status", msgInvalidStatus)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contactedAt := uc.now()
	var updated entity.SalesFollowUp
	err := uc.Store.Atomic(func(tx *database.Collections) error {
		found := tx.FollowUps.Upsert(input.FollowUpID, func(f entity.SalesFollowUp) entity.SalesFollowUp {
			if input.FollowUpStatus != "" {
				f.FollowUpStatus = input.FollowUpStatus
			}
			f.NextAction = strings.TrimSpace(input.NextAction)
			f.NextActionDue = due
			if input.Notes != nil {
				f.Notes = *input.Notes
			}
			f.LastContactedAt = &contactedAt
			updated = f
			return f
		})
		if !found {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}

	uc.success("Follow-up updated.")
	return &updated, nil
}
