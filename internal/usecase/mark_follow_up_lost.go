package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type MarkFollowUpLostUseCase struct {
	Deps
}

func NewMarkFollowUpLostUseCase(d Deps) *MarkFollowUpLostUseCase {
	return &MarkFollowUpLostUseCase{Deps: d}
}

// Execute marks the follow-up and its lead Lost. The booking keeps its
// status.
func (uc *MarkFollowUpLostUseCase) Execute(ctx context.Context, followUpID string) (*entity.SalesFollowUp, error) {
	var followUp entity.SalesFollowUp

	tx := NewTransaction(uc.Store)
	tx.AddOperation("mark follow-up lost", func(c *database.Collections) error {
		found := c.FollowUps.Upsert(followUpID, func(f entity.SalesFollowUp) entity.SalesFollowUp {
			f.FollowUpStatus = entity.FollowUpLost
			followUp = f
			return f
		})
		if !found {
			return ErrNotFound
		}
		return nil
	})
	tx.AddOperation("mark lead lost", func(c *database.Collections) error {
		if followUp.LeadID != nil {
			c.Leads.Upsert(*followUp.LeadID, func(l entity.Lead) entity.Lead {
				l.Status = entity.LeadLost
				return l
			})
		}
		return nil
	})

	if err := tx.Execute(ctx); err != nil {
		return nil, settle(err)
	}

	uc.success(fmt.Sprintf("%s marked as lost.", followUp.Student))
	return &followUp, nil
}
