package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type CreateLeadUseCase struct {
	Deps
}

func NewCreateLeadUseCase(d Deps) *CreateLeadUseCase {
	return &CreateLeadUseCase{Deps: d}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if blank(input.Student) || blank(input.Contact) || blank(input.PreferredClass) {
		return nil, uc.reject("student", msgRequiredLeadFields)
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, uc.reject("status", msgInvalidStatus)
	}
	createdAt := strings.TrimSpace(input.CreatedAt)
	if createdAt == "" {
		createdAt = uc.today()
	} else if !isValidDate(createdAt) {
		return nil, uc.reject("created_at", msgInvalidDate)
	}

	lead, err := entity.NewLead(input.Student, input.Contact, input.PreferredClass, input.Owner, createdAt, input.Notes)
	if err != nil {
		return nil, uc.reject("student", msgRequiredLeadFields)
	}
	if input.Status != "" {
		lead.Status = input.Status
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = uc.Store.Atomic(func(tx *database.Collections) error {
		tx.Leads.InsertFront(*lead)
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}

	uc.success("Lead created.")
	return lead, nil
}

type MarkLeadConvertedUseCase struct {
	Deps
}

func NewMarkLeadConvertedUseCase(d Deps) *MarkLeadConvertedUseCase {
	return &MarkLeadConvertedUseCase{Deps: d}
}

func (uc *MarkLeadConvertedUseCase) Execute(ctx context.Context, leadID string) (*entity.Lead, error) {
	status := entity.LeadConverted
	lead, err := updateLead(ctx, uc.Store, UpdateLeadInput{LeadID: leadID, Status: &status})
	if err != nil || lead == nil {
		return nil, err
	}
	uc.success(fmt.Sprintf("%s marked as converted.", lead.Student))
	return lead, nil
}

type UpdateLeadUseCase struct {
	Deps
}

func NewUpdateLeadUseCase(d Deps) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Deps: d}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, input UpdateLeadInput) (*entity.Lead, error) {
	for _, field := range []*string{input.Student, input.Contact, input.PreferredClass} {
		if field != nil && blank(*field) {
			return nil, uc.reject("student", msgRequiredLeadFields)
		}
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, uc.reject("status", msgInvalidStatus)
	}

	lead, err := updateLead(ctx, uc.Store, input)
	if err != nil || lead == nil {
		return nil, err
	}
	uc.success("Lead updated.")
	return lead, nil
}

func updateLead(ctx context.Context, store Store, input UpdateLeadInput) (*entity.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated entity.Lead
	err := store.Atomic(func(tx *database.Collections) error {
		found := tx.Leads.Upsert(input.LeadID, func(l entity.Lead) entity.Lead {
			if input.Student != nil {
				l.Student = strings.TrimSpace(*input.Student)
			}
			if input.Contact != nil {
				l.Contact = strings.TrimSpace(*input.Contact)
			}
			if input.PreferredClass != nil {
				l.PreferredClass = strings.TrimSpace(*input.PreferredClass)
			}
			if input.Status != nil {
				l.Status = *input.Status
			}
			if input.Owner != nil {
				l.Owner = strings.TrimSpace(*input.Owner)
			}
			if input.Notes != nil {
				l.Notes = *input.Notes
			}
			updated = l
			return l
		})
		if !found {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}
	return &updated, nil
}
