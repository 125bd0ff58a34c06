package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type EditClassSessionUseCase struct {
	Deps
}

func NewEditClassSessionUseCase(d Deps) *EditClassSessionUseCase {
	return &EditClassSessionUseCase{Deps: d}
}

// Execute overwrites every editable field of a class session.
func (uc *EditClassSessionUseCase) Execute(ctx context.Context, input EditClassSessionInput) (*entity.ClassSession, error) {
	candidate := entity.ClassSession{
		ID:       input.ClassID,
		Name:     strings.TrimSpace(input.Name),
		Schedule: strings.TrimSpace(input.Schedule),
		Coach:    strings.TrimSpace(input.Coach),
		Location: strings.TrimSpace(input.Location),
		Capacity: input.Capacity,
		Enrolled: input.Enrolled,
		Tags:     input.Tags,
	}
	if candidate.Name == "" {
		return nil, uc.reject("name", msgClassNameRequired)
	}
	if err := candidate.Validate(); err != nil {
		return nil, uc.reject("capacity", msgClassNumbersInvalid)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err := uc.Store.Atomic(func(tx *database.Collections) error {
		found := tx.Classes.Upsert(input.ClassID, func(entity.ClassSession) entity.ClassSession {
			return candidate
		})
		if !found {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}

	uc.success("Class details updated.")
	return &candidate, nil
}

// AssignStudentsUseCase mirrors the console's roster dialog, which only
// acknowledges the selection. Nothing is stored.
type AssignStudentsUseCase struct {
	Deps
}

func NewAssignStudentsUseCase(d Deps) *AssignStudentsUseCase {
	return &AssignStudentsUseCase{Deps: d}
}

func (uc *AssignStudentsUseCase) Execute(ctx context.Context, input AssignStudentsInput) (*AssignStudentsOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		session entity.ClassSession
		found   bool
	)
	uc.Store.View(func(c *database.Collections) {
		session, found = c.Classes.Get(input.ClassID)
	})
	if !found {
		return nil, nil
	}

	message := fmt.Sprintf("%s: assigned %d students (mock).", session.Name, len(input.Students))
	uc.success(message)
	return &AssignStudentsOutput{
		ClassID:  session.ID,
		Assigned: len(input.Students),
		Message:  message,
	}, nil
}
