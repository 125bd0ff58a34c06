package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
)

type CreateEnrolmentUseCase struct {
	Deps
}

func NewCreateEnrolmentUseCase(d Deps) *CreateEnrolmentUseCase {
	return &CreateEnrolmentUseCase{Deps: d}
}

func (uc *CreateEnrolmentUseCase) Execute(ctx context.Context, input CreateEnrolmentInput) (*entity.Enrolment, error) {
	if blank(input.Student) || blank(input.Program) {
		return nil, uc.reject("student", msgEnrolmentRequired)
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, uc.reject("status", msgInvalidStatus)
	}
	date := strings.TrimSpace(input.EnrolmentDate)
	if date == "" {
		date = uc.today()
	} else if !isValidDate(date) {
		return nil, uc.reject("enrolment_date", msgInvalidDate)
	}

	enrolment, err := entity.NewEnrolment(input.Student, input.Program, date, input.Status, input.NextPayment, input.Notes)
	if err != nil {
		return nil, uc.reject("student", msgEnrolmentRequired)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err = uc.Store.Atomic(func(tx *database.Collections) error {
		tx.Enrolments.InsertFront(*enrolment)
		return nil
	})
	if err != nil {
		return nil, settle(err)
	}

	uc.success("Enrolment added.")
	return enrolment, nil
}

type UpdateEnrolmentUseCase struct {
	Deps
}

func NewUpdateEnrolmentUseCase(d Deps) *UpdateEnrolmentUseCase {
	return &UpdateEnrolmentUseCase{Deps: d}
}

func (uc *UpdateEnrolmentUseCase) Execute(ctx context.Context, input UpdateEnrolmentInput) (*entity.Enrolment, error) {
	if (input.Student != nil && blank(*input.Student)) || (input.Program != nil && blank(*input.Program)) {
		return nil, uc.reject("student", msgEnrolmentRequired)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, uc.reject("status", msgInvalidStatus)
	}
	if input.EnrolmentDate != nil && !isValidDate(*input.EnrolmentDate) {
		return nil, uc.reject("enrolment_date", msgInvalidDate)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated entity.Enrolment
	err := uc.Store.Atomic(func(tx *database.Collections) error {
		found := tx.Enrolments.Upsert(input.EnrolmentID, func(e entity.Enrolment) entity.Enrolment {
			if input.Student != nil {
				e.Student = strings.TrimSpace(*input.Student)
			}
			if input.Program != nil {
				e.Program = strings.TrimSpace(*input.Program)
			}
			if input.EnrolmentDate != nil {
				e.EnrolmentDate = *input.EnrolmentDate
			}
			if input.Status != nil {
				e.Status = *input.Status
			}
			if input.NextPayment != nil {
				e.NextPayment = *input.NextPayment
			}
			if input.Notes != nil {
				e.Notes = *input.Notes
			}
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

	uc.success("Enrolment updated.")
	return &updated, nil
}
