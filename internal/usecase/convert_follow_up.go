package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
	"github.com/xavierca1/cirkidz-admin/internal/infra/queue"
)

type ConvertFollowUpUseCase struct {
	Deps
}

func NewConvertFollowUpUseCase(d Deps) *ConvertFollowUpUseCase {
	return &ConvertFollowUpUseCase{Deps: d}
}

// Execute turns a follow-up into a Pending Payment enrolment, removes the
// follow-up and marks its lead and booking Converted. All four effects
// commit together.
func (uc *ConvertFollowUpUseCase) Execute(ctx context.Context, followUpID string) (*ConvertFollowUpOutput, error) {
	var (
		followUp  entity.SalesFollowUp
		enrolment *entity.Enrolment
	)
	today := uc.today()

	tx := NewTransaction(uc.Store)
	tx.AddOperation("create enrolment", func(c *database.Collections) error {
		f, ok := c.FollowUps.Get(followUpID)
		if !ok {
			return ErrNotFound
		}
		followUp = f
		enrolment = f.ToEnrolment(today)
		c.Enrolments.InsertFront(*enrolment)
		return nil
	})
	tx.AddOperation("remove follow-up", func(c *database.Collections) error {
		c.FollowUps.Remove(followUp.ID)
		return nil
	})
	tx.AddOperation("convert lead", func(c *database.Collections) error {
		if followUp.LeadID != nil {
			c.Leads.Upsert(*followUp.LeadID, func(l entity.Lead) entity.Lead {
				l.Status = entity.LeadConverted
				return l
			})
		}
		return nil
	})
	tx.AddOperation("convert booking", func(c *database.Collections) error {
		if followUp.BookingID != nil {
			c.Bookings.Upsert(*followUp.BookingID, func(b entity.TrialBooking) entity.TrialBooking {
				b.Status = entity.BookingConverted
				return b
			})
		}
		return nil
	})

	if err := tx.Execute(ctx); err != nil {
		return nil, settle(err)
	}

	uc.publish(ctx, followUp, *enrolment)
	uc.success(fmt.Sprintf("%s converted to enrolment.", followUp.Student))

	return &ConvertFollowUpOutput{
		Enrolment: *enrolment,
		LeadID:    followUp.LeadID,
		BookingID: followUp.BookingID,
	}, nil
}

// publish never fails the conversion; the store change is already committed.
func (uc *ConvertFollowUpUseCase) publish(ctx context.Context, followUp entity.SalesFollowUp, enrolment entity.Enrolment) {
	if uc.Publisher == nil {
		return
	}
	event := queue.LifecycleEvent{
		Type:        queue.EventEnrolmentCreated,
		EnrolmentID: enrolment.ID,
		Student:     enrolment.Student,
		Program:     enrolment.Program,
		SourceID:    followUp.ID,
		Contact:     followUp.Contact,
		OccurredAt:  uc.now(),
	}
	if err := uc.Publisher.PublishLifecycle(ctx, event); err != nil {
		log.Printf("⚠️ CRITICAL: enrolment %s committed but event publish failed: %v", enrolment.ID, err)
	}
}
