package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
	"github.com/xavierca1/cirkidz-admin/internal/infra/database"
	"github.com/xavierca1/cirkidz-admin/internal/infra/queue"
)

func findLead(t *testing.T, store *database.DemoStore, id string) entity.Lead {
	t.Helper()
	for _, l := range store.Leads() {
		if l.ID == id {
			return l
		}
	}
	t.Fatalf("lead %s not found", id)
	return entity.Lead{}
}

func findBooking(t *testing.T, store *database.DemoStore, id string) entity.TrialBooking {
	t.Helper()
	for _, b := range store.Bookings() {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("booking %s not found", id)
	return entity.TrialBooking{}
}

func TestScheduleTrialCreatesBookingAndUpdatesLead(t *testing.T) {
	f := newFixture()
	f.expectSuccess("Trial booked for Henry Chalmers.")

	booking, err := NewScheduleTrialUseCase(f.deps).Execute(context.Background(), ScheduleTrialInput{
		LeadID:      "ft-002",
		ScheduledAt: "2025-11-16T10:00",
		Coach:       "Jordan Hale",
		Location:    "Main Hall",
	})
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.Equal(t, "2025-11-10", booking.WeekOf) // Sunday -> previous Monday
	assert.Equal(t, entity.BookingScheduled, booking.Status)
	require.NotNil(t, booking.LeadID)
	assert.Equal(t, "ft-002", *booking.LeadID)
	assert.Equal(t, "Kids Intro Circus", booking.PreferredClass)
	assert.Equal(t, "Sam Collins", booking.Owner)

	bookings := f.store.Bookings()
	assert.Len(t, bookings, 5)
	assert.Equal(t, booking.ID, bookings[0].ID)
	assert.Equal(t, entity.LeadTrialScheduled, findLead(t, f.store, "ft-002").Status)
	f.notifier.AssertExpectations(t)
}

func TestScheduleTrialRejectsMissingOrInvalidTime(t *testing.T) {
	cases := map[string]string{
		"":            "Please select a trial time.",
		"not-a-time":  "Please enter a valid time.",
		"2025-02-30T": "Please enter a valid time.",
	}

	for input, message := range cases {
		f := newFixture()
		f.expectError(message)

		booking, err := NewScheduleTrialUseCase(f.deps).Execute(context.Background(), ScheduleTrialInput{
			LeadID:      "ft-002",
			ScheduledAt: input,
		})

		assert.Nil(t, booking)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, input)
		assert.Equal(t, message, ve.Message)
		assert.Len(t, f.store.Bookings(), 4)
		assert.Equal(t, entity.LeadNew, findLead(t, f.store, "ft-002").Status)
		f.notifier.AssertExpectations(t)
	}
}

func TestScheduleTrialUnknownLeadIsSilentNoop(t *testing.T) {
	f := newFixture()

	booking, err := NewScheduleTrialUseCase(f.deps).Execute(context.Background(), ScheduleTrialInput{
		LeadID:      "ft-missing",
		ScheduledAt: "2025-11-16T10:00:00+10:30",
	})

	assert.NoError(t, err)
	assert.Nil(t, booking)
	assert.Len(t, f.store.Bookings(), 4)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestRescheduleBookingResetsStatus(t *testing.T) {
	f := newFixture()
	f.expectSuccess("Booking time updated.")

	booking, err := NewRescheduleBookingUseCase(f.deps).Execute(context.Background(), RescheduleBookingInput{
		BookingID:   "tb-1004",
		ScheduledAt: "2025-11-20T19:00:00+10:30",
		Coach:       "Priya Singh",
		Location:    "Aerial Studio",
		Notes:       "Moved to Thursday.",
	})
	require.NoError(t, err)
	require.NotNil(t, booking)

	stored := findBooking(t, f.store, "tb-1004")
	assert.Equal(t, entity.BookingScheduled, stored.Status)
	assert.Equal(t, "2025-11-17", stored.WeekOf)
	assert.Equal(t, "Priya Singh", stored.Coach)
	assert.Equal(t, "Moved to Thursday.", stored.Notes)
}

func TestRescheduleBookingValidation(t *testing.T) {
	f := newFixture()
	f.expectError("Please select a new time.")

	_, err := NewRescheduleBookingUseCase(f.deps).Execute(context.Background(), RescheduleBookingInput{BookingID: "tb-1001"})

	assert.True(t, IsValidationError(err))
	assert.Equal(t, entity.BookingConfirmed, findBooking(t, f.store, "tb-1001").Status)
}

func TestConvertFollowUpIsAtomicAndPublishesOnce(t *testing.T) {
	f := newFixture()
	f.expectSuccess("Mia Jenkins converted to enrolment.")
	f.publisher.On("PublishLifecycle", mock.Anything, mock.MatchedBy(func(e queue.LifecycleEvent) bool {
		return e.Type == queue.EventEnrolmentCreated && e.SourceID == "sf-8001" && e.Program == "Youth Circus Foundation"
	})).Return(nil).Once()

	out, err := NewConvertFollowUpUseCase(f.deps).Execute(context.Background(), "sf-8001")
	require.NoError(t, err)
	require.NotNil(t, out)

	for _, fu := range f.store.FollowUps() {
		assert.NotEqual(t, "sf-8001", fu.ID)
	}
	enrolments := f.store.Enrolments()
	require.Len(t, enrolments, 5)
	created := enrolments[0]
	assert.Equal(t, out.Enrolment.ID, created.ID)
	assert.Equal(t, "Youth Circus Foundation", created.Program)
	assert.Equal(t, entity.EnrolmentPendingPayment, created.Status)
	assert.Equal(t, "2025-11-14", created.EnrolmentDate)
	assert.Equal(t, "To be scheduled", created.NextPayment)
	assert.True(t, strings.Contains(created.Notes, "sf-8001"))

	assert.Equal(t, entity.LeadConverted, findLead(t, f.store, "ft-001").Status)
	assert.Equal(t, entity.BookingConverted, findBooking(t, f.store, "tb-1001").Status)

	f.publisher.AssertNumberOfCalls(t, "PublishLifecycle", 1)
	f.notifier.AssertExpectations(t)
}

func TestConvertFollowUpWithoutReferences(t *testing.T) {
	f := newFixture()
	f.expectSuccess("Noah Patel converted to enrolment.")
	f.publisher.On("PublishLifecycle", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	leadsBefore := f.store.Leads()
	bookingsBefore := f.store.Bookings()

	out, err := NewConvertFollowUpUseCase(f.deps).Execute(context.Background(), "sf-8003")
	require.NoError(t, err, "publish failures never fail a committed conversion")
	assert.Nil(t, out.LeadID)
	assert.Nil(t, out.BookingID)

	assert.Equal(t, leadsBefore, f.store.Leads())
	assert.Equal(t, bookingsBefore, f.store.Bookings())
	assert.Len(t, f.store.FollowUps(), 2)
}

func TestConvertUnknownFollowUpChangesNothing(t *testing.T) {
	f := newFixture()
	before := f.store.Counts()

	out, err := NewConvertFollowUpUseCase(f.deps).Execute(context.Background(), "sf-0000")

	assert.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, before, f.store.Counts())
	f.publisher.AssertNotCalled(t, "PublishLifecycle", mock.Anything, mock.Anything)
}

func TestConvertFollowUpWithDanglingLead(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.store.Atomic(func(tx *database.Collections) error {
		tx.Leads.Remove("ft-001")
		return nil
	}))
	f.expectSuccess("Mia Jenkins converted to enrolment.")
	f.publisher.On("PublishLifecycle", mock.Anything, mock.Anything).Return(nil)

	out, err := NewConvertFollowUpUseCase(f.deps).Execute(context.Background(), "sf-8001")

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.BookingConverted, findBooking(t, f.store, "tb-1001").Status)
}

func TestMarkFollowUpLostCascadesToLeadOnly(t *testing.T) {
	f := newFixture()
	f.expectSuccess("Lena Wu marked as lost.")

	followUp, err := NewMarkFollowUpLostUseCase(f.deps).Execute(context.Background(), "sf-8002")
	require.NoError(t, err)

	assert.Equal(t, entity.FollowUpLost, followUp.FollowUpStatus)
	assert.Equal(t, entity.LeadLost, findLead(t, f.store, "ft-003").Status)
	assert.Equal(t, entity.BookingScheduled, findBooking(t, f.store, "tb-1002").Status)
}

func TestLogInternshipHours(t *testing.T) {
	f := newFixture()
	f.expectSuccess("Ben Howard logged 2.5 hours.")

	placement, err := NewLogInternshipHoursUseCase(f.deps).Execute(context.Background(), LogInternshipHoursInput{
		PlacementID: "ip-2002",
		Hours:       "2.5",
		Notes:       "Load-in for showcase",
	})
	require.NoError(t, err)

	assert.Equal(t, 20.5, placement.HoursCompleted)
	assert.Equal(t, entity.InternshipOnboarding, placement.Status)
	assert.Equal(t, "• Load-in for showcase", placement.Notes)
}

func TestLogInternshipHoursCompletesAtTarget(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.store.Atomic(func(tx *database.Collections) error {
		tx.Placements.Upsert("ip-2003", func(p entity.InternshipPlacement) entity.InternshipPlacement {
			p.Status = entity.InternshipActive
			return p
		})
		return nil
	}))
	f.notifier.On("Notify", mock.Anything, mock.Anything)

	uc := NewLogInternshipHoursUseCase(f.deps)
	placement, err := uc.Execute(context.Background(), LogInternshipHoursInput{PlacementID: "ip-2003", Hours: "4"})
	require.NoError(t, err)
	assert.Equal(t, 99.0, placement.HoursCompleted)
	assert.Equal(t, entity.InternshipActive, placement.Status)

	placement, err = uc.Execute(context.Background(), LogInternshipHoursInput{PlacementID: "ip-2003", Hours: "1"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, placement.HoursCompleted)
	assert.Equal(t, entity.InternshipCompleted, placement.Status)
}

func TestLogInternshipHoursRejectsBadValues(t *testing.T) {
	for _, hours := range []FlexibleNumber{"", "0", "-3", "NaN", "Inf", "abc"} {
		f := newFixture()
		f.expectError("Please enter a valid number of hours.")

		_, err := NewLogInternshipHoursUseCase(f.deps).Execute(context.Background(), LogInternshipHoursInput{
			PlacementID: "ip-2001",
			Hours:       hours,
		})

		assert.True(t, IsValidationError(err), string(hours))
		assert.Equal(t, 42.0, f.store.Placements()[0].HoursCompleted)
	}
}

func TestAssignMentor(t *testing.T) {
	f := newFixture()
	f.expectSuccess("Zoe Marshall's mentor has been updated.")

	placement, err := NewAssignMentorUseCase(f.deps).Execute(context.Background(), AssignMentorInput{
		PlacementID: "ip-2001",
		Mentor:      "Priya Singh",
		Notes:       "Covering rigging block",
	})
	require.NoError(t, err)

	assert.Equal(t, "Priya Singh", placement.Mentor)
	assert.True(t, strings.HasSuffix(placement.Notes, "\n• Mentor update: Covering rigging block"))
}

func TestAssignMentorRequiresMentor(t *testing.T) {
	f := newFixture()
	f.expectError("Please choose a mentor.")

	_, err := NewAssignMentorUseCase(f.deps).Execute(context.Background(), AssignMentorInput{PlacementID: "ip-2001", Mentor: "  "})

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "Jordan Hale", f.store.Placements()[0].Mentor)
}

func TestToggleEnrolmentStatusCycle(t *testing.T) {
	f := newFixture()
	f.notifier.On("Notify", mock.Anything, mock.Anything)
	uc := NewToggleEnrolmentStatusUseCase(f.deps)

	want := []entity.EnrolmentStatus{entity.EnrolmentActive, entity.EnrolmentPaused, entity.EnrolmentActive}
	for _, status := range want {
		e, err := uc.Execute(context.Background(), "en-102")
		require.NoError(t, err)
		assert.Equal(t, status, e.Status)
	}
}

func TestToggleCancelledStaysCancelled(t *testing.T) {
	f := newFixture()
	f.notifier.On("Notify", mock.Anything, mock.Anything)
	require.NoError(t, f.store.Atomic(func(tx *database.Collections) error {
		tx.Enrolments.Upsert("en-101", func(e entity.Enrolment) entity.Enrolment {
			e.Status = entity.EnrolmentCancelled
			return e
		})
		return nil
	}))

	uc := NewToggleEnrolmentStatusUseCase(f.deps)
	for i := 0; i < 3; i++ {
		e, err := uc.Execute(context.Background(), "en-101")
		require.NoError(t, err)
		assert.Equal(t, entity.EnrolmentCancelled, e.Status)
	}
}

func TestTransactionReportsFailingOperation(t *testing.T) {
	f := newFixture()
	before := f.store.Counts()

	tx := NewTransaction(f.store)
	tx.AddOperation("insert", func(c *database.Collections) error {
		c.Leads.InsertFront(entity.Lead{ID: "ft-tmp"})
		return nil
	})
	tx.AddOperation("explode", func(*database.Collections) error {
		return errors.New("boom")
	})

	err := tx.Execute(context.Background())

	assert.EqualError(t, err, "operation 'explode' failed: boom (discarded 1 staged operations)")
	assert.Equal(t, before, f.store.Counts())
	assert.True(t, IsTechnicalError(settle(err)))
	assert.NoError(t, settle(ErrNotFound))
}

func TestTransactionHonoursCancelledContext(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tx := NewTransaction(f.store)
	tx.AddOperation("never", func(*database.Collections) error {
		t.Fatal("operation must not run")
		return nil
	})
	assert.ErrorIs(t, tx.Execute(ctx), context.Canceled)
}

func TestCancelledTransitionsReportContextError(t *testing.T) {
	f := newFixture()
	before := f.store.Counts()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	booking, err := NewScheduleTrialUseCase(f.deps).Execute(ctx, ScheduleTrialInput{
		LeadID:      "ft-002",
		ScheduledAt: "2025-11-20T16:00",
	})
	assert.Nil(t, booking)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsTechnicalError(err))

	out, err := NewConvertFollowUpUseCase(f.deps).Execute(ctx, "sf-8001")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)

	lost, err := NewMarkFollowUpLostUseCase(f.deps).Execute(ctx, "sf-8002")
	assert.Nil(t, lost)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, before, f.store.Counts())
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishLifecycle", mock.Anything, mock.Anything)
}

func TestTechnicalErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := settle(fmt.Errorf("operation 'explode' failed: %w", cause))

	require.True(t, IsTechnicalError(err))
	assert.ErrorIs(t, err, cause)
}
