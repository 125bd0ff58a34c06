package usecase

import (
	"encoding/json"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
)

// FlexibleNumber accepts 5, 2.5 or "2.5" so form values and JSON numbers
// decode the same way.
type FlexibleNumber string

func (n *FlexibleNumber) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = FlexibleNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = FlexibleNumber(num.String())
	return nil
}

type ScheduleTrialInput struct {
	LeadID      string `json:"-"`
	ScheduledAt string `json:"scheduled_at"`
	Coach       string `json:"coach"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

type RescheduleBookingInput struct {
	BookingID   string `json:"-"`
	ScheduledAt string `json:"scheduled_at"`
	Coach       string `json:"coach"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

type ChangeBookingStatusInput struct {
	BookingID string               `json:"-"`
	Status    entity.BookingStatus `json:"status"`
}

type ConvertFollowUpOutput struct {
	Enrolment entity.Enrolment `json:"enrolment"`
	LeadID    *string          `json:"lead_id,omitempty"`
	BookingID *string          `json:"booking_id,omitempty"`
}

type LogFollowUpCallInput struct {
	FollowUpID     string                `json:"-"`
	FollowUpStatus entity.FollowUpStatus `json:"follow_up_status"`
	NextAction     string                `json:"next_action"`
	NextActionDue  string                `json:"next_action_due"`
	Notes          *string               `json:"notes"`
}

type LogInternshipHoursInput struct {
	PlacementID string         `json:"-"`
	Hours       FlexibleNumber `json:"hours"`
	Notes       string         `json:"notes"`
}

type AssignMentorInput struct {
	PlacementID string `json:"-"`
	Mentor      string `json:"mentor"`
	Notes       string `json:"notes"`
}

type CreateLeadInput struct {
	Student        string            `json:"student"`
	Contact        string            `json:"contact"`
	PreferredClass string            `json:"preferred_class"`
	Status         entity.LeadStatus `json:"status"`
	Owner          string            `json:"owner"`
	CreatedAt      string            `json:"created_at"`
	Notes          string            `json:"notes"`
}

// UpdateLeadInput is a partial edit; nil fields are left alone.
type UpdateLeadInput struct {
	LeadID         string             `json:"-"`
	Student        *string            `json:"student"`
	Contact        *string            `json:"contact"`
	PreferredClass *string            `json:"preferred_class"`
	Status         *entity.LeadStatus `json:"status"`
	Owner          *string            `json:"owner"`
	Notes          *string            `json:"notes"`
}

type CreateEnrolmentInput struct {
	Student       string                 `json:"student"`
	Program       string                 `json:"program"`
	EnrolmentDate string                 `json:"enrolment_date"`
	Status        entity.EnrolmentStatus `json:"status"`
	NextPayment   string                 `json:"next_payment"`
	Notes         string                 `json:"notes"`
}

type UpdateEnrolmentInput struct {
	EnrolmentID   string                  `json:"-"`
	Student       *string                 `json:"student"`
	Program       *string                 `json:"program"`
	EnrolmentDate *string                 `json:"enrolment_date"`
	Status        *entity.EnrolmentStatus `json:"status"`
	NextPayment   *string                 `json:"next_payment"`
	Notes         *string                 `json:"notes"`
}

type EditClassSessionInput struct {
	ClassID  string   `json:"-"`
	Name     string   `json:"name"`
	Schedule string   `json:"schedule"`
	Coach    string   `json:"coach"`
	Location string   `json:"location"`
	Capacity int      `json:"capacity"`
	Enrolled int      `json:"enrolled"`
	Tags     []string `json:"tags"`
}

type AssignStudentsInput struct {
	ClassID  string   `json:"-"`
	Students []string `json:"students"`
}

type AssignStudentsOutput struct {
	ClassID  string `json:"class_id"`
	Assigned int    `json:"assigned"`
	Message  string `json:"message"`
}

type CheckIn struct {
	PlacementID string `json:"placement_id"`
	Intern      string `json:"intern"`
	Mentor      string `json:"mentor"`
	Date        string `json:"date"`
}

type DashboardOutput struct {
	Today                   string    `json:"today"`
	WeekOf                  string    `json:"week_of"`
	TrialsThisWeek          int       `json:"trials_this_week"`
	FollowUpsAwaitingAction int       `json:"follow_ups_awaiting_action"`
	OverdueFollowUps        int       `json:"overdue_follow_ups"`
	ActiveEnrolments        int       `json:"active_enrolments"`
	PendingPayments         int       `json:"pending_payments"`
	OpenClassSpots          int       `json:"open_class_spots"`
	UpcomingCheckIns        []CheckIn `json:"upcoming_check_ins"`
}
