package entity

import (
	"fmt"
	"time"
)

type FollowUpStatus string

const (
	FollowUpPendingCall  FollowUpStatus = "Pending Call"
	FollowUpAttempted    FollowUpStatus = "Attempted"
	FollowUpNeedsManager FollowUpStatus = "Needs Manager"
	FollowUpWon          FollowUpStatus = "Won"
	FollowUpLost         FollowUpStatus = "Lost"
)

func (s FollowUpStatus) Valid() bool {
	switch s {
	case FollowUpPendingCall, FollowUpAttempted, FollowUpNeedsManager, FollowUpWon, FollowUpLost:
		return true
	}
	return false
}

type TrialOutcome string

const (
	OutcomeAttended  TrialOutcome = "Attended"
	OutcomeNoShow    TrialOutcome = "No-show"
	OutcomeCancelled TrialOutcome = "Cancelled"
)

// SalesFollowUp is the post-trial sales task for one student.
type SalesFollowUp struct {
	ID              string         `json:"id" yaml:"id"`
	LeadID          *string        `json:"lead_id,omitempty" yaml:"leadId,omitempty"`
	BookingID       *string        `json:"booking_id,omitempty" yaml:"bookingId,omitempty"`
	Student         string         `json:"student" yaml:"student"`
	Contact         string         `json:"contact" yaml:"contact"`
	Owner           string         `json:"owner" yaml:"owner"`
	PreferredClass  string         `json:"preferred_class" yaml:"preferredClass"`
	TrialOutcome    TrialOutcome   `json:"trial_outcome" yaml:"trialOutcome"`
	FollowUpStatus  FollowUpStatus `json:"follow_up_status" yaml:"followUpStatus"`
	LastContactedAt *time.Time     `json:"last_contacted_at" yaml:"lastContactedAt"`
	NextAction      string         `json:"next_action" yaml:"nextAction"`
	NextActionDue   string         `json:"next_action_due" yaml:"nextActionDue"`
	Notes           string         `json:"notes" yaml:"notes"`
	CreatedAt       string         `json:"created_at" yaml:"createdAt"`
}

func (f SalesFollowUp) RecordID() string { return f.ID }

// IsOverdue compares the due date against today (both YYYY-MM-DD).
func (f SalesFollowUp) IsOverdue(today string) bool {
	return f.NextActionDue < today
}

// ToEnrolment builds the Pending Payment enrolment a converted follow-up
// turns into.
func (f SalesFollowUp) ToEnrolment(today string) *Enrolment {
	return &Enrolment{
		ID:            NewID(PrefixEnrolment),
		Student:       f.Student,
		Program:       f.PreferredClass,
		EnrolmentDate: today,
		Status:        EnrolmentPendingPayment,
		NextPayment:   DefaultNextPayment,
		Notes:         fmt.Sprintf("Converted from follow-up %s. Contact: %s", f.ID, f.Contact),
	}
}
