package entity

import (
	"errors"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingScheduled BookingStatus = "Scheduled"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingConverted BookingStatus = "Converted"
	BookingNoShow    BookingStatus = "No-show"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingScheduled, BookingConfirmed, BookingCompleted, BookingConverted, BookingNoShow:
		return true
	}
	return false
}

var (
	ErrMissingScheduledAt = errors.New("scheduled time is required")
	ErrInvalidScheduledAt = errors.New("scheduled time is invalid")
)

// TrialBooking is a scheduled trial class, usually created from a Lead.
type TrialBooking struct {
	ID             string        `json:"id" yaml:"id"`
	LeadID         *string       `json:"lead_id,omitempty" yaml:"leadId,omitempty"`
	Student        string        `json:"student" yaml:"student"`
	Contact        string        `json:"contact" yaml:"contact"`
	PreferredClass string        `json:"preferred_class" yaml:"preferredClass"`
	Owner          string        `json:"owner" yaml:"owner"`
	Coach          string        `json:"coach" yaml:"coach"`
	Location       string        `json:"location" yaml:"location"`
	ScheduledAt    string        `json:"scheduled_at" yaml:"scheduledAt"`
	WeekOf         string        `json:"week_of" yaml:"weekOf"`
	Status         BookingStatus `json:"status" yaml:"status"`
	Notes          string        `json:"notes" yaml:"notes"`
}

func (b TrialBooking) RecordID() string { return b.ID }

// NewTrialBooking books a trial for the given lead. scheduledAt must already
// be validated with ParseScheduledAt.
func NewTrialBooking(lead Lead, scheduledAt string, at time.Time, coach, location, notes string) *TrialBooking {
	leadID := lead.ID
	return &TrialBooking{
		ID:             NewID(PrefixBooking),
		LeadID:         &leadID,
		Student:        lead.Student,
		Contact:        lead.Contact,
		PreferredClass: lead.PreferredClass,
		Owner:          lead.Owner,
		Coach:          coach,
		Location:       location,
		ScheduledAt:    scheduledAt,
		WeekOf:         WeekOf(at),
		Status:         BookingScheduled,
		Notes:          notes,
	}
}

// Reschedule moves the booking and puts it back to Scheduled, whatever its
// current status.
func (b TrialBooking) Reschedule(scheduledAt string, at time.Time, coach, location, notes string) TrialBooking {
	b.ScheduledAt = scheduledAt
	b.WeekOf = WeekOf(at)
	b.Coach = coach
	b.Location = location
	b.Notes = notes
	b.Status = BookingScheduled
	return b
}

// WeekOf returns the Monday (YYYY-MM-DD) of the calendar week containing t,
// evaluated in t's own location. Sunday belongs to the week that started
// six days earlier.
func WeekOf(t time.Time) string {
	offset := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	monday := time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
	return monday.Format(DateLayout)
}

var scheduledAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	DateTimeSeconds,
	DateTimeLayout,
}

// ParseScheduledAt accepts RFC3339 timestamps and the zone-less
// datetime-local form sent by browser inputs; the latter is read in loc.
func ParseScheduledAt(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrMissingScheduledAt
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range scheduledAtLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidScheduledAt
}
