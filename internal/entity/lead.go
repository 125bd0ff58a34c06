package entity

import (
	"errors"
	"strings"
)

type LeadStatus string

const (
	LeadNew            LeadStatus = "New"
	LeadContacted      LeadStatus = "Contacted"
	LeadTrialScheduled LeadStatus = "Trial Scheduled"
	LeadInFollowUp     LeadStatus = "In Follow-up"
	LeadConverted      LeadStatus = "Converted"
	LeadLost           LeadStatus = "Lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadTrialScheduled, LeadInFollowUp, LeadConverted, LeadLost:
		return true
	}
	return false
}

const DefaultLeadNotes = "New lead added via quick intake."

// Lead is a free-trial enquiry before any trial is booked.
type Lead struct {
	ID             string     `json:"id" yaml:"id"`
	Student        string     `json:"student" yaml:"student"`
	Contact        string     `json:"contact" yaml:"contact"`
	PreferredClass string     `json:"preferred_class" yaml:"preferredClass"`
	Status         LeadStatus `json:"status" yaml:"status"`
	Owner          string     `json:"owner" yaml:"owner"`
	CreatedAt      string     `json:"created_at" yaml:"createdAt"`
	Notes          string     `json:"notes" yaml:"notes"`
}

func (l Lead) RecordID() string { return l.ID }

// Factory
func NewLead(student, contact, preferredClass, owner, createdAt, notes string) (*Lead, error) {
	lead := &Lead{
		ID:             NewID(PrefixLead),
		Student:        strings.TrimSpace(student),
		Contact:        strings.TrimSpace(contact),
		PreferredClass: strings.TrimSpace(preferredClass),
		Status:         LeadNew,
		Owner:          strings.TrimSpace(owner),
		CreatedAt:      createdAt,
		Notes:          notes,
	}
	if lead.Notes == "" {
		lead.Notes = DefaultLeadNotes
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}
	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Student == "" || l.Contact == "" || l.PreferredClass == "" {
		return errors.New("student, contact and preferred class are required")
	}
	if !l.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
