package entity

import (
	"fmt"
	"strings"
)

type InternshipStatus string

const (
	InternshipOnboarding InternshipStatus = "Onboarding"
	InternshipActive     InternshipStatus = "Active"
	InternshipPaused     InternshipStatus = "Paused"
	InternshipCompleted  InternshipStatus = "Completed"
)

type InternshipPlacement struct {
	ID             string           `json:"id" yaml:"id"`
	Intern         string           `json:"intern" yaml:"intern"`
	Program        string           `json:"program" yaml:"program"`
	PlacementDates string           `json:"placement_dates" yaml:"placementDates"`
	Mentor         string           `json:"mentor" yaml:"mentor"`
	Location       string           `json:"location" yaml:"location"`
	HoursCompleted float64          `json:"hours_completed" yaml:"hoursCompleted"`
	TargetHours    float64          `json:"target_hours" yaml:"targetHours"`
	Status         InternshipStatus `json:"status" yaml:"status"`
	NextCheckIn    string           `json:"next_check_in" yaml:"nextCheckIn"`
	Goals          string           `json:"goals" yaml:"goals"`
	Notes          string           `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (p InternshipPlacement) RecordID() string { return p.ID }

// LogHours adds hours and forces Completed once the target is reached.
// Otherwise the current status is kept.
func (p InternshipPlacement) LogHours(hours float64, note string) InternshipPlacement {
	p.HoursCompleted += hours
	if p.HoursCompleted >= p.TargetHours {
		p.Status = InternshipCompleted
	}
	if note = strings.TrimSpace(note); note != "" {
		p.Notes = AppendNote(p.Notes, "• "+note)
	}
	return p
}

func (p InternshipPlacement) AssignMentor(mentor, note string) InternshipPlacement {
	p.Mentor = mentor
	if note = strings.TrimSpace(note); note != "" {
		p.Notes = AppendNote(p.Notes, fmt.Sprintf("• Mentor update: %s", note))
	}
	return p
}

// AppendNote joins notes with a line break, skipping an empty head.
func AppendNote(existing, line string) string {
	if existing == "" {
		return line
	}
	return existing + "\n" + line
}
