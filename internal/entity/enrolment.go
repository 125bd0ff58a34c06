package entity

import (
	"errors"
	"strings"
)

type EnrolmentStatus string

const (
	EnrolmentPendingPayment EnrolmentStatus = "Pending Payment"
	EnrolmentActive         EnrolmentStatus = "Active"
	EnrolmentPaused         EnrolmentStatus = "Paused"
	EnrolmentCancelled      EnrolmentStatus = "Cancelled"
)

func (s EnrolmentStatus) Valid() bool {
	switch s {
	case EnrolmentPendingPayment, EnrolmentActive, EnrolmentPaused, EnrolmentCancelled:
		return true
	}
	return false
}

// Next is the toggle cycle: Pending Payment -> Active -> Paused -> Active.
// Cancelled is absorbing.
func (s EnrolmentStatus) Next() EnrolmentStatus {
	switch s {
	case EnrolmentPendingPayment:
		return EnrolmentActive
	case EnrolmentActive:
		return EnrolmentPaused
	case EnrolmentPaused:
		return EnrolmentActive
	default:
		return EnrolmentCancelled
	}
}

const DefaultNextPayment = "To be scheduled"

type Enrolment struct {
	ID            string          `json:"id" yaml:"id"`
	Student       string          `json:"student" yaml:"student"`
	Program       string          `json:"program" yaml:"program"`
	EnrolmentDate string          `json:"enrolment_date" yaml:"enrolmentDate"`
	Status        EnrolmentStatus `json:"status" yaml:"status"`
	NextPayment   string          `json:"next_payment" yaml:"nextPayment"`
	Notes         string          `json:"notes" yaml:"notes"`
}

func (e Enrolment) RecordID() string { return e.ID }

func NewEnrolment(student, program, enrolmentDate string, status EnrolmentStatus, nextPayment, notes string) (*Enrolment, error) {
	if status == "" {
		status = EnrolmentPendingPayment
	}
	enrolment := &Enrolment{
		ID:            NewID(PrefixEnrolment),
		Student:       strings.TrimSpace(student),
		Program:       strings.TrimSpace(program),
		EnrolmentDate: enrolmentDate,
		Status:        status,
		NextPayment:   nextPayment,
		Notes:         notes,
	}
	if err := enrolment.Validate(); err != nil {
		return nil, err
	}
	return enrolment, nil
}

func (e *Enrolment) Validate() error {
	if e.Student == "" || e.Program == "" {
		return errors.New("student and program are required")
	}
	if !e.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
