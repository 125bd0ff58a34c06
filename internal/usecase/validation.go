package usecase

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
)

const (
	msgRequiredLeadFields  = "Please fill the required fields."
	msgTrialTimeRequired   = "Please select a trial time."
	msgNewTimeRequired     = "Please select a new time."
	msgInvalidTime         = "Please enter a valid time."
	msgInvalidHours        = "Please enter a valid number of hours."
	msgMentorRequired      = "Please choose a mentor."
	msgDueDateRequired     = "Next action due date is required."
	msgNextActionRequired  = "Please describe the next action."
	msgEnrolmentRequired   = "Student and program are required."
	msgInvalidStatus       = "Please choose a valid status."
	msgInvalidDate         = "Please enter a valid date."
	msgClassNameRequired   = "Class name is required."
	msgClassNumbersInvalid = "Capacity and enrolled must not be negative."
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// parseHours accepts a positive, finite decimal.
func parseHours(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isValidDate(s string) bool {
	_, err := time.Parse(entity.DateLayout, s)
	return err == nil
}

// scheduleTime validates a submitted timestamp, reporting missing and
// unparseable values with different messages.
func (d Deps) scheduleTime(raw, missingMsg string) (string, time.Time, error) {
	value := strings.TrimSpace(raw)
	at, err := entity.ParseScheduledAt(value, d.location())
	switch {
	case errors.Is(err, entity.ErrMissingScheduledAt):
		return "", time.Time{}, d.reject("scheduled_at", missingMsg)
	case err != nil:
		return "", time.Time{}, d.reject("scheduled_at", msgInvalidTime)
	}
	return value, at, nil
}
