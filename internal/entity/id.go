package entity

import (
	"errors"

	"github.com/google/uuid"
)

// ID prefixes follow the seeded demo records (ft-001, tb-1001, ...).
const (
	PrefixLead      = "ft"
	PrefixBooking   = "tb"
	PrefixFollowUp  = "sf"
	PrefixEnrolment = "en"
	PrefixPlacement = "ip"
	PrefixClass     = "cs"
)

const (
	DateLayout      = "2006-01-02"
	DateTimeLayout  = "2006-01-02T15:04"
	DateTimeSeconds = "2006-01-02T15:04:05"
)

var ErrInvalidStatus = errors.New("invalid status")

// NewID returns a prefixed, time-ordered identifier. UUIDv7 keeps records
// created within the same millisecond distinct.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}

// Record is implemented by every entity kept in the demo store.
type Record interface {
	RecordID() string
}
