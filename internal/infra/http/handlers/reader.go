package handlers

import "github.com/xavierca1/cirkidz-admin/internal/entity"

// Reader is the read side of the demo store.
type Reader interface {
	Leads() []entity.Lead
	Bookings() []entity.TrialBooking
	FollowUps() []entity.SalesFollowUp
	Enrolments() []entity.Enrolment
	Placements() []entity.InternshipPlacement
	Classes() []entity.ClassSession
}
