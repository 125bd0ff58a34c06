package database

import (
	"sync"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
)

// Collections is one consistent view of every entity list. Inside Atomic it
// is a staged copy; changes become visible only when the callback succeeds.
type Collections struct {
	Leads      *Collection[entity.Lead]
	Bookings   *Collection[entity.TrialBooking]
	FollowUps  *Collection[entity.SalesFollowUp]
	Enrolments *Collection[entity.Enrolment]
	Placements *Collection[entity.InternshipPlacement]
	Classes    *Collection[entity.ClassSession]
}

func (c *Collections) clone() *Collections {
	return &Collections{
		Leads:      c.Leads.clone(),
		Bookings:   c.Bookings.clone(),
		FollowUps:  c.FollowUps.clone(),
		Enrolments: c.Enrolments.clone(),
		Placements: c.Placements.clone(),
		Classes:    c.Classes.clone(),
	}
}

// DemoStore owns the demo data for the lifetime of the process.
type DemoStore struct {
	mu    sync.RWMutex
	state *Collections
	seed  *Seed
}

func NewDemoStore(seed *Seed) *DemoStore {
	s := &DemoStore{seed: seed}
	s.state = seed.collections()
	return s
}

// Atomic runs fn against a staged copy of all collections and publishes the
// copy only if fn returns nil. Writers are serialised.
func (s *DemoStore) Atomic(fn func(tx *Collections) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(staged); err != nil {
		return err
	}
	s.state = staged
	return nil
}

// View runs fn against the live collections under a read lock. fn must not
// mutate or retain them.
func (s *DemoStore) View(fn func(c *Collections)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Reset restores the seed, the same state a fresh process starts with.
func (s *DemoStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.seed.collections()
}

func (s *DemoStore) Leads() []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Leads.List()
}

func (s *DemoStore) Bookings() []entity.TrialBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Bookings.List()
}

func (s *DemoStore) FollowUps() []entity.SalesFollowUp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.FollowUps.List()
}

func (s *DemoStore) Enrolments() []entity.Enrolment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Enrolments.List()
}

func (s *DemoStore) Placements() []entity.InternshipPlacement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Placements.List()
}

func (s *DemoStore) Classes() []entity.ClassSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Classes.List()
}

// Counts is used by the health endpoint.
func (s *DemoStore) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"leads":      s.state.Leads.Len(),
		"bookings":   s.state.Bookings.Len(),
		"follow_ups": s.state.FollowUps.Len(),
		"enrolments": s.state.Enrolments.Len(),
		"placements": s.state.Placements.Len(),
		"classes":    s.state.Classes.Len(),
	}
}
