package database

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xavierca1/cirkidz-admin/internal/entity"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the fixed demo state every process starts from.
type Seed struct {
	Leads      []entity.Lead                `yaml:"leads"`
	Bookings   []entity.TrialBooking        `yaml:"bookings"`
	FollowUps  []entity.SalesFollowUp       `yaml:"followUps"`
	Enrolments []entity.Enrolment           `yaml:"enrolments"`
	Placements []entity.InternshipPlacement `yaml:"placements"`
	Classes    []entity.ClassSession        `yaml:"classes"`
}

// LoadSeed reads a seed file, or the embedded demo seed when path is empty.
func LoadSeed(path string) (*Seed, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", path, err)
		}
		raw = b
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// MustDefaultSeed is for tests and tools that cannot run without demo data.
func MustDefaultSeed() *Seed {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(err)
	}
	return seed
}

func (s *Seed) validate() error {
	if err := uniqueIDs("leads", s.Leads); err != nil {
		return err
	}
	if err := uniqueIDs("bookings", s.Bookings); err != nil {
		return err
	}
	if err := uniqueIDs("followUps", s.FollowUps); err != nil {
		return err
	}
	if err := uniqueIDs("enrolments", s.Enrolments); err != nil {
		return err
	}
	if err := uniqueIDs("placements", s.Placements); err != nil {
		return err
	}
	return uniqueIDs("classes", s.Classes)
}

func uniqueIDs[T entity.Record](name string, items []T) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		id := item.RecordID()
		if id == "" {
			return fmt.Errorf("seed %s: record without id", name)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("seed %s: duplicate id %s", name, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (s *Seed) collections() *Collections {
	return &Collections{
		Leads:      NewCollection(s.Leads),
		Bookings:   NewCollection(s.Bookings),
		FollowUps:  NewCollection(s.FollowUps),
		Enrolments: NewCollection(s.Enrolments),
		Placements: NewCollection(s.Placements),
		Classes:    NewCollection(s.Classes),
	}
}
