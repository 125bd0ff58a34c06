package entity

import "errors"

type ClassSession struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Schedule string   `json:"schedule" yaml:"schedule"`
	Coach    string   `json:"coach" yaml:"coach"`
	Location string   `json:"location" yaml:"location"`
	Capacity int      `json:"capacity" yaml:"capacity"`
	Enrolled int      `json:"enrolled" yaml:"enrolled"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func (c ClassSession) RecordID() string { return c.ID }

func (c *ClassSession) Validate() error {
	if c.Name == "" {
		return errors.New("class name is required")
	}
	if c.Capacity < 0 || c.Enrolled < 0 {
		return errors.New("capacity and enrolled must not be negative")
	}
	return nil
}

func (c ClassSession) SpotsLeft() int {
	if c.Enrolled >= c.Capacity {
		return 0
	}
	return c.Capacity - c.Enrolled
}
