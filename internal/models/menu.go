package models

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MaxSets bounds the set count so a phase sequence always fits in memory
	MaxSets = 1000
	// MaxPhaseSeconds is the longest work or rest phase an int can total safely
	MaxPhaseSeconds = math.MaxInt32
)

// Menu represents one training program
type Menu struct {
	Name        string `json:"name" yaml:"name"`
	WorkSeconds int    `json:"set_seconds" yaml:"set_seconds"`
	RestSeconds int    `json:"rest_seconds" yaml:"rest_seconds"`
	Sets        int    `json:"sets" yaml:"sets"`
}

// NewMenu validates the fields and builds a Menu.
// The name is trimmed; no partial menu is returned on failure.
func NewMenu(name string, workSeconds, restSeconds, sets int) (Menu, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Menu{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if workSeconds <= 0 {
		return Menu{}, &ValidationError{Field: "work_seconds", Reason: "must be positive"}
	}
	if workSeconds > MaxPhaseSeconds {
		return Menu{}, &ValidationError{Field: "work_seconds", Reason: "too large"}
	}
	if restSeconds < 0 {
		return Menu{}, &ValidationError{Field: "rest_seconds", Reason: "must not be negative"}
	}
	if restSeconds > MaxPhaseSeconds {
		return Menu{}, &ValidationError{Field: "rest_seconds", Reason: "too large"}
	}
	if sets < 1 {
		return Menu{}, &ValidationError{Field: "sets", Reason: "must be at least 1"}
	}
	if sets > MaxSets {
		return Menu{}, &ValidationError{Field: "sets", Reason: fmt.Sprintf("must be at most %d", MaxSets)}
	}

	return Menu{
		Name:        name,
		WorkSeconds: workSeconds,
		RestSeconds: restSeconds,
		Sets:        sets,
	}, nil
}

// Validate re-checks a menu that was built outside NewMenu (e.g. decoded from disk)
func (m Menu) Validate() (Menu, error) {
	return NewMenu(m.Name, m.WorkSeconds, m.RestSeconds, m.Sets)
}
