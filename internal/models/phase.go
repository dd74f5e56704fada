package models

import "fmt"

// PhaseLabel tags a phase as work or rest
type PhaseLabel string

const (
	PhaseWork PhaseLabel = "Work"
	PhaseRest PhaseLabel = "Rest"
)

// Phase is one timed segment of a run
type Phase struct {
	Label     PhaseLabel
	Duration  int // seconds
	SetIndex  int // 1-based
	TotalSets int
}

// String renders e.g. "Work 2/3"
func (p Phase) String() string {
	return fmt.Sprintf("%s %d/%d", p.Label, p.SetIndex, p.TotalSets)
}
