package timer

import "github.com/balkashynov/circuit/internal/models"

// State represents the controller mode.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed" // only observable from OnComplete
)

// Listener receives controller notifications. Nil hooks are skipped.
type Listener struct {
	OnPhaseStart func(phase models.Phase)
	OnTick       func(phase models.Phase, remaining, elapsed int)
	OnComplete   func()
}

// Engine is the surface the presentation drivers depend on.
type Engine interface {
	Load(menu models.Menu)
	Start() error
	Stop()
	Tick(delta int)
	CurrentPhase() (models.Phase, bool)
	State() State
	Remaining() int
	Elapsed() int
	Total() int
	Progress() float64
	Subscribe(listener Listener)
}
