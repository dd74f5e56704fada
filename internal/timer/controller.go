package timer

import (
	"github.com/balkashynov/circuit/internal/models"
)

// Controller is a tick-driven state machine that walks a phase sequence.
// It never schedules work itself; the host calls Tick once per second and
// must serialise all calls.
type Controller struct {
	sequence  []models.Phase
	total     int
	index     int
	remaining int
	elapsed   int
	state     State
	listeners []Listener
}

var _ Engine = (*Controller)(nil)

// NewController creates an idle controller with an empty sequence.
func NewController() *Controller {
	return &Controller{state: StateIdle}
}

// Subscribe registers a listener. Listeners are called in registration order.
func (c *Controller) Subscribe(listener Listener) {
	c.listeners = append(c.listeners, listener)
}

// Load builds the phase sequence for a menu and resets the counters.
func (c *Controller) Load(menu models.Menu) {
	c.LoadSequence(BuildSequence(menu))
}

// LoadSequence installs an arbitrary phase sequence and resets the counters.
func (c *Controller) LoadSequence(phases []models.Phase) {
	c.sequence = append([]models.Phase(nil), phases...)
	c.total = TotalDuration(c.sequence)
	c.elapsed = 0
	c.index = 0
	c.remaining = 0
	if len(c.sequence) > 0 {
		c.remaining = c.sequence[0].Duration
	}
	c.state = StateIdle
}

// Start begins the run from the first phase.
func (c *Controller) Start() error {
	if len(c.sequence) == 0 {
		return &models.InvalidStateError{Op: "start", Reason: "no sequence loaded"}
	}

	c.state = StateRunning
	c.elapsed = 0
	c.index = 0
	c.remaining = c.sequence[0].Duration

	c.emitPhaseStart(c.sequence[0])
	c.emitTick(c.sequence[0])
	return nil
}

// Tick advances the run by delta seconds. Values below 1 count as 1.
// Overshoot past the end of a phase is dropped; the next phase starts full.
func (c *Controller) Tick(delta int) {
	if c.state != StateRunning {
		return
	}
	if delta < 1 {
		delta = 1
	}

	c.remaining -= delta
	c.elapsed += delta

	if c.remaining <= 0 {
		c.index++
		if c.index >= len(c.sequence) {
			c.remaining = 0
			c.state = StateCompleted
			c.emitComplete()
			c.state = StateIdle
			return
		}
		c.remaining = c.sequence[c.index].Duration
		c.emitPhaseStart(c.sequence[c.index])
	}

	c.emitTick(c.sequence[c.index])
}

// Stop halts the run and clears the counters. The loaded sequence is kept
// so Start can replay it; Load switches menus.
func (c *Controller) Stop() {
	c.state = StateIdle
	c.elapsed = 0
	c.remaining = 0
	c.index = 0
}

// CurrentPhase returns the active phase, or false when the sequence is
// empty or exhausted.
func (c *Controller) CurrentPhase() (models.Phase, bool) {
	if c.index < 0 || c.index >= len(c.sequence) {
		return models.Phase{}, false
	}
	return c.sequence[c.index], true
}

// State returns the current mode.
func (c *Controller) State() State {
	return c.state
}

// Running reports whether a run is in progress.
func (c *Controller) Running() bool {
	return c.state == StateRunning
}

// Remaining returns the seconds left in the current phase.
func (c *Controller) Remaining() int {
	return c.remaining
}

// Elapsed returns the seconds elapsed across the whole run.
func (c *Controller) Elapsed() int {
	return c.elapsed
}

// Total returns the summed duration of the loaded sequence.
func (c *Controller) Total() int {
	return c.total
}

// Index returns the 0-based position in the sequence.
func (c *Controller) Index() int {
	return c.index
}

// Sequence returns a copy of the loaded phases.
func (c *Controller) Sequence() []models.Phase {
	return append([]models.Phase(nil), c.sequence...)
}

// Progress returns the fraction of the whole run elapsed, in [0, 1].
func (c *Controller) Progress() float64 {
	if c.total <= 0 {
		return 0
	}
	progress := float64(c.elapsed) / float64(c.total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (c *Controller) emitPhaseStart(phase models.Phase) {
	for _, l := range c.listeners {
		if l.OnPhaseStart != nil {
			l.OnPhaseStart(phase)
		}
	}
}

func (c *Controller) emitTick(phase models.Phase) {
	for _, l := range c.listeners {
		if l.OnTick != nil {
			l.OnTick(phase, c.remaining, c.elapsed)
		}
	}
}

func (c *Controller) emitComplete() {
	for _, l := range c.listeners {
		if l.OnComplete != nil {
			l.OnComplete()
		}
	}
}
