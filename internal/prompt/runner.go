package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/parser"
	"github.com/balkashynov/circuit/internal/timer"
)

// Runner drives a timer engine in line mode, one tick per received value
type Runner struct {
	out       io.Writer
	engine    timer.Engine
	completed bool
}

// NewRunner subscribes to engine and prints its notifications to out
func NewRunner(out io.Writer, engine timer.Engine) *Runner {
	r := &Runner{out: out, engine: engine}
	engine.Subscribe(timer.Listener{
		OnPhaseStart: r.phaseStarted,
		OnTick:       r.ticked,
		OnComplete:   r.finished,
	})
	return r
}

func (r *Runner) phaseStarted(phase models.Phase) {
	if phase.Label == models.PhaseWork {
		fmt.Fprintf(r.out, "\nSet %d/%d - work\n", phase.SetIndex, phase.TotalSets)
	} else {
		fmt.Fprintln(r.out, "\nRest")
	}
}

func (r *Runner) ticked(phase models.Phase, remaining, elapsed int) {
	fmt.Fprintf(r.out, "\r%s: %s left", phase.Label, parser.FormatClock(remaining))
}

func (r *Runner) finished() {
	r.completed = true
	fmt.Fprintln(r.out, "\n\nWorkout complete. Nice job!")
}

// Run loads menu, starts the engine and ticks it once per value received
// from ticks until the sequence completes, ctx is cancelled or ticks closes.
// The returned record is ready to be stored in the run history.
func (r *Runner) Run(ctx context.Context, menu models.Menu, ticks <-chan time.Time) (models.Run, error) {
	r.completed = false
	r.engine.Load(menu)

	run := models.NewRun(menu, r.engine.Total(), time.Now())
	fmt.Fprintf(r.out, "\n=== %s (%s total) ===\n", menu.Name, parser.FormatClock(run.TotalSeconds))

	if err := r.engine.Start(); err != nil {
		return run, err
	}

	for {
		select {
		case <-ctx.Done():
			r.finish(&run)
			fmt.Fprintln(r.out, "\n\nStopped.")
			return run, nil
		case _, ok := <-ticks:
			if !ok {
				r.finish(&run)
				return run, nil
			}
			r.engine.Tick(1)
			if r.engine.State() != timer.StateRunning {
				r.finish(&run)
				return run, nil
			}
		}
	}
}

// finish fills in the end of run and stops the engine if it is still going
func (r *Runner) finish(run *models.Run) {
	run.FinishedAt = time.Now()
	run.ElapsedSeconds = r.engine.Elapsed()
	run.Completed = r.completed
	r.engine.Stop()
}

// Describe renders a menu's phases, one per line
func Describe(menu models.Menu) string {
	var b strings.Builder
	phases := timer.BuildSequence(menu)
	for i, phase := range phases {
		fmt.Fprintf(&b, "%2d. %-4s set %d/%d  %s\n", i+1, phase.Label, phase.SetIndex, phase.TotalSets, parser.FormatClock(phase.Duration))
	}
	fmt.Fprintf(&b, "Total: %s\n", parser.FormatClock(timer.TotalDuration(phases)))
	return b.String()
}
