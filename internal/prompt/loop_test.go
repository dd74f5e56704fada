package prompt

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/store"
	"github.com/balkashynov/circuit/internal/timer"
)

func newTestLoop(t *testing.T, input string) (*Loop, *bytes.Buffer, *[]models.Run) {
	t.Helper()
	out := &bytes.Buffer{}
	var results []models.Run
	loop := &Loop{
		Prompter: New(strings.NewReader(input), out),
		Store:    store.New(filepath.Join(t.TempDir(), "menus.json")),
		Runner:   NewRunner(out, timer.NewController()),
		Ticks: func() (<-chan time.Time, func()) {
			return instantTicks(100), func() {}
		},
		OnRunFinished: func(r models.Run) { results = append(results, r) },
	}
	return loop, out, &results
}

func TestLoop_CreateListRunQuit(t *testing.T) {
	input := strings.Join([]string{
		"1", "legs", "2s", "1s", "2", // create
		"2",      // list
		"3", "1", // run first menu
		"4", // quit
	}, "\n") + "\n"
	loop, out, results := newTestLoop(t, input)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	for _, want := range []string{`Saved "legs".`, "1. legs | sets: 2, work: 2s, rest: 1s", "Workout complete", "Bye."} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if len(*results) != 1 || !(*results)[0].Completed {
		t.Fatalf("results = %+v, want one completed run", *results)
	}

	menus, err := loop.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := menus["legs"]; !ok {
		t.Fatal("menu not persisted")
	}
}

func TestLoop_InvalidChoiceAndEOF(t *testing.T) {
	loop, out, _ := newTestLoop(t, "9\n2\n")
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	if !strings.Contains(text, "Enter a number from 1 to 4.") {
		t.Fatalf("missing invalid-choice message:\n%s", text)
	}
	if !strings.Contains(text, "No saved menus.") {
		t.Fatalf("missing empty list message:\n%s", text)
	}
	if !strings.HasSuffix(strings.TrimSpace(text), "Bye.") {
		t.Fatalf("EOF should end the loop:\n%s", text)
	}
}

func TestLoop_RunWithNoMenus(t *testing.T) {
	loop, out, results := newTestLoop(t, "3\n4\n")
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(*results) != 0 {
		t.Fatal("no run should happen without menus")
	}
	if strings.Contains(out.String(), "Error:") {
		t.Fatalf("cancel should not be reported as an error:\n%s", out.String())
	}
}

func TestLoop_InterruptedRunKeepsSession(t *testing.T) {
	input := strings.Join([]string{
		"1", "core", "3s", "0", "1", // create
		"3", "1", // first run, interrupted
		"3", "1", // second run
		"4",
	}, "\n") + "\n"
	loop, out, results := newTestLoop(t, input)

	calls := 0
	loop.Ticks = func() (<-chan time.Time, func()) {
		calls++
		if calls == 1 {
			// never fires, so only the interrupt can end the run
			return make(chan time.Time), func() {}
		}
		return instantTicks(100), func() {}
	}
	runs := 0
	loop.RunContext = func(ctx context.Context) (context.Context, context.CancelFunc) {
		runs++
		runCtx, cancel := context.WithCancel(ctx)
		if runs == 1 {
			cancel()
		}
		return runCtx, cancel
	}

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(*results) != 2 {
		t.Fatalf("got %d runs, want 2:\n%s", len(*results), out.String())
	}
	if (*results)[0].Completed {
		t.Fatal("interrupted run should not be completed")
	}
	if !(*results)[1].Completed || (*results)[1].ElapsedSeconds != 3 {
		t.Fatalf("second run = %+v, want completed after 3s", (*results)[1])
	}
	text := out.String()
	if !strings.Contains(text, "Stopped.") || !strings.Contains(text, "Workout complete") || !strings.HasSuffix(strings.TrimSpace(text), "Bye.") {
		t.Fatalf("unexpected output:\n%s", text)
	}
}
