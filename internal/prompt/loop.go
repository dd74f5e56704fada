package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/store"
)

// TickSource returns a channel of ticks and a func that releases it
type TickSource func() (<-chan time.Time, func())

// Ticker is the TickSource for real runs
func Ticker(interval time.Duration) TickSource {
	return func() (<-chan time.Time, func()) {
		t := time.NewTicker(interval)
		return t.C, t.Stop
	}
}

// Loop is the numbered main menu of the line-mode app
type Loop struct {
	Prompter *Prompter
	Store    *store.Store
	Runner   *Runner
	Ticks    TickSource

	// OnRunFinished is called after every run, completed or not
	OnRunFinished func(models.Run)

	// RunContext derives the context of a single run. The default cancels
	// it on Ctrl+C, so an interrupt ends the run but not the session.
	RunContext func(context.Context) (context.Context, context.CancelFunc)
}

// Run shows the main menu until the user quits or input ends
func (l *Loop) Run(ctx context.Context) error {
	out := l.Prompter.Out()

	for {
		fmt.Fprintln(out, "\n=== Circuit timer ===")
		fmt.Fprintln(out, "1. Create/overwrite menu")
		fmt.Fprintln(out, "2. List menus")
		fmt.Fprintln(out, "3. Choose a menu and start")
		fmt.Fprintln(out, "4. Quit")

		choice, err := l.Prompter.ReadLine("Choice: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "\nBye.")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = l.create()
		case "2":
			err = l.list()
		case "3":
			err = l.run(ctx)
		case "4", "q":
			fmt.Fprintln(out, "Bye.")
			return nil
		default:
			fmt.Fprintln(out, "Enter a number from 1 to 4.")
			continue
		}

		switch {
		case err == nil, errors.Is(err, ErrCancelled):
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out, "\nBye.")
			return nil
		default:
			// storage and validation errors are shown, the loop keeps going
			fmt.Fprintf(out, "Error: %v\n", err)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (l *Loop) create() error {
	menus, err := l.Store.Load()
	if err != nil {
		return err
	}
	menu, err := l.Prompter.CreateMenu(menus)
	if err != nil {
		return err
	}
	menus[menu.Name] = menu
	if err := l.Store.Save(menus); err != nil {
		return err
	}
	fmt.Fprintf(l.Prompter.Out(), "Saved %q.\n", menu.Name)
	return nil
}

func (l *Loop) list() error {
	menus, err := l.Store.Load()
	if err != nil {
		return err
	}
	if len(menus) == 0 {
		fmt.Fprintln(l.Prompter.Out(), "No saved menus.")
		return nil
	}
	fmt.Fprintln(l.Prompter.Out(), "\n--- Menus ---")
	l.Prompter.PrintMenus(menus)
	return nil
}

func (l *Loop) run(ctx context.Context) error {
	menus, err := l.Store.Load()
	if err != nil {
		return err
	}
	menu, err := l.Prompter.ChooseMenu(menus)
	if err != nil {
		return err
	}

	runContext := l.RunContext
	if runContext == nil {
		runContext = func(ctx context.Context) (context.Context, context.CancelFunc) {
			return signal.NotifyContext(ctx, os.Interrupt)
		}
	}
	runCtx, stop := runContext(ctx)
	defer stop()

	ticks, release := l.Ticks()
	defer release()

	run, err := l.Runner.Run(runCtx, menu, ticks)
	if err != nil {
		return err
	}
	if l.OnRunFinished != nil {
		l.OnRunFinished(run)
	}
	return nil
}
