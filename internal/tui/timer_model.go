package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/parser"
	"github.com/balkashynov/circuit/internal/timer"
)

// runState is updated by the engine listener. It lives behind a pointer so
// copies of the bubbletea model share it.
type runState struct {
	phase     models.Phase
	completed bool
}

// TimerModel represents the TUI model for a circuit run
type TimerModel struct {
	width  int
	height int

	engine   timer.Engine
	menu     models.Menu
	run      *runState
	progress progress.Model

	// Timer state
	tickInterval time.Duration
	startedAt    time.Time
	finishedAt   time.Time
	elapsed      int // captured before the engine is stopped

	// UI state
	paused   bool
	stopping bool // True when user pressed S/Q/esc and we're exiting early
	done     bool // True once every phase has run
	err      error
}

// timerTickMsg is sent every tick interval to advance the engine
type timerTickMsg struct{}

// NewTimerModel loads menu into engine and starts it
func NewTimerModel(engine timer.Engine, menu models.Menu, tickInterval time.Duration) TimerModel {
	if tickInterval <= 0 {
		tickInterval = time.Second
	}

	run := &runState{}
	engine.Subscribe(timer.Listener{
		OnPhaseStart: func(phase models.Phase) {
			run.phase = phase
		},
		OnComplete: func() {
			run.completed = true
		},
	})

	bar := progress.New(
		progress.WithGradient(ColorAccentMain, ColorAccentBright),
		progress.WithoutPercentage(),
	)

	m := TimerModel{
		engine:       engine,
		menu:         menu,
		run:          run,
		progress:     bar,
		tickInterval: tickInterval,
		startedAt:    time.Now(),
	}

	engine.Load(menu)
	if err := engine.Start(); err != nil {
		m.err = err
	}
	return m
}

// Init starts the tick loop
func (m TimerModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return m.nextTick()
}

func (m TimerModel) nextTick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if m.stopping || m.done {
			return m, nil
		}
		if !m.paused {
			m.engine.Tick(1)
			m.elapsed = m.engine.Elapsed()
		}
		if m.run.completed {
			m.done = true
			m.finishedAt = time.Now()
			return m, nil
		}
		return m, m.nextTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 10), 80)
		return m, nil

	case tea.KeyMsg:
		if m.done {
			// Any key leaves the completion screen
			return m, tea.Quit
		}
		switch msg.String() {
		case " ", "space", "p":
			m.paused = !m.paused
			return m, nil
		case "r", "R":
			m.paused = false
			m.run.completed = false
			m.startedAt = time.Now()
			if err := m.engine.Start(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.elapsed = 0
			return m, nil
		case "s", "S", "q", "esc", "ctrl+c":
			m.elapsed = m.engine.Elapsed()
			m.engine.Stop()
			m.stopping = true
			m.finishedAt = time.Now()
			return m, tea.Quit
		}
	}

	return m, nil
}

// Record returns the history entry for the run
func (m TimerModel) Record() models.Run {
	run := models.NewRun(m.menu, m.engine.Total(), m.startedAt)
	run.FinishedAt = m.finishedAt
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now()
	}
	run.ElapsedSeconds = m.elapsed
	run.Completed = m.done
	return run
}

// Err returns the error that ended the run early, if any
func (m TimerModel) Err() error {
	return m.err
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("Error: " + m.err.Error())
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var content string
	if m.done {
		content = m.renderComplete()
	} else {
		content = m.renderRun()
	}

	panel := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}

func (m TimerModel) renderRun() string {
	var components []string
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render(strings.ToUpper(m.menu.Name))
	components = append(components, center.Render(title))

	phase := m.run.phase
	color := ColorWork
	if phase.Label == models.PhaseRest {
		color = ColorRest
	}
	phaseText := fmt.Sprintf("%s · set %d/%d", strings.ToUpper(string(phase.Label)), phase.SetIndex, phase.TotalSets)
	if m.paused {
		phaseText += "  (PAUSED)"
	}
	phaseLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render(phaseText)
	components = append(components, center.Render(phaseLine))

	clockColor := color
	if m.paused {
		clockColor = ColorDisabledText
	}
	clockLines := strings.Split(renderBigClock(m.engine.Remaining(), clockColor), "\n")
	for i, line := range clockLines {
		clockLines[i] = center.Render(line)
	}
	components = append(components, strings.Join(clockLines, "\n"))

	components = append(components, center.Render(m.progress.ViewAs(m.engine.Progress())))

	stats := fmt.Sprintf("%s / %s", parser.FormatClock(m.engine.Elapsed()), parser.FormatClock(m.engine.Total()))
	statsLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Render(stats)
	components = append(components, center.Render(statsLine))

	return strings.Join(components, "\n\n")
}

func (m TimerModel) renderComplete() string {
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width)

	doneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true)
	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	lines := []string{
		center.Render(doneStyle.Render("WORKOUT COMPLETE")),
		center.Render(summaryStyle.Render(fmt.Sprintf("%s · %d sets · %s",
			m.menu.Name, m.menu.Sets, parser.FormatClock(m.elapsed)))),
	}
	return strings.Join(lines, "\n\n")
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "space pause/resume · r restart · s/q/esc stop"
	if m.done {
		helpText = "press any key to exit"
	}

	return helpStyle.Render(helpText)
}
