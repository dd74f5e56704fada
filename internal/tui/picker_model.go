package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/parser"
	"github.com/balkashynov/circuit/internal/store"
	"github.com/balkashynov/circuit/internal/timer"
)

// PickerModel lets the user choose one of the stored menus
type PickerModel struct {
	menus  map[string]models.Menu
	names  []string
	cursor int
	width  int

	chosen    bool
	cancelled bool
}

// NewPickerModel lists menus in name order
func NewPickerModel(menus map[string]models.Menu) PickerModel {
	return PickerModel{
		menus: menus,
		names: store.SortedNames(menus),
	}
}

// Init initializes the model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.names) > 0 {
				m.chosen = true
				return m, tea.Quit
			}
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// Selected returns the highlighted menu and whether it was chosen
func (m PickerModel) Selected() (models.Menu, bool) {
	if !m.chosen || len(m.names) == 0 {
		return models.Menu{}, false
	}
	return m.menus[m.names[m.cursor]], true
}

// View renders the list
func (m PickerModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	b.WriteString(titleStyle.Render("CHOOSE A MENU"))
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No saved menus. Create one with 'circuit menu add'."))
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	}

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	for i, name := range m.names {
		menu := m.menus[name]
		total := timer.TotalDuration(timer.BuildSequence(menu))
		line := fmt.Sprintf("%s  %d×%s / rest %s  (%s)",
			menu.Name, menu.Sets,
			parser.FormatDuration(menu.WorkSeconds),
			parser.FormatDuration(menu.RestSeconds),
			parser.FormatClock(total))
		if i == m.cursor {
			b.WriteString(activeStyle.Render("› " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	help := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	b.WriteString("\n")
	b.WriteString(help.Render("↑/↓ move · enter start · esc cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
