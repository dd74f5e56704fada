package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/parser"
)

// Field indexes the menu form inputs
type Field int

const (
	FieldName Field = iota
	FieldWork
	FieldRest
	FieldSets
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldName: "Menu name",
	FieldWork: "Work per set",
	FieldRest: "Rest between sets",
	FieldSets: "Sets",
}

// MenuFormModel represents the TUI form for creating or overwriting a menu
type MenuFormModel struct {
	inputs  []textinput.Model
	focused Field
	width   int
	height  int

	existing map[string]models.Menu

	// Parsed values, filled as each field is confirmed
	name string
	work int
	rest int
	sets int

	// State
	menu          models.Menu
	completed     bool
	cancelled     bool
	validationErr string
}

// NewMenuFormModel creates the form. prefilled keys are "name", "work",
// "rest" and "sets"; existing is used to warn before an overwrite.
func NewMenuFormModel(prefilled map[string]string, existing map[string]models.Menu) MenuFormModel {
	inputs := make([]textinput.Model, fieldCount)
	placeholders := [fieldCount]string{
		FieldName: "e.g. Morning circuit (required)",
		FieldWork: "45s, 1.5m or plain seconds",
		FieldRest: "15s, 1m, 0 for no rest",
		FieldSets: "whole number, at least 1",
	}
	keys := [fieldCount]string{FieldName: "name", FieldWork: "work", FieldRest: "rest", FieldSets: "sets"}

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 60
		inputs[i].Placeholder = placeholders[i]
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		if value, ok := prefilled[keys[i]]; ok {
			inputs[i].SetValue(value)
		}
	}
	inputs[FieldName].Focus()

	if existing == nil {
		existing = map[string]models.Menu{}
	}

	return MenuFormModel{
		inputs:   inputs,
		focused:  FieldName,
		existing: existing,
	}
}

// Init initializes the model
func (m MenuFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m MenuFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "shift+tab", "up":
			if m.focused > FieldName {
				m.validationErr = ""
				return m, m.focus(m.focused - 1)
			}
			return m, nil
		case "enter", "tab", "down":
			return m.confirmField()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// confirmField validates the focused input and moves on, or saves after
// the last field.
func (m MenuFormModel) confirmField() (tea.Model, tea.Cmd) {
	value := m.inputs[m.focused].Value()

	var err error
	switch m.focused {
	case FieldName:
		m.name = strings.TrimSpace(value)
		if m.name == "" {
			err = &models.ValidationError{Field: "name", Reason: "must not be empty"}
		}
	case FieldWork:
		m.work, err = parser.ParseDuration(value)
	case FieldRest:
		m.rest, err = parser.ParseRest(value)
	case FieldSets:
		m.sets, err = parser.ParseSets(value)
	}
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	m.validationErr = ""

	if m.focused < FieldSets {
		return m, m.focus(m.focused + 1)
	}

	menu, err := models.NewMenu(m.name, m.work, m.rest, m.sets)
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}
	m.menu = menu
	m.completed = true
	return m, tea.Quit
}

func (m *MenuFormModel) focus(field Field) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = field
	return m.inputs[field].Focus()
}

// Menu returns the completed menu and whether the form was submitted
func (m MenuFormModel) Menu() (models.Menu, bool) {
	return m.menu, m.completed && !m.cancelled
}

// Cancelled reports whether the user left the form
func (m MenuFormModel) Cancelled() bool {
	return m.cancelled
}

// View renders the form
func (m MenuFormModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	b.WriteString(titleStyle.Render("NEW MENU"))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	for i := range m.inputs {
		style := labelStyle
		marker := "  "
		if Field(i) == m.focused {
			style = activeLabelStyle
			marker = "› "
		}
		b.WriteString(style.Render(marker + fieldLabels[i]))
		b.WriteString("\n  ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	name := strings.TrimSpace(m.inputs[FieldName].Value())
	if _, exists := m.existing[name]; exists && name != "" {
		warning := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
		b.WriteString(warning.Render(fmt.Sprintf("⚠️  %q already exists and will be overwritten", name)))
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	help := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	b.WriteString("\n")
	b.WriteString(help.Render("enter next/save · shift+tab back · esc cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
