package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/circuit/internal/models"
	"github.com/balkashynov/circuit/internal/timer"
)

// RunTimerTUI runs menu on engine full-screen and returns the run record
func RunTimerTUI(engine timer.Engine, menu models.Menu, tickInterval time.Duration) (models.Run, error) {
	model := NewTimerModel(engine, menu, tickInterval)
	if err := model.Err(); err != nil {
		return models.Run{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return models.Run{}, err
	}

	m, ok := finalModel.(TimerModel)
	if !ok {
		return models.Run{}, fmt.Errorf("unexpected model type %T", finalModel)
	}
	if err := m.Err(); err != nil {
		return models.Run{}, err
	}
	return m.Record(), nil
}

// RunMenuFormTUI shows the menu form. ok is false when the user cancelled.
func RunMenuFormTUI(prefilled map[string]string, existing map[string]models.Menu) (models.Menu, bool, error) {
	p := tea.NewProgram(NewMenuFormModel(prefilled, existing))
	finalModel, err := p.Run()
	if err != nil {
		return models.Menu{}, false, err
	}

	m, ok := finalModel.(MenuFormModel)
	if !ok {
		return models.Menu{}, false, fmt.Errorf("unexpected model type %T", finalModel)
	}
	menu, submitted := m.Menu()
	return menu, submitted, nil
}

// RunPickerTUI lets the user choose a menu. ok is false when cancelled.
func RunPickerTUI(menus map[string]models.Menu) (models.Menu, bool, error) {
	p := tea.NewProgram(NewPickerModel(menus))
	finalModel, err := p.Run()
	if err != nil {
		return models.Menu{}, false, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return models.Menu{}, false, fmt.Errorf("unexpected model type %T", finalModel)
	}
	menu, chosen := m.Selected()
	return menu, chosen, nil
}
