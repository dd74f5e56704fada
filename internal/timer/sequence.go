package timer

import "github.com/balkashynov/circuit/internal/models"

// BuildSequence expands a menu into its ordered Work/Rest phases.
// A Rest phase follows every Work phase except the last, and is omitted
// entirely when the menu has no rest.
func BuildSequence(menu models.Menu) []models.Phase {
	var phases []models.Phase
	if menu.Sets > 0 && menu.Sets <= models.MaxSets {
		phases = make([]models.Phase, 0, 2*menu.Sets)
	}
	for set := 1; set <= menu.Sets; set++ {
		phases = append(phases, models.Phase{
			Label:     models.PhaseWork,
			Duration:  menu.WorkSeconds,
			SetIndex:  set,
			TotalSets: menu.Sets,
		})
		if set < menu.Sets && menu.RestSeconds > 0 {
			phases = append(phases, models.Phase{
				Label:     models.PhaseRest,
				Duration:  menu.RestSeconds,
				SetIndex:  set,
				TotalSets: menu.Sets,
			})
		}
	}
	return phases
}

// TotalDuration sums the phase durations in seconds
func TotalDuration(phases []models.Phase) int {
	total := 0
	for _, phase := range phases {
		total += phase.Duration
	}
	return total
}
