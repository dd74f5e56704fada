package db

import (
	"errors"
	"fmt"

	"github.com/balkashynov/circuit/internal/models"
)

// ErrNotInitialized is returned when the history database is not open
var ErrNotInitialized = errors.New("history database not initialized")

// MenuStats summarizes the history of one menu
type MenuStats struct {
	MenuName       string
	Runs           int64
	CompletedRuns  int64
	ElapsedSeconds int64
}

// RecordRun stores a finished or aborted run
func RecordRun(run *models.Run) error {
	if DB == nil {
		return ErrNotInitialized
	}
	if run.MenuName == "" {
		return fmt.Errorf("run has no menu name")
	}
	if run.FinishedAt.Before(run.StartedAt) {
		return fmt.Errorf("run finished before it started")
	}

	if err := DB.Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first
func RecentRuns(limit int) ([]models.Run, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}
	if limit <= 0 {
		limit = 10
	}

	var runs []models.Run
	err := DB.Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}

	return runs, nil
}

// RunsForMenu returns every run of the named menu, oldest first
func RunsForMenu(menuName string) ([]models.Run, error) {
	if DB == nil {
		return nil, ErrNotInitialized
	}

	var runs []models.Run
	err := DB.Where("menu_name = ?", menuName).
		Order("started_at ASC").
		Find(&runs).Error
	if err != nil {
		return nil, err
	}

	return runs, nil
}

// GetMenuStats aggregates run counts and time spent for a menu
func GetMenuStats(menuName string) (*MenuStats, error) {
	runs, err := RunsForMenu(menuName)
	if err != nil {
		return nil, err
	}

	stats := &MenuStats{MenuName: menuName}
	for _, run := range runs {
		stats.Runs++
		if run.Completed {
			stats.CompletedRuns++
		}
		stats.ElapsedSeconds += int64(run.ElapsedSeconds)
	}
	return stats, nil
}
