package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run represents one timer run recorded in the history database
type Run struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	MenuName    string `gorm:"index;not null" json:"menu_name"`
	WorkSeconds int    `json:"work_seconds"`
	RestSeconds int    `json:"rest_seconds"`
	Sets        int    `json:"sets"`

	StartedAt      time.Time `gorm:"not null" json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	TotalSeconds   int       `json:"total_seconds"`
	Completed      bool      `gorm:"default:false" json:"completed"`
}

// BeforeCreate assigns a UUID when the caller did not set one
func (r *Run) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// NewRun starts a history record for the given menu
func NewRun(menu Menu, totalSeconds int, startedAt time.Time) Run {
	return Run{
		MenuName:     menu.Name,
		WorkSeconds:  menu.WorkSeconds,
		RestSeconds:  menu.RestSeconds,
		Sets:         menu.Sets,
		StartedAt:    startedAt,
		TotalSeconds: totalSeconds,
	}
}
