package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity is a logged exercise session. CaloriesBurned is either supplied
// by the user or derived from the per-minute burn rate for the type.
type Activity struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	Type           string    `gorm:"not null" json:"type"`
	Duration       int       `gorm:"not null" json:"duration"` // minutes
	CaloriesBurned int       `gorm:"not null" json:"calories_burned"`
	PerformedAt    time.Time `gorm:"index;not null" json:"performed_at"`
}
