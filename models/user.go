package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName       string    `gorm:"not null" json:"firstname"`
	LastName        string    `gorm:"not null" json:"lastname"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	Height          int       `json:"height"` // cm
	Weight          int       `json:"weight"` // kg
	HealthObjective string    `json:"health_objective"`
	Diet            string    `json:"diet"`
}
