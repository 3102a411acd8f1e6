package models

import "gorm.io/gorm"

// ActivityGoal holds a user's training targets. One record per user,
// updated in place.
type ActivityGoal struct {
	gorm.Model
	UserID            uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	ActivityType      string `json:"activity_type"`
	TrainingFrequency int    `json:"training_frequency"` // sessions per week
	CaloriesBurned    int    `json:"calories_burned"`
	SessionDuration   int    `json:"session_duration"` // minutes
}

// CaloriesGoal holds a user's daily nutrition targets. One record per user.
type CaloriesGoal struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories int  `json:"calories"`
	Proteins int  `json:"proteins"`
	Carbs    int  `json:"carbs"`
	Lipids   int  `json:"lipids"`
}
