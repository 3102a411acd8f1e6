package models

import "gorm.io/gorm"

// Food is a reusable nutritional record. All nutrient values are per 100 g.
type Food struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	Calories int    `json:"calories"`
	Proteins int    `json:"proteins"`
	Carbs    int    `json:"carbs"`
	Lipids   int    `json:"lipids"`
}
