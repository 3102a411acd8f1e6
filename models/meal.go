package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is a logged eating occasion. The totals are denormalized: they are
// written once from the line items and never recomputed on read.
type Meal struct {
	gorm.Model
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	Type          string     `gorm:"not null" json:"type"`
	AteAt         time.Time  `gorm:"index;not null" json:"ate_at"`
	TotalCalories int        `json:"total_calories"`
	TotalProteins int        `json:"total_proteins"`
	TotalCarbs    int        `json:"total_carbs"`
	TotalLipids   int        `json:"total_lipids"`
	Items         []MealFood `json:"items"`
}

// MealFood links a Meal to a Food with the consumed quantity in grams and
// the nutrient contribution calculated at that quantity.
type MealFood struct {
	gorm.Model
	MealID   uint `gorm:"index;not null" json:"meal_id"`
	FoodID   uint `gorm:"index;not null" json:"food_id"`
	Food     Food `json:"food"`
	Quantity int  `gorm:"not null" json:"quantity"` // grams
	Calories int  `json:"calories"`
	Proteins int  `json:"proteins"`
	Carbs    int  `json:"carbs"`
	Lipids   int  `json:"lipids"`
}
