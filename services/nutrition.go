package services

import "github.com/Sebastien-besse/ZakFitBack/models"

// mealLine computes the nutrient contribution of quantityGrams of a food.
// Food values are per 100 g; each nutrient is truncated toward zero.
func mealLine(food models.Food, quantityGrams int) models.MealFood {
	factor := float64(quantityGrams) / 100.0
	return models.MealFood{
		FoodID:   food.ID,
		Food:     food,
		Quantity: quantityGrams,
		Calories: int(float64(food.Calories) * factor),
		Proteins: int(float64(food.Proteins) * factor),
		Carbs:    int(float64(food.Carbs) * factor),
		Lipids:   int(float64(food.Lipids) * factor),
	}
}

// sumMealLines accumulates line contributions into the meal's denormalized
// totals. The totals are set once here and never recomputed on read.
func sumMealLines(meal *models.Meal, items []models.MealFood) {
	meal.TotalCalories = 0
	meal.TotalProteins = 0
	meal.TotalCarbs = 0
	meal.TotalLipids = 0
	for _, it := range items {
		meal.TotalCalories += it.Calories
		meal.TotalProteins += it.Proteins
		meal.TotalCarbs += it.Carbs
		meal.TotalLipids += it.Lipids
	}
}
