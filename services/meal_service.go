package services

import (
	"time"

	"github.com/Sebastien-besse/ZakFitBack/models"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
)

type MealService struct {
	meals repositories.MealRepository
	foods repositories.FoodRepository
}

func NewMealService(meals repositories.MealRepository, foods repositories.FoodRepository) *MealService {
	return &MealService{meals: meals, foods: foods}
}

type MealFoodRequest struct {
	FoodID   uint `json:"food_id"`
	Quantity int  `json:"quantity"` // grams
}

// Create logs an empty meal; totals stay zero until foods are attached.
func (s *MealService) Create(userID uint, mealType string, ateAt *time.Time) (*models.Meal, error) {
	if mealType == "" {
		return nil, badRequestf("meal type cannot be empty")
	}

	when := time.Now().UTC()
	if ateAt != nil {
		when = *ateAt
	}
	meal := &models.Meal{UserID: userID, Type: mealType, AteAt: when}
	if err := s.meals.Create(meal); err != nil {
		return nil, err
	}
	return meal, nil
}

// CreateWithFoods logs a meal composed of foods at given quantities. Every
// food is resolved and every contribution computed before anything is
// written, and the write itself is a single transaction, so a missing food
// leaves no meal or line item behind.
func (s *MealService) CreateWithFoods(userID uint, mealType string, ateAt *time.Time, foods []MealFoodRequest) (*models.Meal, error) {
	if mealType == "" {
		return nil, badRequestf("meal type cannot be empty")
	}
	if len(foods) == 0 {
		return nil, badRequestf("meal must contain at least one food")
	}

	items := make([]models.MealFood, 0, len(foods))
	for _, req := range foods {
		if req.Quantity <= 0 {
			return nil, badRequestf("quantity must be positive")
		}
		food, err := s.foods.FindByID(req.FoodID)
		if err != nil {
			return nil, notFoundOr(err, "food with ID %d not found", req.FoodID)
		}
		items = append(items, mealLine(*food, req.Quantity))
	}

	when := time.Now().UTC()
	if ateAt != nil {
		when = *ateAt
	}
	meal := &models.Meal{UserID: userID, Type: mealType, AteAt: when}
	sumMealLines(meal, items)

	if err := s.meals.CreateWithItems(meal, items); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(userID uint, filter repositories.MealFilter) ([]models.Meal, error) {
	return s.meals.List(userID, filter)
}
