package services

import (
	"github.com/Sebastien-besse/ZakFitBack/models"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
)

type FoodService struct {
	foods repositories.FoodRepository
}

func NewFoodService(foods repositories.FoodRepository) *FoodService {
	return &FoodService{foods: foods}
}

type FoodInput struct {
	Name     string
	Calories int
	Proteins int
	Carbs    int
	Lipids   int
}

func (s *FoodService) Create(userID uint, input FoodInput) (*models.Food, error) {
	if input.Name == "" {
		return nil, badRequestf("food name cannot be empty")
	}
	if input.Calories < 0 || input.Proteins < 0 || input.Carbs < 0 || input.Lipids < 0 {
		return nil, badRequestf("nutrient values cannot be negative")
	}

	food := &models.Food{
		UserID:   userID,
		Name:     input.Name,
		Calories: input.Calories,
		Proteins: input.Proteins,
		Carbs:    input.Carbs,
		Lipids:   input.Lipids,
	}
	if err := s.foods.Create(food); err != nil {
		return nil, err
	}
	return food, nil
}

// ListAll returns the shared food catalog, across all users.
func (s *FoodService) ListAll() ([]models.Food, error) {
	return s.foods.FindAll()
}
