package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sebastien-besse/ZakFitBack/models"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
	"github.com/Sebastien-besse/ZakFitBack/services"
	"github.com/Sebastien-besse/ZakFitBack/utils"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

type mealFoodResponse struct {
	FoodID   uint   `json:"food_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Calories int    `json:"calories"`
	Proteins int    `json:"proteins"`
	Carbs    int    `json:"carbs"`
	Lipids   int    `json:"lipids"`
}

type mealResponse struct {
	ID            uint               `json:"id"`
	Type          string             `json:"type"`
	Date          time.Time          `json:"date"`
	TotalCalories int                `json:"total_calories"`
	TotalProteins int                `json:"total_proteins"`
	TotalCarbs    int                `json:"total_carbs"`
	TotalLipids   int                `json:"total_lipids"`
	Foods         []mealFoodResponse `json:"foods"`
}

func toMealResponse(meal *models.Meal) mealResponse {
	out := mealResponse{
		ID:            meal.ID,
		Type:          meal.Type,
		Date:          meal.AteAt,
		TotalCalories: meal.TotalCalories,
		TotalProteins: meal.TotalProteins,
		TotalCarbs:    meal.TotalCarbs,
		TotalLipids:   meal.TotalLipids,
		Foods:         make([]mealFoodResponse, 0, len(meal.Items)),
	}
	for _, it := range meal.Items {
		out.Foods = append(out.Foods, mealFoodResponse{
			FoodID:   it.FoodID,
			Name:     it.Food.Name,
			Quantity: it.Quantity,
			Calories: it.Calories,
			Proteins: it.Proteins,
			Carbs:    it.Carbs,
			Lipids:   it.Lipids,
		})
	}
	return out
}

type mealRequest struct {
	Type  string     `json:"type" binding:"required"`
	AteAt *time.Time `json:"ate_at"`
}

func (ctl *MealController) Create(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.meals.Create(currentUserID(c), req.Type, req.AteAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMealResponse(meal))
}

type mealWithFoodsRequest struct {
	Type  string                     `json:"type" binding:"required"`
	AteAt *time.Time                 `json:"ate_at"`
	Foods []services.MealFoodRequest `json:"foods"`
}

func (ctl *MealController) CreateWithFoods(c *gin.Context) {
	var req mealWithFoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.meals.CreateWithFoods(currentUserID(c), req.Type, req.AteAt, req.Foods)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMealResponse(meal))
}

// List accepts date (yyyy-MM-dd), type and sort query parameters.
func (ctl *MealController) List(c *gin.Context) {
	filter := repositories.MealFilter{
		Type: c.Query("type"),
		Sort: c.Query("sort"),
	}
	if v := c.Query("date"); v != "" {
		d, err := utils.ParseMealDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use yyyy-MM-dd"})
			return
		}
		filter.Day = &d
	}

	meals, err := ctl.meals.List(currentUserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]mealResponse, 0, len(meals))
	for i := range meals {
		out = append(out, toMealResponse(&meals[i]))
	}
	c.JSON(http.StatusOK, out)
}
