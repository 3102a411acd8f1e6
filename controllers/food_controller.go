package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sebastien-besse/ZakFitBack/services"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

type foodRequest struct {
	Name     string `json:"name" binding:"required"`
	Calories int    `json:"calories"`
	Proteins int    `json:"proteins"`
	Carbs    int    `json:"carbs"`
	Lipids   int    `json:"lipids"`
}

func (ctl *FoodController) Create(c *gin.Context) {
	var req foodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := ctl.foods.Create(currentUserID(c), services.FoodInput{
		Name:     req.Name,
		Calories: req.Calories,
		Proteins: req.Proteins,
		Carbs:    req.Carbs,
		Lipids:   req.Lipids,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (ctl *FoodController) List(c *gin.Context) {
	foods, err := ctl.foods.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}
