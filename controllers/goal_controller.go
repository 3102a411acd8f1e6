package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sebastien-besse/ZakFitBack/services"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

type activityGoalRequest struct {
	ActivityType      string `json:"activity_type" binding:"required"`
	TrainingFrequency int    `json:"training_frequency"`
	CaloriesBurned    int    `json:"calories_burned"`
	SessionDuration   int    `json:"session_duration"`
}

func (ctl *GoalController) CreateActivityGoal(c *gin.Context) {
	var req activityGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.goals.CreateActivityGoal(currentUserID(c), services.ActivityGoalInput{
		ActivityType:      req.ActivityType,
		TrainingFrequency: req.TrainingFrequency,
		CaloriesBurned:    req.CaloriesBurned,
		SessionDuration:   req.SessionDuration,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (ctl *GoalController) GetActivityGoal(c *gin.Context) {
	goal, err := ctl.goals.GetActivityGoal(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (ctl *GoalController) UpdateActivityGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req activityGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.goals.UpdateActivityGoal(currentUserID(c), id, services.ActivityGoalInput{
		ActivityType:      req.ActivityType,
		TrainingFrequency: req.TrainingFrequency,
		CaloriesBurned:    req.CaloriesBurned,
		SessionDuration:   req.SessionDuration,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

type caloriesGoalRequest struct {
	Calories int `json:"calories"`
	Proteins int `json:"proteins"`
	Carbs    int `json:"carbs"`
	Lipids   int `json:"lipids"`
}

func (ctl *GoalController) CreateCaloriesGoal(c *gin.Context) {
	var req caloriesGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.goals.CreateCaloriesGoal(currentUserID(c), services.CaloriesGoalInput{
		Calories: req.Calories,
		Proteins: req.Proteins,
		Carbs:    req.Carbs,
		Lipids:   req.Lipids,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (ctl *GoalController) GetCaloriesGoal(c *gin.Context) {
	goal, err := ctl.goals.GetCaloriesGoal(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (ctl *GoalController) UpdateCaloriesGoal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req caloriesGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.goals.UpdateCaloriesGoal(currentUserID(c), id, services.CaloriesGoalInput{
		Calories: req.Calories,
		Proteins: req.Proteins,
		Carbs:    req.Carbs,
		Lipids:   req.Lipids,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
