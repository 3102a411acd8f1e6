package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sebastien-besse/ZakFitBack/repositories"
	"github.com/Sebastien-besse/ZakFitBack/services"
	"github.com/Sebastien-besse/ZakFitBack/utils"
)

type ActivityController struct {
	activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{activities: activities}
}

type activityRequest struct {
	Type           string     `json:"type" binding:"required"`
	Duration       int        `json:"duration" binding:"required"`
	CaloriesBurned *int       `json:"calories_burned"`
	PerformedAt    *time.Time `json:"performed_at"`
}

func (ctl *ActivityController) Create(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := ctl.activities.Create(currentUserID(c), services.ActivityInput{
		Type:           req.Type,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		PerformedAt:    req.PerformedAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// List accepts type, min_duration, max_duration, from, to (dd-MM-yyyy) and
// sort query parameters; absent parameters impose no filter.
func (ctl *ActivityController) List(c *gin.Context) {
	filter := repositories.ActivityFilter{
		Type: c.Query("type"),
		Sort: c.Query("sort"),
	}

	if v := c.Query("min_duration"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_duration"})
			return
		}
		filter.MinDuration = &n
	}
	if v := c.Query("max_duration"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_duration"})
			return
		}
		filter.MaxDuration = &n
	}
	if v := c.Query("from"); v != "" {
		d, err := utils.ParseQueryDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, use dd-MM-yyyy"})
			return
		}
		start, _ := utils.DayWindow(d)
		filter.From = &start
	}
	if v := c.Query("to"); v != "" {
		d, err := utils.ParseQueryDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, use dd-MM-yyyy"})
			return
		}
		_, end := utils.DayWindow(d)
		filter.To = &end
	}

	activities, err := ctl.activities.List(currentUserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (ctl *ActivityController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	activity, err := ctl.activities.Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

type activityUpdateRequest struct {
	Type           *string    `json:"type"`
	Duration       *int       `json:"duration"`
	CaloriesBurned *int       `json:"calories_burned"`
	PerformedAt    *time.Time `json:"performed_at"`
}

func (ctl *ActivityController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req activityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := ctl.activities.Update(currentUserID(c), id, services.ActivityUpdate{
		Type:           req.Type,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
		PerformedAt:    req.PerformedAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (ctl *ActivityController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.activities.Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
