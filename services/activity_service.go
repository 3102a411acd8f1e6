package services

import (
	"time"

	"github.com/Sebastien-besse/ZakFitBack/models"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
)

type ActivityService struct {
	activities repositories.ActivityRepository
}

func NewActivityService(activities repositories.ActivityRepository) *ActivityService {
	return &ActivityService{activities: activities}
}

type ActivityInput struct {
	Type           string
	Duration       int // minutes
	CaloriesBurned *int
	PerformedAt    *time.Time
}

func (s *ActivityService) Create(userID uint, input ActivityInput) (*models.Activity, error) {
	if input.Type == "" {
		return nil, badRequestf("activity type cannot be empty")
	}
	if input.Duration <= 0 {
		return nil, badRequestf("duration must be positive")
	}

	calories := EstimateCalories(input.Type, input.Duration)
	if input.CaloriesBurned != nil {
		if *input.CaloriesBurned < 0 {
			return nil, badRequestf("calories burned cannot be negative")
		}
		calories = *input.CaloriesBurned
	}

	performedAt := time.Now().UTC()
	if input.PerformedAt != nil {
		performedAt = *input.PerformedAt
	}

	activity := &models.Activity{
		UserID:         userID,
		Type:           input.Type,
		Duration:       input.Duration,
		CaloriesBurned: calories,
		PerformedAt:    performedAt,
	}
	if err := s.activities.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) List(userID uint, filter repositories.ActivityFilter) ([]models.Activity, error) {
	return s.activities.List(userID, filter)
}

func (s *ActivityService) Get(userID, activityID uint) (*models.Activity, error) {
	return s.ownedActivity(userID, activityID)
}

// ActivityUpdate carries a partial update; nil fields keep their value.
type ActivityUpdate struct {
	Type           *string
	Duration       *int
	CaloriesBurned *int
	PerformedAt    *time.Time
}

// Update re-derives the calorie estimate when no explicit value is given,
// so a changed type or duration keeps the stored calories consistent.
func (s *ActivityService) Update(userID, activityID uint, input ActivityUpdate) (*models.Activity, error) {
	activity, err := s.ownedActivity(userID, activityID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		if *input.Type == "" {
			return nil, badRequestf("activity type cannot be empty")
		}
		activity.Type = *input.Type
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			return nil, badRequestf("duration must be positive")
		}
		activity.Duration = *input.Duration
	}
	if input.PerformedAt != nil {
		activity.PerformedAt = *input.PerformedAt
	}

	if input.CaloriesBurned != nil {
		if *input.CaloriesBurned < 0 {
			return nil, badRequestf("calories burned cannot be negative")
		}
		activity.CaloriesBurned = *input.CaloriesBurned
	} else {
		activity.CaloriesBurned = EstimateCalories(activity.Type, activity.Duration)
	}

	if err := s.activities.Update(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(userID, activityID uint) error {
	if _, err := s.ownedActivity(userID, activityID); err != nil {
		return err
	}
	return s.activities.Delete(activityID)
}

// ownedActivity loads the activity and enforces ownership before any use.
// A foreign resource is Forbidden, not NotFound.
func (s *ActivityService) ownedActivity(userID, activityID uint) (*models.Activity, error) {
	activity, err := s.activities.FindByID(activityID)
	if err != nil {
		return nil, notFoundOr(err, "activity not found")
	}
	if activity.UserID != userID {
		return nil, ErrForbidden
	}
	return activity, nil
}
