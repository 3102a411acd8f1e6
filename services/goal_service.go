package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sebastien-besse/ZakFitBack/models"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
)

type GoalService struct {
	activityGoals repositories.ActivityGoalRepository
	caloriesGoals repositories.CaloriesGoalRepository
}

func NewGoalService(
	activityGoals repositories.ActivityGoalRepository,
	caloriesGoals repositories.CaloriesGoalRepository,
) *GoalService {
	return &GoalService{activityGoals: activityGoals, caloriesGoals: caloriesGoals}
}

type ActivityGoalInput struct {
	ActivityType      string
	TrainingFrequency int
	CaloriesBurned    int
	SessionDuration   int
}

func (s *GoalService) CreateActivityGoal(userID uint, input ActivityGoalInput) (*models.ActivityGoal, error) {
	if input.TrainingFrequency < 0 || input.CaloriesBurned < 0 || input.SessionDuration < 0 {
		return nil, badRequestf("goal values cannot be negative")
	}
	goal := &models.ActivityGoal{
		UserID:            userID,
		ActivityType:      input.ActivityType,
		TrainingFrequency: input.TrainingFrequency,
		CaloriesBurned:    input.CaloriesBurned,
		SessionDuration:   input.SessionDuration,
	}
	if err := s.activityGoals.Create(goal); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, badRequestf("activity goal already exists for this user")
		}
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) GetActivityGoal(userID uint) (*models.ActivityGoal, error) {
	goal, err := s.activityGoals.FindByUser(userID)
	if err != nil {
		return nil, notFoundOr(err, "no activity goal found for this user")
	}
	return goal, nil
}

func (s *GoalService) UpdateActivityGoal(userID, goalID uint, input ActivityGoalInput) (*models.ActivityGoal, error) {
	goal, err := s.activityGoals.FindByID(goalID)
	if err != nil {
		return nil, notFoundOr(err, "goal not found")
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}
	if input.TrainingFrequency < 0 || input.CaloriesBurned < 0 || input.SessionDuration < 0 {
		return nil, badRequestf("goal values cannot be negative")
	}

	goal.ActivityType = input.ActivityType
	goal.TrainingFrequency = input.TrainingFrequency
	goal.CaloriesBurned = input.CaloriesBurned
	goal.SessionDuration = input.SessionDuration

	if err := s.activityGoals.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

type CaloriesGoalInput struct {
	Calories int
	Proteins int
	Carbs    int
	Lipids   int
}

func (s *GoalService) CreateCaloriesGoal(userID uint, input CaloriesGoalInput) (*models.CaloriesGoal, error) {
	if input.Calories < 0 || input.Proteins < 0 || input.Carbs < 0 || input.Lipids < 0 {
		return nil, badRequestf("goal values cannot be negative")
	}
	goal := &models.CaloriesGoal{
		UserID:   userID,
		Calories: input.Calories,
		Proteins: input.Proteins,
		Carbs:    input.Carbs,
		Lipids:   input.Lipids,
	}
	if err := s.caloriesGoals.Create(goal); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, badRequestf("nutrition goal already exists for this user")
		}
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) GetCaloriesGoal(userID uint) (*models.CaloriesGoal, error) {
	goal, err := s.caloriesGoals.FindByUser(userID)
	if err != nil {
		return nil, notFoundOr(err, "no nutrition goal found for this user")
	}
	return goal, nil
}

func (s *GoalService) UpdateCaloriesGoal(userID, goalID uint, input CaloriesGoalInput) (*models.CaloriesGoal, error) {
	goal, err := s.caloriesGoals.FindByID(goalID)
	if err != nil {
		return nil, notFoundOr(err, "goal not found")
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}
	if input.Calories < 0 || input.Proteins < 0 || input.Carbs < 0 || input.Lipids < 0 {
		return nil, badRequestf("goal values cannot be negative")
	}

	goal.Calories = input.Calories
	goal.Proteins = input.Proteins
	goal.Carbs = input.Carbs
	goal.Lipids = input.Lipids

	if err := s.caloriesGoals.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}
