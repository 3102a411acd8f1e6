package repositories

import (
	"gorm.io/gorm"

	"github.com/Sebastien-besse/ZakFitBack/models"
)

type ActivityGoalRepository interface {
	Create(goal *models.ActivityGoal) error
	FindByID(id uint) (*models.ActivityGoal, error)
	FindByUser(userID uint) (*models.ActivityGoal, error)
	Update(goal *models.ActivityGoal) error
}

type CaloriesGoalRepository interface {
	Create(goal *models.CaloriesGoal) error
	FindByID(id uint) (*models.CaloriesGoal, error)
	FindByUser(userID uint) (*models.CaloriesGoal, error)
	Update(goal *models.CaloriesGoal) error
}

type activityGoalRepo struct {
	db *gorm.DB
}

func NewActivityGoalRepo(db *gorm.DB) ActivityGoalRepository {
	return &activityGoalRepo{db: db}
}

func (r *activityGoalRepo) Create(goal *models.ActivityGoal) error {
	return r.db.Create(goal).Error
}

func (r *activityGoalRepo) FindByID(id uint) (*models.ActivityGoal, error) {
	var goal models.ActivityGoal
	if err := r.db.First(&goal, id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *activityGoalRepo) FindByUser(userID uint) (*models.ActivityGoal, error) {
	var goal models.ActivityGoal
	if err := r.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *activityGoalRepo) Update(goal *models.ActivityGoal) error {
	return r.db.Save(goal).Error
}

type caloriesGoalRepo struct {
	db *gorm.DB
}

func NewCaloriesGoalRepo(db *gorm.DB) CaloriesGoalRepository {
	return &caloriesGoalRepo{db: db}
}

func (r *caloriesGoalRepo) Create(goal *models.CaloriesGoal) error {
	return r.db.Create(goal).Error
}

func (r *caloriesGoalRepo) FindByID(id uint) (*models.CaloriesGoal, error) {
	var goal models.CaloriesGoal
	if err := r.db.First(&goal, id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *caloriesGoalRepo) FindByUser(userID uint) (*models.CaloriesGoal, error) {
	var goal models.CaloriesGoal
	if err := r.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *caloriesGoalRepo) Update(goal *models.CaloriesGoal) error {
	return r.db.Save(goal).Error
}
