package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/Sebastien-besse/ZakFitBack/models"
)

// ActivityFilter narrows and orders the list query. Nil/empty fields impose
// no constraint. From/To are half-open window bounds already resolved by
// the caller.
type ActivityFilter struct {
	Type        string
	MinDuration *int
	MaxDuration *int
	From        *time.Time
	To          *time.Time
	Sort        string // "date" | "duration" | "calories"
}

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindByID(id uint) (*models.Activity, error)
	Update(activity *models.Activity) error
	Delete(id uint) error
	List(userID uint, filter ActivityFilter) ([]models.Activity, error)
	ListByDateRange(userID uint, from, to time.Time) ([]models.Activity, error)
}

type activityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepo) FindByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepo) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

func (r *activityRepo) Delete(id uint) error {
	return r.db.Delete(&models.Activity{}, id).Error
}

func (r *activityRepo) List(userID uint, filter ActivityFilter) ([]models.Activity, error) {
	q := r.db.Where("user_id = ?", userID)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.MinDuration != nil {
		q = q.Where("duration >= ?", *filter.MinDuration)
	}
	if filter.MaxDuration != nil {
		q = q.Where("duration <= ?", *filter.MaxDuration)
	}
	if filter.From != nil {
		q = q.Where("performed_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("performed_at < ?", *filter.To)
	}

	switch filter.Sort {
	case "date":
		q = q.Order("performed_at DESC")
	case "duration":
		q = q.Order("duration DESC")
	case "calories":
		q = q.Order("calories_burned DESC")
	}

	var activities []models.Activity
	err := q.Find(&activities).Error
	return activities, err
}

func (r *activityRepo) ListByDateRange(userID uint, from, to time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.
		Where("user_id = ? AND performed_at >= ? AND performed_at < ?", userID, from, to).
		Find(&activities).Error
	return activities, err
}
