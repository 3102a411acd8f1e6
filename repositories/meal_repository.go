package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/Sebastien-besse/ZakFitBack/models"
)

// MealFilter narrows and orders the meal list query.
type MealFilter struct {
	Type string
	Day  *time.Time // resolved to a [start, start+24h) window
	Sort string     // "date" | "type" | "calories"
}

type MealRepository interface {
	Create(meal *models.Meal) error
	// CreateWithItems persists the meal and all line items atomically:
	// either everything lands or nothing does.
	CreateWithItems(meal *models.Meal, items []models.MealFood) error
	List(userID uint, filter MealFilter) ([]models.Meal, error)
	ListByDateRange(userID uint, from, to time.Time) ([]models.Meal, error)
}

type mealRepo struct {
	db *gorm.DB
}

func NewMealRepo(db *gorm.DB) MealRepository {
	return &mealRepo{db: db}
}

func (r *mealRepo) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

func (r *mealRepo) CreateWithItems(meal *models.Meal, items []models.MealFood) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].MealID = meal.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		meal.Items = items
		return nil
	})
}

func (r *mealRepo) List(userID uint, filter MealFilter) ([]models.Meal, error) {
	q := r.db.
		Preload("Items").
		Preload("Items.Food").
		Where("user_id = ?", userID)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Day != nil {
		d := filter.Day.UTC()
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("ate_at >= ? AND ate_at < ?", start, start.Add(24*time.Hour))
	}

	switch filter.Sort {
	case "date":
		q = q.Order("ate_at DESC")
	case "type":
		q = q.Order("type ASC")
	case "calories":
		q = q.Order("total_calories DESC")
	}

	var meals []models.Meal
	err := q.Find(&meals).Error
	return meals, err
}

func (r *mealRepo) ListByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Find(&meals).Error
	return meals, err
}
