package repositories

import (
	"gorm.io/gorm"

	"github.com/Sebastien-besse/ZakFitBack/models"
)

type FoodRepository interface {
	Create(food *models.Food) error
	FindByID(id uint) (*models.Food, error)
	FindAll() ([]models.Food, error)
}

type foodRepo struct {
	db *gorm.DB
}

func NewFoodRepo(db *gorm.DB) FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) Create(food *models.Food) error {
	return r.db.Create(food).Error
}

func (r *foodRepo) FindByID(id uint) (*models.Food, error) {
	var food models.Food
	if err := r.db.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// FindAll is intentionally unscoped: the food catalog is shared.
func (r *foodRepo) FindAll() ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Find(&foods).Error
	return foods, err
}
