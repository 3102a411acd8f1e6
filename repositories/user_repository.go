package repositories

import (
	"gorm.io/gorm"

	"github.com/Sebastien-besse/ZakFitBack/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes the user and everything they own in one transaction.
// The deletes bypass the soft-delete scope: a removed account must free
// its email under the unique index so the address can register again.
func (r *userRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("meal_id IN (?)",
			tx.Model(&models.Meal{}).Select("id").Where("user_id = ?", id),
		).Delete(&models.MealFood{}).Error; err != nil {
			return err
		}
		for _, m := range []interface{}{
			&models.Meal{},
			&models.Activity{},
			&models.Food{},
			&models.ActivityGoal{},
			&models.CaloriesGoal{},
		} {
			if err := tx.Unscoped().Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&models.User{}, id).Error
	})
}
