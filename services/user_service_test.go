package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sebastien-besse/ZakFitBack/models"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
)

func newUserService(t *testing.T) (*UserService, *gorm.DB, *models.User) {
	db := newTestDB(t)
	user := seedUser(t, db, "profile@example.com")
	user.Height = 180
	user.Weight = 75
	user.DateOfBirth = time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Save(user).Error)
	return NewUserService(repositories.NewUserRepo(db)), db, user
}

func TestProfileDerivedStats(t *testing.T) {
	svc, _, user := newUserService(t)

	profile, err := svc.Profile(user.ID)
	require.NoError(t, err)

	assert.Equal(t, "profile@example.com", profile.Email)
	// 75 / 1.80^2 = 23.15
	assert.InDelta(t, 23.15, profile.BMI, 0.01)
	assert.Equal(t, "Normal weight", profile.BMICategory)
	assert.Greater(t, profile.Age, 25)
}

func TestProfileUnknownUser(t *testing.T) {
	svc, _, _ := newUserService(t)

	_, err := svc.Profile(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _, user := newUserService(t)

	weight := 90
	diet := "vegetarian"
	profile, err := svc.UpdateProfile(user.ID, ProfileUpdate{Weight: &weight, Diet: &diet})
	require.NoError(t, err)

	assert.Equal(t, 90, profile.Weight)
	assert.Equal(t, "vegetarian", profile.Diet)
	// untouched fields keep their value
	assert.Equal(t, 180, profile.Height)
	assert.Equal(t, "Test", profile.FirstName)
	// BMI follows the new weight: 90 / 1.80^2 = 27.78
	assert.InDelta(t, 27.78, profile.BMI, 0.01)
	assert.Equal(t, "Overweight", profile.BMICategory)
}

func TestUpdateProfileValidation(t *testing.T) {
	svc, _, user := newUserService(t)

	bad := -10
	_, err := svc.UpdateProfile(user.ID, ProfileUpdate{Height: &bad})
	assert.ErrorIs(t, err, ErrBadRequest)

	zero := 0
	_, err = svc.UpdateProfile(user.ID, ProfileUpdate{Weight: &zero})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDeleteUserFreesEmail(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(repositories.NewUserRepo(db), testJWTSecret)
	users := NewUserService(repositories.NewUserRepo(db))

	created, err := auth.Register(validRegisterInput("again@example.com"))
	require.NoError(t, err)

	require.NoError(t, users.Delete(created.ID))

	// the unique index must not hold the email of a removed account
	_, err = auth.Register(validRegisterInput("again@example.com"))
	require.NoError(t, err)
}

func TestDeleteUserCascades(t *testing.T) {
	svc, db, user := newUserService(t)

	food := seedFood(t, db, user.ID, "rice", 130, 3, 28, 0)
	require.NoError(t, db.Create(&models.Activity{
		UserID: user.ID, Type: "cardio", Duration: 30, CaloriesBurned: 240, PerformedAt: time.Now().UTC(),
	}).Error)
	meal := &models.Meal{UserID: user.ID, Type: "lunch", AteAt: time.Now().UTC()}
	require.NoError(t, db.Create(meal).Error)
	require.NoError(t, db.Create(&models.MealFood{
		MealID: meal.ID, FoodID: food.ID, Quantity: 100, Calories: 130,
	}).Error)

	require.NoError(t, svc.Delete(user.ID))

	_, err := svc.Profile(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, model := range []interface{}{
		&models.Activity{}, &models.Meal{}, &models.MealFood{}, &models.Food{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}
