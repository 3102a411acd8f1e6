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

func newMealService(t *testing.T) (*MealService, *gorm.DB, *models.User) {
	db := newTestDB(t)
	user := seedUser(t, db, "meals@example.com")
	svc := NewMealService(repositories.NewMealRepo(db), repositories.NewFoodRepo(db))
	return svc, db, user
}

func seedFood(t *testing.T, db *gorm.DB, userID uint, name string, cal, prot, carbs, lipids int) *models.Food {
	t.Helper()
	food := &models.Food{UserID: userID, Name: name, Calories: cal, Proteins: prot, Carbs: carbs, Lipids: lipids}
	require.NoError(t, db.Create(food).Error)
	return food
}

func TestCreateMealWithFoodsTotals(t *testing.T) {
	svc, db, user := newMealService(t)

	rice := seedFood(t, db, user.ID, "rice", 130, 3, 28, 0)
	chicken := seedFood(t, db, user.ID, "chicken", 239, 27, 0, 14)

	meal, err := svc.CreateWithFoods(user.ID, "lunch", nil, []MealFoodRequest{
		{FoodID: rice.ID, Quantity: 150},
		{FoodID: chicken.ID, Quantity: 125},
	})
	require.NoError(t, err)

	// rice: 130*1.5=195, chicken: 239*1.25=298.75 -> 298 (truncated)
	assert.Equal(t, 195+298, meal.TotalCalories)
	// proteins: 3*1.5=4.5 -> 4, 27*1.25=33.75 -> 33
	assert.Equal(t, 4+33, meal.TotalProteins)
	// carbs: 28*1.5=42, 0
	assert.Equal(t, 42, meal.TotalCarbs)
	// lipids: 0, 14*1.25=17.5 -> 17
	assert.Equal(t, 17, meal.TotalLipids)

	require.Len(t, meal.Items, 2)
	assert.Equal(t, 195, meal.Items[0].Calories)
	assert.Equal(t, 298, meal.Items[1].Calories)

	var stored models.Meal
	require.NoError(t, db.Preload("Items").First(&stored, meal.ID).Error)
	assert.Equal(t, meal.TotalCalories, stored.TotalCalories)
	assert.Len(t, stored.Items, 2)
}

func TestCreateMealWithFoodsValidation(t *testing.T) {
	svc, db, user := newMealService(t)
	food := seedFood(t, db, user.ID, "oats", 380, 13, 68, 7)

	_, err := svc.CreateWithFoods(user.ID, "", nil, []MealFoodRequest{{FoodID: food.ID, Quantity: 50}})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.CreateWithFoods(user.ID, "breakfast", nil, nil)
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.CreateWithFoods(user.ID, "breakfast", nil, []MealFoodRequest{{FoodID: food.ID, Quantity: 0}})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestCreateMealWithUnknownFoodPersistsNothing(t *testing.T) {
	svc, db, user := newMealService(t)
	food := seedFood(t, db, user.ID, "oats", 380, 13, 68, 7)

	_, err := svc.CreateWithFoods(user.ID, "breakfast", nil, []MealFoodRequest{
		{FoodID: food.ID, Quantity: 100},
		{FoodID: 9999, Quantity: 100},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	var mealCount, itemCount int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&mealCount).Error)
	require.NoError(t, db.Model(&models.MealFood{}).Count(&itemCount).Error)
	assert.Zero(t, mealCount)
	assert.Zero(t, itemCount)
}

func TestCreateSimpleMeal(t *testing.T) {
	svc, _, user := newMealService(t)

	ateAt := time.Date(2025, 4, 10, 12, 30, 0, 0, time.UTC)
	meal, err := svc.Create(user.ID, "snack", &ateAt)
	require.NoError(t, err)
	assert.Equal(t, "snack", meal.Type)
	assert.True(t, meal.AteAt.Equal(ateAt))
	assert.Zero(t, meal.TotalCalories)

	_, err = svc.Create(user.ID, "", nil)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestListMealsFilters(t *testing.T) {
	svc, db, user := newMealService(t)
	food := seedFood(t, db, user.ID, "bread", 265, 9, 49, 3)

	day1 := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 4, 11, 8, 0, 0, 0, time.UTC)

	_, err := svc.CreateWithFoods(user.ID, "breakfast", &day1, []MealFoodRequest{{FoodID: food.ID, Quantity: 100}})
	require.NoError(t, err)
	_, err = svc.CreateWithFoods(user.ID, "dinner", &day2, []MealFoodRequest{{FoodID: food.ID, Quantity: 200}})
	require.NoError(t, err)

	day := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	meals, err := svc.List(user.ID, repositories.MealFilter{Day: &day})
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "breakfast", meals[0].Type)
	require.Len(t, meals[0].Items, 1)
	assert.Equal(t, "bread", meals[0].Items[0].Food.Name)

	meals, err = svc.List(user.ID, repositories.MealFilter{Type: "dinner"})
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, 530, meals[0].TotalCalories)

	meals, err = svc.List(user.ID, repositories.MealFilter{Sort: "calories"})
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "dinner", meals[0].Type)
}
