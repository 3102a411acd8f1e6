package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sebastien-besse/ZakFitBack/repositories"
)

func TestCreateFood(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "foods@example.com")
	svc := NewFoodService(repositories.NewFoodRepo(db))

	food, err := svc.Create(user.ID, FoodInput{Name: "rice", Calories: 130, Proteins: 3, Carbs: 28})
	require.NoError(t, err)
	assert.NotZero(t, food.ID)
	assert.Equal(t, user.ID, food.UserID)

	_, err = svc.Create(user.ID, FoodInput{Name: "", Calories: 100})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.Create(user.ID, FoodInput{Name: "bad", Calories: -1})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestListAllFoodsIsShared(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	svc := NewFoodService(repositories.NewFoodRepo(db))

	_, err := svc.Create(alice.ID, FoodInput{Name: "rice", Calories: 130})
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, FoodInput{Name: "chicken", Calories: 239})
	require.NoError(t, err)

	foods, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}
