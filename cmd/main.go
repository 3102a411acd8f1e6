package main

import (
	"github.com/sirupsen/logrus"

	"github.com/Sebastien-besse/ZakFitBack/config"
	"github.com/Sebastien-besse/ZakFitBack/controllers"
	"github.com/Sebastien-besse/ZakFitBack/repositories"
	"github.com/Sebastien-besse/ZakFitBack/routes"
	"github.com/Sebastien-besse/ZakFitBack/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("configuration error: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("database error: %v", err)
	}

	userRepo := repositories.NewUserRepo(db)
	activityRepo := repositories.NewActivityRepo(db)
	foodRepo := repositories.NewFoodRepo(db)
	mealRepo := repositories.NewMealRepo(db)
	activityGoalRepo := repositories.NewActivityGoalRepo(db)
	caloriesGoalRepo := repositories.NewCaloriesGoalRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	userSvc := services.NewUserService(userRepo)
	activitySvc := services.NewActivityService(activityRepo)
	foodSvc := services.NewFoodService(foodRepo)
	mealSvc := services.NewMealService(mealRepo, foodRepo)
	goalSvc := services.NewGoalService(activityGoalRepo, caloriesGoalRepo)
	historySvc := services.NewHistoryService(mealRepo, activityRepo)

	r := routes.SetupRouter(cfg, routes.Controllers{
		Users:      controllers.NewUserController(authSvc, userSvc),
		Activities: controllers.NewActivityController(activitySvc),
		Foods:      controllers.NewFoodController(foodSvc),
		Meals:      controllers.NewMealController(mealSvc),
		Goals:      controllers.NewGoalController(goalSvc),
		History:    controllers.NewHistoryController(historySvc),
	})

	logrus.Infof("listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
