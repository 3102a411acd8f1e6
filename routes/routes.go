package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sebastien-besse/ZakFitBack/config"
	"github.com/Sebastien-besse/ZakFitBack/controllers"
	"github.com/Sebastien-besse/ZakFitBack/middlewares"
)

type Controllers struct {
	Users      *controllers.UserController
	Activities *controllers.ActivityController
	Foods      *controllers.FoodController
	Meals      *controllers.MealController
	Goals      *controllers.GoalController
	History    *controllers.HistoryController
}

func SetupRouter(cfg *config.Config, c Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type", "Origin"},
	}))

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Public user routes
	users := r.Group("/users")
	{
		users.POST("", c.Users.Register)
		users.POST("/login", c.Users.Login)
	}

	// Protected profile routes
	me := users.Group("/me")
	me.Use(auth)
	{
		me.GET("", c.Users.Profile)
		me.PUT("", c.Users.UpdateProfile)
		me.DELETE("", c.Users.Delete)
	}

	activities := r.Group("/activities")
	activities.Use(auth)
	{
		activities.POST("", c.Activities.Create)
		activities.GET("", c.Activities.List)
		activities.GET("/:id", c.Activities.Get)
		activities.PUT("/:id", c.Activities.Update)
		activities.DELETE("/:id", c.Activities.Delete)
	}

	foods := r.Group("/foods")
	foods.Use(auth)
	{
		foods.POST("", c.Foods.Create)
		foods.GET("", c.Foods.List)
	}

	meals := r.Group("/meals")
	meals.Use(auth)
	{
		meals.POST("", c.Meals.Create)
		meals.POST("/with-foods", c.Meals.CreateWithFoods)
		meals.GET("", c.Meals.List)
	}

	activityGoal := r.Group("/activity-goal")
	activityGoal.Use(auth)
	{
		activityGoal.POST("", c.Goals.CreateActivityGoal)
		activityGoal.GET("", c.Goals.GetActivityGoal)
		activityGoal.PUT("/:id", c.Goals.UpdateActivityGoal)
	}

	caloriesGoal := r.Group("/calories-goal")
	caloriesGoal.Use(auth)
	{
		caloriesGoal.POST("", c.Goals.CreateCaloriesGoal)
		caloriesGoal.GET("", c.Goals.GetCaloriesGoal)
		caloriesGoal.PUT("/:id", c.Goals.UpdateCaloriesGoal)
	}

	history := r.Group("/history")
	history.Use(auth)
	{
		history.GET("/daily", c.History.Daily)
		history.GET("/month-summary", c.History.MonthSummary)
	}

	return r
}
