package services

import (
	"time"

	"github.com/Sebastien-besse/ZakFitBack/repositories"
	"github.com/Sebastien-besse/ZakFitBack/utils"
)

type HistoryService struct {
	meals      repositories.MealRepository
	activities repositories.ActivityRepository
}

func NewHistoryService(
	meals repositories.MealRepository,
	activities repositories.ActivityRepository,
) *HistoryService {
	return &HistoryService{meals: meals, activities: activities}
}

type DailyMeal struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Date     time.Time `json:"date"`
}

type DailyActivity struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	CaloriesBurned int       `json:"calories_burned"`
	Date           time.Time `json:"date"`
}

type DailyHistory struct {
	Date                  time.Time       `json:"date"`
	TotalCaloriesConsumed int             `json:"total_calories_consumed"`
	TotalCaloriesBurned   int             `json:"total_calories_burned"`
	Meals                 []DailyMeal     `json:"meals"`
	Activities            []DailyActivity `json:"activities"`
}

// Daily aggregates one UTC calendar day: the half-open window
// [startOfDay, startOfDay+24h). A record at exactly the upper bound
// belongs to the next day.
func (s *HistoryService) Daily(userID uint, date time.Time) (*DailyHistory, error) {
	start, end := utils.DayWindow(date)

	meals, err := s.meals.ListByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	activities, err := s.activities.ListByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	out := &DailyHistory{
		Date:       start,
		Meals:      make([]DailyMeal, 0, len(meals)),
		Activities: make([]DailyActivity, 0, len(activities)),
	}
	for _, m := range meals {
		out.TotalCaloriesConsumed += m.TotalCalories
		out.Meals = append(out.Meals, DailyMeal{
			ID:       m.ID,
			Name:     m.Type,
			Calories: m.TotalCalories,
			Date:     m.AteAt,
		})
	}
	for _, a := range activities {
		out.TotalCaloriesBurned += a.CaloriesBurned
		out.Activities = append(out.Activities, DailyActivity{
			ID:             a.ID,
			Name:           a.Type,
			CaloriesBurned: a.CaloriesBurned,
			Date:           a.PerformedAt,
		})
	}
	return out, nil
}

type MonthSummary struct {
	Month                         string  `json:"month"`
	AverageActivitiesPerDay       float64 `json:"average_activities_per_day"`
	AverageCaloriesBurnedPerDay   int     `json:"average_calories_burned_per_day"`
	AverageCaloriesConsumedPerDay int     `json:"average_calories_consumed_per_day"`
	AverageMealsPerDay            float64 `json:"average_meals_per_day"`
}

// The month label is the French full month name, already capitalized.
var frenchMonths = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// MonthSummary aggregates a calendar month into per-day averages. Calorie
// averages are integer-truncated; meal and activity counts stay fractional.
func (s *HistoryService) MonthSummary(userID uint, year, month int) (*MonthSummary, error) {
	if month < 1 || month > 12 {
		return nil, badRequestf("month must be between 1 and 12")
	}

	start, end, days := utils.MonthWindow(year, month)

	meals, err := s.meals.ListByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	activities, err := s.activities.ListByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	var totalConsumed, totalBurned int
	for _, m := range meals {
		totalConsumed += m.TotalCalories
	}
	for _, a := range activities {
		totalBurned += a.CaloriesBurned
	}

	return &MonthSummary{
		Month:                         frenchMonths[month-1],
		AverageActivitiesPerDay:       float64(len(activities)) / float64(days),
		AverageCaloriesBurnedPerDay:   totalBurned / days,
		AverageCaloriesConsumedPerDay: totalConsumed / days,
		AverageMealsPerDay:            float64(len(meals)) / float64(days),
	}, nil
}
