package utils

import "time"

// QueryDateLayout is the textual date format used by query parameters
// across the API (dd-MM-yyyy, UTC).
const QueryDateLayout = "02-01-2006"

// MealDateLayout is the day filter format on the meal list endpoint.
const MealDateLayout = "2006-01-02"

func ParseQueryDate(s string) (time.Time, error) {
	return time.ParseInLocation(QueryDateLayout, s, time.UTC)
}

func ParseMealDate(s string) (time.Time, error) {
	return time.ParseInLocation(MealDateLayout, s, time.UTC)
}

// DayWindow returns the half-open interval [startOfDay, startOfDay+24h)
// around t, at UTC boundaries.
func DayWindow(t time.Time) (time.Time, time.Time) {
	tt := t.UTC()
	start := time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// MonthWindow returns the half-open interval [firstOfMonth, firstOfNextMonth)
// plus the number of calendar days in the month.
func MonthWindow(year, month int) (start, end time.Time, days int) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	days = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return start, end, days
}
