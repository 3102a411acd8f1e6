package services

import "strings"

// Per-minute burn rates by activity type. Unknown types deliberately fall
// back to the default rate instead of failing: callers may log anything.
var burnRatesPerMinute = map[string]int{
	"cardio":   8,
	"strength": 6,
	"yoga":     4,
	"walking":  3,
}

const defaultBurnRate = 5

// EstimateCalories returns rate(type) × duration for a session. The type
// match is case-insensitive.
func EstimateCalories(activityType string, durationMinutes int) int {
	rate, ok := burnRatesPerMinute[strings.ToLower(strings.TrimSpace(activityType))]
	if !ok {
		rate = defaultBurnRate
	}
	return rate * durationMinutes
}
