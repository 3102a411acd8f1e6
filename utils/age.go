package utils

import "time"

// CalculateAge returns whole years elapsed since birthday.
func CalculateAge(birthday time.Time) int {
	return ageAt(birthday, time.Now())
}

// ageAt compares calendar (month, day) pairs rather than year-days, which
// drift by one across leap years.
func ageAt(birthday, now time.Time) int {
	age := now.Year() - birthday.Year()
	if now.Month() < birthday.Month() ||
		(now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
