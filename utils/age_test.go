package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	utc := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		birthday time.Time
		now      time.Time
		want     int
	}{
		{"day before birthday", utc(1995, 6, 15), utc(2025, 6, 14), 29},
		{"on the birthday", utc(1995, 6, 15), utc(2025, 6, 15), 30},
		{"day after birthday", utc(1995, 6, 15), utc(2025, 6, 16), 30},
		{"leap-year birth, birthday in non-leap year", utc(2000, 3, 1), utc(2025, 3, 1), 25},
		{"leap-year birth, day before in non-leap year", utc(2000, 3, 1), utc(2025, 2, 28), 24},
		{"born Feb 29, on Mar 1 of non-leap year", utc(2000, 2, 29), utc(2025, 3, 1), 25},
		{"born Feb 29, on Feb 28 of non-leap year", utc(2000, 2, 29), utc(2025, 2, 28), 24},
		{"future birthday clamps to zero", utc(2030, 1, 1), utc(2025, 1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ageAt(tt.birthday, tt.now))
		})
	}
}
