package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCalendarFeatures(t *testing.T) {
	tests := []struct {
		ts      string
		weekday string
		num     int
		weekend bool
	}{
		{"2024-01-01 08:00:00", "Monday", 0, false},
		{"2024-01-05 23:59:59", "Friday", 4, false},
		{"2024-01-06 00:00:00", "Saturday", 5, true},
		{"2024-01-07 12:00:00", "Sunday", 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			ts, err := time.Parse(TimestampLayout, tt.ts)
			assert.NoError(t, err)

			cal := NewCalendarFeatures(ts)
			assert.Equal(t, tt.ts[:10], cal.Date)
			assert.Equal(t, tt.weekday, cal.WeekdayName)
			assert.Equal(t, tt.num, cal.WeekdayNum)
			assert.Equal(t, tt.weekend, cal.IsWeekend)
			assert.Equal(t, 1, cal.Month)
			assert.Equal(t, "January", cal.MonthName)
			assert.Equal(t, 2024, cal.Year)
		})
	}

	t.Run("offset timestamp uses its own day", func(t *testing.T) {
		ts, err := time.Parse(time.RFC3339, "2024-01-01T23:30:00-05:00")
		assert.NoError(t, err)

		cal := NewCalendarFeatures(ts)
		assert.Equal(t, "2024-01-01", cal.Date)
		assert.Equal(t, "Monday", cal.WeekdayName)
		assert.Equal(t, 0, cal.WeekdayNum)
		assert.Equal(t, 23, cal.Hour)
	})
}
