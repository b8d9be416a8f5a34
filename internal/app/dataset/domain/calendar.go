package domain

import "time"

// DateLayout is the canonical date representation in every output table.
const DateLayout = "2006-01-02"

// CalendarFeatures are the grouping/analysis fields derived from a timestamp.
type CalendarFeatures struct {
	Date        string
	WeekdayName string
	WeekdayNum  int // Monday=0 .. Sunday=6
	Month       int
	MonthName   string
	Year        int
	Hour        int
	IsWeekend   bool
}

// NewCalendarFeatures derives calendar features from t in its own location.
func NewCalendarFeatures(t time.Time) CalendarFeatures {
	num := (int(t.Weekday()) + 6) % 7
	return CalendarFeatures{
		Date:        t.Format(DateLayout),
		WeekdayName: t.Weekday().String(),
		WeekdayNum:  num,
		Month:       int(t.Month()),
		MonthName:   t.Month().String(),
		Year:        t.Year(),
		Hour:        t.Hour(),
		IsWeekend:   num >= 5,
	}
}
