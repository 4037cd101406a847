package apod

import "time"

// MinDate is the date of the first Astronomy Picture of the Day.
var MinDate = time.Date(1995, time.June, 16, 0, 0, 0, 0, time.UTC)

// Today returns the current calendar date at UTC midnight, evaluated at
// call time.
func Today() time.Time {
	return calendarDay(time.Now())
}

// calendarDay truncates t to its calendar date at UTC midnight.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsValidDate reports whether d falls inside the archive, between the
// first published picture and today. The upper bound moves with the
// clock, so a date that is invalid now can become valid after midnight.
func IsValidDate(d time.Time) bool {
	day := calendarDay(d)
	return !day.Before(MinDate) && !day.After(Today())
}
