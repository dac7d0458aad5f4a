package dateutil

import (
	"time"
)

// AddMonths advances a date by a number of whole calendar months, clamping
// to the last day of the target month when the source day does not exist
// there (Jan 31 + 1 month = Feb 28/29, not Mar 2/3).
func AddMonths(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	hour, min, sec := date.Clock()

	first := time.Date(year, month+time.Month(months), 1, hour, min, sec, date.Nanosecond(), date.Location())
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, date.Nanosecond(), date.Location())
}

// MonthsBetween counts the number of whole calendar months from one date to
// another, ignoring the day of month. Negative when to precedes from.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// DaysInMonth returns the number of days in a month of a given year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear checks if a year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// StartOfDay truncates a time to midnight in its location.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
