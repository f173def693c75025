package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ParseClock parses a "HH:MM" clock time into minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}

	return hour*60 + minute, nil
}

// ClockHour returns the hour component of a "HH:MM" clock time.
func ClockHour(clock string) (int, error) {
	minutes, err := ParseClock(clock)
	if err != nil {
		return 0, err
	}
	return minutes / 60, nil
}

// MinutesBetween returns the minutes from start to end, rolling over
// midnight when end is earlier than start.
func MinutesBetween(start, end int) int {
	diff := end - start
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}

// DaysInMonth returns the number of calendar days in (month, year).
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last calendar day of (month, year).
func MonthBounds(month, year int) (first, last time.Time) {
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}

// FormatYYYYMMDD renders a date as compact digits, the WPS SIF date form.
func FormatYYYYMMDD(t time.Time) string {
	return t.Format("20060102")
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameMonth reports whether t falls in the given (month, year).
func SameMonth(t time.Time, month, year int) bool {
	return int(t.Month()) == month && t.Year() == year
}
