package overtime

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaleejhr/hcm-core-go/internal/domain/overtime"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/dateutil"
)

var (
	monthsPerYear   = decimal.NewFromInt(12)
	daysPerYear     = decimal.NewFromInt(365)
	hoursPerDay     = decimal.NewFromInt(8)
	minutesPerHour  = decimal.NewFromInt(60)
	dailyLimitHours = decimal.NewFromInt(overtime.DailyLimitHours)
)

// HourlyRate derives the statutory overtime base rate from the basic
// monthly salary: (basic x 12) / 365 / 8.
func HourlyRate(basicSalary decimal.Decimal) decimal.Decimal {
	return basicSalary.Mul(monthsPerYear).Div(daysPerYear).Div(hoursPerDay)
}

// CalculateHours returns the decimal hours between two "HH:MM" clock
// times, rolling over midnight when the end is earlier than the start.
func CalculateHours(startTime, endTime string) (decimal.Decimal, error) {
	start, err := dateutil.ParseClock(startTime)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", overtime.ErrInvalidClockTime, err)
	}
	end, err := dateutil.ParseClock(endTime)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", overtime.ErrInvalidClockTime, err)
	}

	minutes := dateutil.MinutesBetween(start, end)
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour), nil
}

// DetectType classifies a shift. Priority: holiday > Friday (the UAE
// default weekly rest day) > night > regular.
func DetectType(date time.Time, startTime, endTime string, holidays []overtime.PublicHoliday) (overtime.Type, error) {
	if IsPublicHoliday(date, holidays) {
		return overtime.TypeHoliday, nil
	}
	if date.Weekday() == time.Friday {
		return overtime.TypeFriday, nil
	}

	night, err := IsNightShift(startTime, endTime)
	if err != nil {
		return overtime.TypeRegular, err
	}
	if night {
		return overtime.TypeNight, nil
	}
	return overtime.TypeRegular, nil
}

// IsPublicHoliday reports whether the date falls within any configured
// holiday range, inclusive on both ends.
func IsPublicHoliday(date time.Time, holidays []overtime.PublicHoliday) bool {
	day := dateutil.DateOnly(date)
	for _, h := range holidays {
		start := dateutil.DateOnly(h.StartDate)
		end := start
		if h.EndDate != nil {
			end = dateutil.DateOnly(*h.EndDate)
		}
		if !day.Before(start) && !day.After(end) {
			return true
		}
	}
	return false
}

// IsNightShift reports whether any boundary of the shift lies inside the
// 22:00-04:00 night window. Start and end hours are tested independently:
// a shift that merely starts or ends inside the window counts as night.
func IsNightShift(startTime, endTime string) (bool, error) {
	startHour, err := dateutil.ClockHour(startTime)
	if err != nil {
		return false, err
	}
	endHour, err := dateutil.ClockHour(endTime)
	if err != nil {
		return false, err
	}

	return inNightWindow(startHour) || inNightWindow(endHour), nil
}

func inNightWindow(hour int) bool {
	return hour >= overtime.NightWindowStartHour || hour < overtime.NightWindowEndHour
}

// CalculateAmount prices a shift: hourly rate x hours x type multiplier.
func CalculateAmount(basicSalary, hours decimal.Decimal, otType overtime.Type) decimal.Decimal {
	return HourlyRate(basicSalary).Mul(hours).Mul(overtime.RateMultiplier(otType))
}

// ExceedsDailyLimit reports whether a shift is longer than the statutory
// 2h/day overtime cap. The same cap applies in and out of Ramadan here;
// it only warns, entry creation is never blocked.
func ExceedsDailyLimit(hours decimal.Decimal) bool {
	return hours.GreaterThan(dailyLimitHours)
}
