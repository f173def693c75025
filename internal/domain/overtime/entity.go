package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeRegular Type = "regular"
	TypeNight   Type = "night"
	TypeFriday  Type = "friday"
	TypeHoliday Type = "holiday"
)

// Statutory rate multipliers per overtime type.
var rateMultipliers = map[Type]decimal.Decimal{
	TypeRegular: decimal.NewFromFloat(1.25),
	TypeNight:   decimal.NewFromFloat(1.50),
	TypeFriday:  decimal.NewFromFloat(1.50),
	TypeHoliday: decimal.NewFromFloat(2.50),
}

// RateMultiplier returns the statutory multiplier for an overtime type.
// Unknown types price as regular.
func RateMultiplier(t Type) decimal.Decimal {
	if m, ok := rateMultipliers[t]; ok {
		return m
	}
	return rateMultipliers[TypeRegular]
}

// Night window boundaries: any shift touching 22:00-04:00 is night work.
const (
	NightWindowStartHour = 22
	NightWindowEndHour   = 4
)

// DailyLimitHours is the UAE statutory overtime cap per day. Exceeding it
// flags the entry but never blocks creation.
const DailyLimitHours = 2

// Entry is one logged overtime event. Immutable once created, except for
// deletion by the owning store.
type Entry struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	StartTime      string // "HH:MM", may cross midnight relative to EndTime
	EndTime        string
	Type           Type
	Hours          decimal.Decimal
	HourlyRate     decimal.Decimal
	RateMultiplier decimal.Decimal
	Amount         decimal.Decimal
	Notes          string

	// IsAutoDetected is false when the caller supplied the type manually.
	IsAutoDetected bool
	// ExceedsDailyLimit warns that the shift is longer than the statutory
	// 2h/day overtime cap.
	ExceedsDailyLimit bool

	CreatedAt time.Time
}

// PublicHoliday is static reference data; a date falls on a holiday when it
// lies within [StartDate, EndDate] inclusive (EndDate nil means single day).
type PublicHoliday struct {
	Name      string
	StartDate time.Time
	EndDate   *time.Time
}

// TypeTotal is the per-type slice of a monthly summary.
type TypeTotal struct {
	Hours  decimal.Decimal
	Amount decimal.Decimal
}

// MonthlySummary folds one employee's entries for a (month, year).
type MonthlySummary struct {
	EmployeeID  string
	Month       int
	Year        int
	ByType      map[Type]TypeTotal
	TotalHours  decimal.Decimal
	TotalAmount decimal.Decimal
	EntryCount  int
}
