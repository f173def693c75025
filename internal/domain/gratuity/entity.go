package gratuity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
)

// TerminationType distinguishes who ended the employment relationship; the
// resignation reduction of Art. 51 applies only to employee-initiated exits
// on unlimited contracts.
type TerminationType string

const (
	TerminationTypeResignation TerminationType = "resignation"
	TerminationTypeTermination TerminationType = "termination"
)

// Input is one end-of-service calculation request. Values are read once and
// never mutated; every calculation builds a fresh Breakdown.
type Input struct {
	BasicSalary     decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	ContractType    employee.ContractType
	TerminationType TerminationType
	UnpaidLeaveDays int
}

// Breakdown is the full end-of-service result. Monetary fields are all
// zero when IsEligible is false.
type Breakdown struct {
	TotalServiceDays     int
	EffectiveServiceDays int
	YearsOfService       decimal.Decimal

	// Display decomposition on the statutory 365/30 day conventions.
	// Not used in money math.
	ServiceYears  int
	ServiceMonths int
	ServiceDays   int

	DailyWage             decimal.Decimal
	FirstTierAmount       decimal.Decimal
	SecondTierAmount      decimal.Decimal
	GrossGratuity         decimal.Decimal
	ResignationMultiplier decimal.Decimal
	ResignationDeduction  decimal.Decimal
	NetGratuity           decimal.Decimal
	MaxCap                decimal.Decimal
	CappedGratuity        decimal.Decimal
	IsCapped              bool

	IsEligible          bool
	IneligibilityReason string
	PaymentDeadline     time.Time
}
