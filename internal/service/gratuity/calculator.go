package gratuity

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/gratuity"
)

// Statutory constants of UAE Federal Decree-Law No. 33/2021, Art. 51.
// The law counts a fixed 365-day year and 30-day month; no calendar
// adjustment is applied.
const (
	daysPerYear  = 365
	daysPerMonth = 30

	firstTierWageDays  = 21 // per year of service, first five years
	secondTierWageDays = 30 // per year of service beyond five years

	capAnnualSalaries = 2 // gratuity never exceeds two years' salary

	paymentDeadlineDays = 14
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	yearFactor    = decimal.NewFromInt(daysPerYear)

	one       = decimal.NewFromInt(1)
	three     = decimal.NewFromInt(3)
	five      = decimal.NewFromInt(5)
	oneThird  = one.Div(three)
	twoThirds = decimal.NewFromInt(2).Div(three)
)

// Calculate computes the end-of-service gratuity breakdown. It is a pure
// function: no validation, no I/O, deterministic for a given input. Callers
// that need input rejection go through Service.Calculate.
func Calculate(in gratuity.Input) gratuity.Breakdown {
	totalServiceDays := int(math.Floor(in.EndDate.Sub(in.StartDate).Hours() / 24))

	effectiveServiceDays := totalServiceDays - in.UnpaidLeaveDays
	if effectiveServiceDays < 0 {
		effectiveServiceDays = 0
	}

	yearsOfService := decimal.NewFromInt(int64(effectiveServiceDays)).Div(yearFactor)

	b := gratuity.Breakdown{
		TotalServiceDays:     totalServiceDays,
		EffectiveServiceDays: effectiveServiceDays,
		YearsOfService:       yearsOfService,
		ServiceYears:         effectiveServiceDays / daysPerYear,
		ServiceMonths:        (effectiveServiceDays % daysPerYear) / daysPerMonth,
		ServiceDays:          (effectiveServiceDays % daysPerYear) % daysPerMonth,
		PaymentDeadline:      in.EndDate.AddDate(0, 0, paymentDeadlineDays),
	}

	b.DailyWage = in.BasicSalary.Mul(monthsPerYear).Div(yearFactor)
	annualSalary := in.BasicSalary.Mul(monthsPerYear)
	b.MaxCap = annualSalary.Mul(decimal.NewFromInt(capAnnualSalaries))

	if yearsOfService.LessThan(one) {
		b.IsEligible = false
		b.IneligibilityReason = fmt.Sprintf(
			"service period of %d effective days is below the one full year required for gratuity entitlement",
			effectiveServiceDays,
		)
		b.FirstTierAmount = decimal.Zero
		b.SecondTierAmount = decimal.Zero
		b.GrossGratuity = decimal.Zero
		b.ResignationMultiplier = decimal.Zero
		b.ResignationDeduction = decimal.Zero
		b.NetGratuity = decimal.Zero
		b.CappedGratuity = decimal.Zero
		return b
	}
	b.IsEligible = true

	firstTierYears := decimal.Min(yearsOfService, five)
	secondTierYears := decimal.Max(decimal.Zero, yearsOfService.Sub(five))

	b.FirstTierAmount = b.DailyWage.Mul(decimal.NewFromInt(firstTierWageDays)).Mul(firstTierYears)
	b.SecondTierAmount = b.DailyWage.Mul(decimal.NewFromInt(secondTierWageDays)).Mul(secondTierYears)
	b.GrossGratuity = b.FirstTierAmount.Add(b.SecondTierAmount)

	b.ResignationMultiplier = resignationMultiplier(in.ContractType, in.TerminationType, yearsOfService)
	b.NetGratuity = b.GrossGratuity.Mul(b.ResignationMultiplier)
	b.ResignationDeduction = b.GrossGratuity.Mul(one.Sub(b.ResignationMultiplier))

	b.CappedGratuity = decimal.Min(b.NetGratuity, b.MaxCap)
	b.IsCapped = b.NetGratuity.GreaterThan(b.MaxCap)

	return b
}

// resignationMultiplier implements the Art. 51 reduction: it applies only
// to resignations from unlimited contracts, stepping at 1, 3 and 5 years
// of service. Limited contracts and employer-initiated terminations always
// receive the full entitlement.
func resignationMultiplier(contract employee.ContractType, termination gratuity.TerminationType, years decimal.Decimal) decimal.Decimal {
	if contract != employee.ContractTypeUnlimited || termination != gratuity.TerminationTypeResignation {
		return one
	}

	switch {
	case years.LessThan(one):
		return decimal.Zero
	case years.LessThan(three):
		return oneThird
	case years.LessThan(five):
		return twoThirds
	default:
		return one
	}
}

// FormatServiceDuration renders the display decomposition of a breakdown,
// e.g. "5 years, 1 month, 12 days".
func FormatServiceDuration(b gratuity.Breakdown) string {
	return fmt.Sprintf("%s, %s, %s",
		plural(b.ServiceYears, "year"),
		plural(b.ServiceMonths, "month"),
		plural(b.ServiceDays, "day"),
	)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ResignationTierDescription explains which reduction tier applied.
func ResignationTierDescription(in gratuity.Input, b gratuity.Breakdown) string {
	if in.ContractType != employee.ContractTypeUnlimited || in.TerminationType != gratuity.TerminationTypeResignation {
		return "Full entitlement: no resignation reduction applies to limited contracts or employer-initiated termination."
	}

	switch {
	case b.YearsOfService.LessThan(one):
		return "Resignation under 1 year of service: no gratuity entitlement."
	case b.YearsOfService.LessThan(three):
		return "Resignation between 1 and 3 years of service: one third of the gross gratuity is payable."
	case b.YearsOfService.LessThan(five):
		return "Resignation between 3 and 5 years of service: two thirds of the gross gratuity is payable."
	default:
		return "Resignation after 5 or more years of service: the full gross gratuity is payable."
	}
}
