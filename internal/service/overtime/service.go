package overtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khaleejhr/hcm-core-go/internal/domain/overtime"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/dateutil"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/validator"
)

// Service validates overtime log requests and constructs immutable
// entries. The holiday calendar is static reference data injected once.
type Service struct {
	holidays []overtime.PublicHoliday
}

func NewService(holidays []overtime.PublicHoliday) *Service {
	return &Service{holidays: holidays}
}

// LogEntry builds an overtime entry from a validated request. The type is
// auto-detected unless the request carries a manual override.
func (s *Service) LogEntry(req overtime.LogEntryRequest) (overtime.Entry, error) {
	if err := req.Validate(); err != nil {
		return overtime.Entry{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	return NewEntry(req.EmployeeID, req.BasicSalary, date, req.StartTime, req.EndTime, overtime.Type(req.Type), req.Notes, s.holidays)
}

// NewEntry is the pure entry constructor. An empty manualType means
// auto-detect; the resulting entry records which path was taken.
func NewEntry(
	employeeID string,
	basicSalary decimal.Decimal,
	date time.Time,
	startTime, endTime string,
	manualType overtime.Type,
	notes string,
	holidays []overtime.PublicHoliday,
) (overtime.Entry, error) {
	hours, err := CalculateHours(startTime, endTime)
	if err != nil {
		return overtime.Entry{}, err
	}

	otType := manualType
	autoDetected := false
	if otType == "" {
		otType, err = DetectType(date, startTime, endTime, holidays)
		if err != nil {
			return overtime.Entry{}, err
		}
		autoDetected = true
	}

	hourlyRate := HourlyRate(basicSalary)
	multiplier := overtime.RateMultiplier(otType)

	return overtime.Entry{
		ID:                uuid.NewString(),
		EmployeeID:        employeeID,
		Date:              dateutil.DateOnly(date),
		StartTime:         startTime,
		EndTime:           endTime,
		Type:              otType,
		Hours:             hours,
		HourlyRate:        hourlyRate,
		RateMultiplier:    multiplier,
		Amount:            hourlyRate.Mul(hours).Mul(multiplier),
		Notes:             notes,
		IsAutoDetected:    autoDetected,
		ExceedsDailyLimit: ExceedsDailyLimit(hours),
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// MonthEntries filters entries to one employee and calendar (month, year).
func MonthEntries(entries []overtime.Entry, employeeID string, month, year int) []overtime.Entry {
	var result []overtime.Entry
	for _, e := range entries {
		if e.EmployeeID == employeeID && dateutil.SameMonth(e.Date, month, year) {
			result = append(result, e)
		}
	}
	return result
}

// MonthlySummary folds an employee's entries for (month, year) into
// per-type subtotals plus grand totals. Pure accumulation; entries never
// interact.
func MonthlySummary(entries []overtime.Entry, employeeID string, month, year int) overtime.MonthlySummary {
	summary := overtime.MonthlySummary{
		EmployeeID:  employeeID,
		Month:       month,
		Year:        year,
		ByType:      make(map[overtime.Type]overtime.TypeTotal),
		TotalHours:  decimal.Zero,
		TotalAmount: decimal.Zero,
	}

	for _, e := range MonthEntries(entries, employeeID, month, year) {
		t := summary.ByType[e.Type]
		t.Hours = t.Hours.Add(e.Hours)
		t.Amount = t.Amount.Add(e.Amount)
		summary.ByType[e.Type] = t

		summary.TotalHours = summary.TotalHours.Add(e.Hours)
		summary.TotalAmount = summary.TotalAmount.Add(e.Amount)
		summary.EntryCount++
	}

	return summary
}
