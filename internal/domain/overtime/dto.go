package overtime

import (
	"github.com/shopspring/decimal"

	"github.com/khaleejhr/hcm-core-go/internal/pkg/validator"
)

type LogEntryRequest struct {
	EmployeeID  string          `json:"employee_id"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Date        string          `json:"date"` // "2006-01-02"
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	// Type forces a classification; empty means auto-detect.
	Type  string `json:"type,omitempty"`
	Notes string `json:"notes,omitempty"`
}

func (r *LogEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid HH:MM clock time"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid HH:MM clock time"})
	}
	if r.Type != "" && !validator.IsInSlice(r.Type, []string{"regular", "night", "friday", "holiday"}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of regular, night, friday, holiday"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
