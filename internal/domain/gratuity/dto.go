package gratuity

import (
	"github.com/shopspring/decimal"

	"github.com/khaleejhr/hcm-core-go/internal/pkg/validator"
)

// CalculateRequest is the validated entry point into the gratuity engine.
// The pure calculator accepts whatever it is given; callers coming through
// the service go through Validate first.
type CalculateRequest struct {
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	StartDate       string          `json:"start_date"` // "2006-01-02"
	EndDate         string          `json:"end_date"`
	ContractType    string          `json:"contract_type"`    // "limited" or "unlimited"
	TerminationType string          `json:"termination_type"` // "resignation" or "termination"
	UnpaidLeaveDays int             `json:"unpaid_leave_days"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if r.ContractType != "limited" && r.ContractType != "unlimited" {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be 'limited' or 'unlimited'"})
	}
	if r.TerminationType != "resignation" && r.TerminationType != "termination" {
		errs = append(errs, validator.ValidationError{Field: "termination_type", Message: "must be 'resignation' or 'termination'"})
	}
	if r.UnpaidLeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "unpaid_leave_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
