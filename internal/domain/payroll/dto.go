package payroll

import (
	"github.com/khaleejhr/hcm-core-go/internal/pkg/validator"
)

type GenerateRunRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
