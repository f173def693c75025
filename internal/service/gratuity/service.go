package gratuity

import (
	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/gratuity"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/validator"
)

// Service is the validating adapter in front of the pure calculator. The
// calculator itself reproduces the statutory math for whatever it is
// handed; the service is where malformed input is rejected.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Calculate(req gratuity.CalculateRequest) (gratuity.Breakdown, error) {
	if err := req.Validate(); err != nil {
		return gratuity.Breakdown{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	input := gratuity.Input{
		BasicSalary:     req.BasicSalary,
		StartDate:       startDate,
		EndDate:         endDate,
		ContractType:    employee.ContractType(req.ContractType),
		TerminationType: gratuity.TerminationType(req.TerminationType),
		UnpaidLeaveDays: req.UnpaidLeaveDays,
	}

	return Calculate(input), nil
}
