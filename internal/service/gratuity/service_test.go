package gratuity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaleejhr/hcm-core-go/internal/domain/gratuity"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/validator"
)

func TestService_Calculate_Success(t *testing.T) {
	t.Parallel()

	svc := NewService()
	b, err := svc.Calculate(gratuity.CalculateRequest{
		BasicSalary:     decimal.NewFromInt(15000),
		StartDate:       "2020-03-01",
		EndDate:         "2025-02-28",
		ContractType:    "limited",
		TerminationType: "termination",
	})

	require.NoError(t, err)
	assert.True(t, b.IsEligible)
	assert.True(t, b.CappedGratuity.IsPositive())
}

func TestService_Calculate_RejectsInvertedDates(t *testing.T) {
	t.Parallel()

	svc := NewService()
	_, err := svc.Calculate(gratuity.CalculateRequest{
		BasicSalary:     decimal.NewFromInt(15000),
		StartDate:       "2025-03-01",
		EndDate:         "2020-03-01",
		ContractType:    "limited",
		TerminationType: "termination",
	})

	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "must not be before start_date", verrs.ToMap()["end_date"])
}

func TestService_Calculate_RejectsBadInput(t *testing.T) {
	t.Parallel()

	svc := NewService()
	_, err := svc.Calculate(gratuity.CalculateRequest{
		BasicSalary:     decimal.NewFromInt(-1),
		StartDate:       "not-a-date",
		EndDate:         "2020-03-01",
		ContractType:    "seasonal",
		TerminationType: "quit",
		UnpaidLeaveDays: -3,
	})

	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "basic_salary")
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "contract_type")
	assert.Contains(t, fields, "termination_type")
	assert.Contains(t, fields, "unpaid_leave_days")
}
