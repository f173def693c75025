package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupBankCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BankCode("026"), LookupBankCode("Emirates NBD"))
	assert.Equal(t, BankCode("026"), LookupBankCode("  emirates nbd  "))
	assert.Equal(t, BankCode("035"), LookupBankCode("First Abu Dhabi Bank"))
	assert.Equal(t, BankCode("802"), LookupBankCode("DUBAI ISLAMIC BANK"))
	assert.Equal(t, BankCodeUnknown, LookupBankCode("Bank of Nowhere"))
	assert.Equal(t, BankCodeUnknown, LookupBankCode(""))
}

func TestLoanAdvance_CoversPeriod(t *testing.T) {
	t.Parallel()

	end := func(m, y int) (*int, *int) { return &m, &y }
	endMonth, endYear := end(2, 2025)

	bounded := LoanAdvance{StartMonth: 11, StartYear: 2024, EndMonth: endMonth, EndYear: endYear, IsActive: true}
	assert.False(t, bounded.CoversPeriod(10, 2024))
	assert.True(t, bounded.CoversPeriod(11, 2024))
	assert.True(t, bounded.CoversPeriod(1, 2025))
	assert.True(t, bounded.CoversPeriod(2, 2025))
	assert.False(t, bounded.CoversPeriod(3, 2025))

	open := LoanAdvance{StartMonth: 3, StartYear: 2025, IsActive: true}
	assert.False(t, open.CoversPeriod(2, 2025))
	assert.True(t, open.CoversPeriod(3, 2025))
	assert.True(t, open.CoversPeriod(7, 2031))

	inactive := bounded
	inactive.IsActive = false
	assert.False(t, inactive.CoversPeriod(1, 2025))
}
