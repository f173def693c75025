package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/leave"
	"github.com/khaleejhr/hcm-core-go/internal/domain/overtime"
	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
	"github.com/khaleejhr/hcm-core-go/internal/fixtures"
	overtimeService "github.com/khaleejhr/hcm-core-go/internal/service/overtime"
)

func TestGenerateEntry_BasicPackageOnly(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	svc := NewService()

	entry := svc.GenerateEntry(emp, 1, 2025, PeriodInputs{})

	assert.Equal(t, "22000.00", entry.TotalEarnings.StringFixed(2))
	assert.True(t, entry.TotalDeductions.IsZero())
	assert.Equal(t, "22000.00", entry.NetSalary.StringFixed(2))
	assert.Equal(t, payroll.EntryStatusCalculated, entry.Status)
	assert.Equal(t, payroll.BankCode("026"), entry.BankCode)
	assert.Equal(t, emp.IBAN, entry.IBAN)
}

func TestGenerateEntry_OvertimeFlowsIntoEarnings(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	ot, err := overtimeService.NewEntry(emp.ID, emp.BasicSalary, monday, "18:00", "20:00", "", "", nil)
	require.NoError(t, err)

	svc := NewService()
	entry := svc.GenerateEntry(emp, 1, 2025, PeriodInputs{
		OvertimeEntries: []overtime.Entry{ot},
	})

	assert.Equal(t, "2.00", entry.OvertimeHours.StringFixed(2))
	assert.Equal(t, "154.11", entry.OvertimeAmount.StringFixed(2))
	assert.Equal(t, "22154.11", entry.TotalEarnings.StringFixed(2))
	assert.True(t, entry.TotalEarnings.Sub(entry.TotalDeductions).Equal(entry.NetSalary))
}

func TestGenerateEntry_UnpaidLeaveDeduction(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	emp.BasicSalary = decimal.NewFromInt(10000)

	svc := NewService()
	entry := svc.GenerateEntry(emp, 1, 2025, PeriodInputs{
		LeaveRequests: []leave.Request{
			fixtures.NewUnpaidLeave(emp.ID, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 2),
		},
	})

	// Two unpaid days at 10,000 basic: 10000 x 12 / 365 x 2.
	assert.Equal(t, 2, entry.UnpaidLeaveDays)
	assert.Equal(t, "657.53", entry.UnpaidLeaveDeduction.StringFixed(2))
	assert.True(t, entry.TotalEarnings.Sub(entry.TotalDeductions).Equal(entry.NetSalary))
}

func TestGenerateEntry_IgnoresLeaveOutsidePeriod(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")

	svc := NewService()
	entry := svc.GenerateEntry(emp, 1, 2025, PeriodInputs{
		LeaveRequests: []leave.Request{
			fixtures.NewUnpaidLeave(emp.ID, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 3),
			fixtures.NewUnpaidLeave("someone-else", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 3),
		},
	})

	assert.Equal(t, 0, entry.UnpaidLeaveDays)
	assert.True(t, entry.UnpaidLeaveDeduction.IsZero())
}

func TestGenerateEntry_LoanAndAdvanceWindows(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	installment := decimal.NewFromInt(500)

	// Loan runs Nov 2024 through Feb 2025; the advance is open-ended from
	// March 2025; the second loan is deactivated and must never deduct.
	loan := fixtures.NewLoan(emp.ID, installment, 11, 2024, 4)
	advance := fixtures.NewAdvance(emp.ID, installment, 3, 2025)
	inactive := fixtures.NewLoan(emp.ID, installment, 1, 2025, 12)
	inactive.IsActive = false

	svc := NewService()
	inputs := PeriodInputs{LoansAdvances: []payroll.LoanAdvance{loan, advance, inactive}}

	jan := svc.GenerateEntry(emp, 1, 2025, inputs)
	assert.Equal(t, "500.00", jan.LoanDeduction.StringFixed(2))
	assert.True(t, jan.AdvanceDeduction.IsZero())

	mar := svc.GenerateEntry(emp, 3, 2025, inputs)
	assert.True(t, mar.LoanDeduction.IsZero(), "loan window ended in February")
	assert.Equal(t, "500.00", mar.AdvanceDeduction.StringFixed(2))

	oct := svc.GenerateEntry(emp, 10, 2024, inputs)
	assert.True(t, oct.LoanDeduction.IsZero(), "loan starts in November")
}

func TestGenerateEntry_OtherDeductionsExactPeriodOnly(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	svc := NewService()

	entry := svc.GenerateEntry(emp, 1, 2025, PeriodInputs{
		Deductions: []payroll.Deduction{
			fixtures.NewDeduction(emp.ID, decimal.NewFromInt(300), 1, 2025, "damaged equipment"),
			fixtures.NewDeduction(emp.ID, decimal.NewFromInt(999), 2, 2025, "next month"),
			fixtures.NewDeduction("someone-else", decimal.NewFromInt(999), 1, 2025, "other employee"),
		},
	})

	assert.Equal(t, "300.00", entry.OtherDeduction.StringFixed(2))
	assert.Equal(t, "300.00", entry.TotalDeductions.StringFixed(2))
}

func TestGenerateEntry_NegativeNetIsNotClamped(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	svc := NewService()

	entry := svc.GenerateEntry(emp, 1, 2025, PeriodInputs{
		Deductions: []payroll.Deduction{
			fixtures.NewDeduction(emp.ID, decimal.NewFromInt(30000), 1, 2025, "settlement"),
		},
	})

	assert.True(t, entry.NetSalary.IsNegative())
	assert.Equal(t, "-8000.00", entry.NetSalary.StringFixed(2))
}

func TestGenerateEntry_UnknownBank(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	emp.BankName = "Bank of Nowhere"

	svc := NewService()
	entry := svc.GenerateEntry(emp, 1, 2025, PeriodInputs{})

	assert.Equal(t, payroll.BankCodeUnknown, entry.BankCode)
}

func TestGenerateRun_SkipsInactiveAndSumsTotals(t *testing.T) {
	t.Parallel()

	active1 := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	active2 := fixtures.NewEmployee("EMP002", "Omar Haddad")
	resigned := fixtures.NewEmployee("EMP003", "Lena Petrova")
	resigned.EmploymentStatus = employee.EmploymentStatusResigned

	svc := NewService()
	run, err := svc.GenerateRun([]employee.Employee{active1, active2, resigned}, 1, 2025, PeriodInputs{})
	require.NoError(t, err)

	assert.Equal(t, payroll.RunStatusCalculated, run.Status)
	assert.Equal(t, 2, run.EmployeeCount)
	require.Len(t, run.Entries, 2)

	earnings := decimal.Zero
	deductions := decimal.Zero
	net := decimal.Zero
	for _, e := range run.Entries {
		earnings = earnings.Add(e.TotalEarnings)
		deductions = deductions.Add(e.TotalDeductions)
		net = net.Add(e.NetSalary)
	}
	assert.True(t, run.TotalEarnings.Equal(earnings))
	assert.True(t, run.TotalDeductions.Equal(deductions))
	assert.True(t, run.TotalNetSalary.Equal(net))
}

func TestGenerateRun_RejectsInvalidPeriod(t *testing.T) {
	t.Parallel()

	svc := NewService()

	_, err := svc.GenerateRun(nil, 13, 2025, PeriodInputs{})
	assert.Error(t, err)

	_, err = svc.GenerateRun(nil, 0, 2025, PeriodInputs{})
	assert.Error(t, err)
}
