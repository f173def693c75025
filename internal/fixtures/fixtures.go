package fixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/leave"
	"github.com/khaleejhr/hcm-core-go/internal/domain/overtime"
	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func intPtr(i int) *int          { return &i }
func strPtr(s string) *string    { return &s }
func date(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }

// ==========================================
// EMPLOYEES
// ==========================================

// NewEmployee builds an active employee with a representative UAE
// compensation package. Tests override fields as needed.
func NewEmployee(code, name string) employee.Employee {
	now := time.Now().UTC()
	return employee.Employee{
		ID:                 uuid.NewString(),
		EmployeeCode:       code,
		FullName:           name,
		Position:           strPtr("Software Engineer"),
		JoinDate:           date(2020, 3, 1),
		ContractType:       employee.ContractTypeUnlimited,
		EmploymentStatus:   employee.EmploymentStatusActive,
		BasicSalary:        decimal.NewFromInt(15000),
		HousingAllowance:   decimal.NewFromInt(5000),
		TransportAllowance: decimal.NewFromInt(1500),
		OtherAllowance:     decimal.NewFromInt(500),
		BankName:           "Emirates NBD",
		BankAccountNumber:  "1012345678901",
		IBAN:               "AE070260001012345678901",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// ==========================================
// PUBLIC HOLIDAYS
// ==========================================

// UAEPublicHolidays2025 is the 2025 UAE public holiday calendar used as
// default classification reference data.
func UAEPublicHolidays2025() []overtime.PublicHoliday {
	endDate := func(y, m, d int) *time.Time {
		t := date(y, m, d)
		return &t
	}

	return []overtime.PublicHoliday{
		{Name: "New Year's Day", StartDate: date(2025, 1, 1)},
		{Name: "Eid Al Fitr", StartDate: date(2025, 3, 30), EndDate: endDate(2025, 4, 1)},
		{Name: "Arafat Day and Eid Al Adha", StartDate: date(2025, 6, 5), EndDate: endDate(2025, 6, 8)},
		{Name: "Islamic New Year", StartDate: date(2025, 6, 26)},
		{Name: "Prophet Muhammad's Birthday", StartDate: date(2025, 9, 5)},
		{Name: "Commemoration Day and National Day", StartDate: date(2025, 12, 1), EndDate: endDate(2025, 12, 3)},
	}
}

// ==========================================
// LEAVE / LOANS / DEDUCTIONS
// ==========================================

// NewUnpaidLeave builds an approved unpaid-leave request starting at the
// given date.
func NewUnpaidLeave(employeeID string, start time.Time, days int) leave.Request {
	return leave.Request{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Type:       leave.TypeUnpaid,
		Status:     leave.StatusApproved,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, days-1),
		TotalDays:  days,
		CreatedAt:  time.Now().UTC(),
	}
}

// NewLoan builds an active loan schedule running from (startMonth,
// startYear) for the given number of months.
func NewLoan(employeeID string, installment decimal.Decimal, startMonth, startYear, months int) payroll.LoanAdvance {
	total := installment.Mul(decimal.NewFromInt(int64(months)))
	endIndex := startYear*12 + (startMonth - 1) + months - 1

	return payroll.LoanAdvance{
		ID:                 uuid.NewString(),
		EmployeeID:         employeeID,
		Type:               payroll.LoanAdvanceTypeLoan,
		TotalAmount:        total,
		RemainingAmount:    total,
		MonthlyInstallment: installment,
		StartMonth:         startMonth,
		StartYear:          startYear,
		EndMonth:           intPtr(endIndex%12 + 1),
		EndYear:            intPtr(endIndex / 12),
		IsActive:           true,
	}
}

// NewAdvance builds an open-ended active salary-advance schedule.
func NewAdvance(employeeID string, installment decimal.Decimal, startMonth, startYear int) payroll.LoanAdvance {
	return payroll.LoanAdvance{
		ID:                 uuid.NewString(),
		EmployeeID:         employeeID,
		Type:               payroll.LoanAdvanceTypeAdvance,
		TotalAmount:        installment,
		RemainingAmount:    installment,
		MonthlyInstallment: installment,
		StartMonth:         startMonth,
		StartYear:          startYear,
		IsActive:           true,
	}
}

// NewDeduction builds an ad-hoc deduction for an exact period.
func NewDeduction(employeeID string, amount decimal.Decimal, month, year int, description string) payroll.Deduction {
	return payroll.Deduction{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Type:        payroll.DeductionTypeOther,
		Amount:      amount,
		Month:       month,
		Year:        year,
		Description: description,
	}
}
