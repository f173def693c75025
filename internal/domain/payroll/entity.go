package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryStatus string

const (
	EntryStatusCalculated EntryStatus = "calculated"
	EntryStatusApproved   EntryStatus = "approved"
	EntryStatusPaid       EntryStatus = "paid"
)

type RunStatus string

const (
	RunStatusCalculated RunStatus = "calculated"
	RunStatusApproved   RunStatus = "approved"
	RunStatusPaid       RunStatus = "paid"
)

// Entry is one employee's pay for one (month, year). Created by the
// generator with status "calculated"; after approval it is never
// recomputed, only moved through status transitions.
type Entry struct {
	ID           string
	EmployeeID   string
	EmployeeCode string
	EmployeeName string
	Month        int
	Year         int

	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherAllowance     decimal.Decimal
	OvertimeHours      decimal.Decimal
	OvertimeAmount     decimal.Decimal
	TotalEarnings      decimal.Decimal

	UnpaidLeaveDays      int
	UnpaidLeaveDeduction decimal.Decimal
	AdvanceDeduction     decimal.Decimal
	LoanDeduction        decimal.Decimal
	OtherDeduction       decimal.Decimal
	TotalDeductions      decimal.Decimal

	NetSalary decimal.Decimal

	BankName      string
	BankCode      BankCode
	AccountNumber string
	IBAN          string

	Status     EntryStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	PaidAt     *time.Time

	CreatedAt time.Time
}

// Run aggregates entries for all active employees over one (month, year).
// Lifecycle: calculated -> approved -> (WPS generated) -> paid, each gate
// one-way. Transitions replace the run wholesale; there is no per-entry
// approval.
type Run struct {
	ID            string
	Month         int
	Year          int
	Entries       []Entry
	EmployeeCount int

	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNetSalary  decimal.Decimal

	Status         RunStatus
	WPSGenerated   bool
	WPSGeneratedAt *time.Time
	ApprovedBy     *string
	ApprovedAt     *time.Time
	PaidAt         *time.Time

	CreatedAt time.Time
}

type LoanAdvanceType string

const (
	LoanAdvanceTypeAdvance LoanAdvanceType = "advance"
	LoanAdvanceTypeLoan    LoanAdvanceType = "loan"
)

// LoanAdvance is a repayment schedule deducted monthly while the target
// (month, year) falls inside [start, end]; a nil end leaves the schedule
// open-ended.
type LoanAdvance struct {
	ID                 string
	EmployeeID         string
	Type               LoanAdvanceType
	TotalAmount        decimal.Decimal
	RemainingAmount    decimal.Decimal
	MonthlyInstallment decimal.Decimal
	StartMonth         int
	StartYear          int
	EndMonth           *int
	EndYear            *int
	IsActive           bool
}

// CoversPeriod reports whether the schedule deducts in (month, year).
func (l LoanAdvance) CoversPeriod(month, year int) bool {
	if !l.IsActive {
		return false
	}

	start := l.StartYear*12 + l.StartMonth
	target := year*12 + month
	if target < start {
		return false
	}
	if l.EndMonth != nil && l.EndYear != nil {
		end := *l.EndYear*12 + *l.EndMonth
		if target > end {
			return false
		}
	}
	return true
}

type DeductionType string

const (
	DeductionTypeOther DeductionType = "other"
)

// Deduction is an ad-hoc one-off deduction tagged to an exact period.
type Deduction struct {
	ID          string
	EmployeeID  string
	Type        DeductionType
	Amount      decimal.Decimal
	Month       int
	Year        int
	Description string
}
