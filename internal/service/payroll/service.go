package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/leave"
	"github.com/khaleejhr/hcm-core-go/internal/domain/overtime"
	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
	overtimeService "github.com/khaleejhr/hcm-core-go/internal/service/overtime"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
)

// PeriodInputs carries the supporting records for one payroll period.
// Callers are responsible for supplying a consistent snapshot; the engine
// does no fetching of its own.
type PeriodInputs struct {
	OvertimeEntries []overtime.Entry
	LeaveRequests   []leave.Request
	LoansAdvances   []payroll.LoanAdvance
	Deductions      []payroll.Deduction
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// GenerateEntry computes one employee's pay entry for (month, year) from
// basic compensation, overtime, approved unpaid leave, loan/advance
// schedules and ad-hoc deductions. The entry is stamped "calculated";
// bank routing fields are copied from the employee record.
func (s *Service) GenerateEntry(emp employee.Employee, month, year int, inputs PeriodInputs) payroll.Entry {
	summary := overtimeService.MonthlySummary(inputs.OvertimeEntries, emp.ID, month, year)

	unpaidDays := unpaidLeaveDays(inputs.LeaveRequests, emp.ID, month, year)
	dailySalary := emp.BasicSalary.Mul(monthsPerYear).Div(daysPerYear)
	unpaidDeduction := dailySalary.Mul(decimal.NewFromInt(int64(unpaidDays)))

	advanceDeduction := decimal.Zero
	loanDeduction := decimal.Zero
	for _, la := range inputs.LoansAdvances {
		if la.EmployeeID != emp.ID || !la.CoversPeriod(month, year) {
			continue
		}
		switch la.Type {
		case payroll.LoanAdvanceTypeAdvance:
			advanceDeduction = advanceDeduction.Add(la.MonthlyInstallment)
		case payroll.LoanAdvanceTypeLoan:
			loanDeduction = loanDeduction.Add(la.MonthlyInstallment)
		}
	}

	otherDeduction := decimal.Zero
	for _, d := range inputs.Deductions {
		if d.EmployeeID == emp.ID && d.Type == payroll.DeductionTypeOther && d.Month == month && d.Year == year {
			otherDeduction = otherDeduction.Add(d.Amount)
		}
	}

	totalEarnings := emp.BasicSalary.
		Add(emp.HousingAllowance).
		Add(emp.TransportAllowance).
		Add(emp.OtherAllowance).
		Add(summary.TotalAmount)

	totalDeductions := unpaidDeduction.
		Add(advanceDeduction).
		Add(loanDeduction).
		Add(otherDeduction)

	// Net salary may go negative; that is surfaced as data, not clamped.
	netSalary := totalEarnings.Sub(totalDeductions)

	return payroll.Entry{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
		EmployeeName: emp.FullName,
		Month:        month,
		Year:         year,

		BasicSalary:        emp.BasicSalary,
		HousingAllowance:   emp.HousingAllowance,
		TransportAllowance: emp.TransportAllowance,
		OtherAllowance:     emp.OtherAllowance,
		OvertimeHours:      summary.TotalHours,
		OvertimeAmount:     summary.TotalAmount,
		TotalEarnings:      totalEarnings,

		UnpaidLeaveDays:      unpaidDays,
		UnpaidLeaveDeduction: unpaidDeduction,
		AdvanceDeduction:     advanceDeduction,
		LoanDeduction:        loanDeduction,
		OtherDeduction:       otherDeduction,
		TotalDeductions:      totalDeductions,

		NetSalary: netSalary,

		BankName:      emp.BankName,
		BankCode:      payroll.LookupBankCode(emp.BankName),
		AccountNumber: emp.BankAccountNumber,
		IBAN:          emp.IBAN,

		Status:    payroll.EntryStatusCalculated,
		CreatedAt: time.Now().UTC(),
	}
}

// GenerateRun maps every active employee through GenerateEntry and sums
// the run totals. Inactive employees are skipped entirely.
func (s *Service) GenerateRun(employees []employee.Employee, month, year int, inputs PeriodInputs) (payroll.Run, error) {
	req := payroll.GenerateRunRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return payroll.Run{}, err
	}

	run := payroll.Run{
		ID:              uuid.NewString(),
		Month:           month,
		Year:            year,
		Status:          payroll.RunStatusCalculated,
		TotalEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetSalary:  decimal.Zero,
		CreatedAt:       time.Now().UTC(),
	}

	for _, emp := range employees {
		if emp.EmploymentStatus != employee.EmploymentStatusActive {
			continue
		}

		entry := s.GenerateEntry(emp, month, year, inputs)
		run.Entries = append(run.Entries, entry)
		run.TotalEarnings = run.TotalEarnings.Add(entry.TotalEarnings)
		run.TotalDeductions = run.TotalDeductions.Add(entry.TotalDeductions)
		run.TotalNetSalary = run.TotalNetSalary.Add(entry.NetSalary)
	}
	run.EmployeeCount = len(run.Entries)

	return run, nil
}

// unpaidLeaveDays sums TotalDays of the employee's approved unpaid-leave
// requests whose start date falls in the target month.
func unpaidLeaveDays(requests []leave.Request, employeeID string, month, year int) int {
	days := 0
	for _, r := range requests {
		if r.EmployeeID != employeeID || r.Status != leave.StatusApproved || r.Type != leave.TypeUnpaid {
			continue
		}
		if int(r.StartDate.Month()) == month && r.StartDate.Year() == year {
			days += r.TotalDays
		}
	}
	return days
}
