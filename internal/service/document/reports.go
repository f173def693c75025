package document

import (
	"strconv"

	"github.com/khaleejhr/hcm-core-go/internal/domain/gratuity"
	"github.com/khaleejhr/hcm-core-go/internal/domain/overtime"
	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/money"
)

// PayrollRegisterRows renders a run as a row-major table (header first),
// ready for CSV or on-screen tabulation.
func PayrollRegisterRows(run payroll.Run) [][]string {
	rows := [][]string{{
		"Employee Code", "Employee Name", "Basic Salary", "Allowances",
		"Overtime", "Total Earnings", "Total Deductions", "Net Salary",
		"Bank Code", "Status",
	}}

	for _, e := range run.Entries {
		allowances := e.HousingAllowance.Add(e.TransportAllowance).Add(e.OtherAllowance)
		rows = append(rows, []string{
			e.EmployeeCode,
			e.EmployeeName,
			money.Fixed2(e.BasicSalary),
			money.Fixed2(allowances),
			money.Fixed2(e.OvertimeAmount),
			money.Fixed2(e.TotalEarnings),
			money.Fixed2(e.TotalDeductions),
			money.Fixed2(e.NetSalary),
			string(e.BankCode),
			string(e.Status),
		})
	}

	return rows
}

// GratuityReportItem pairs an employee name with their breakdown for
// report rendering.
type GratuityReportItem struct {
	EmployeeName string
	Breakdown    gratuity.Breakdown
}

// GratuityReportRows renders a set of named breakdowns as a table.
func GratuityReportRows(items []GratuityReportItem) [][]string {
	rows := [][]string{{
		"Employee", "Service Days", "Years of Service", "Daily Wage",
		"Gross Gratuity", "Net Gratuity", "Payable", "Eligible",
	}}

	for _, item := range items {
		b := item.Breakdown
		rows = append(rows, []string{
			item.EmployeeName,
			strconv.Itoa(b.EffectiveServiceDays),
			b.YearsOfService.StringFixed(2),
			money.Fixed2(b.DailyWage),
			money.Fixed2(b.GrossGratuity),
			money.Fixed2(b.NetGratuity),
			money.Fixed2(b.CappedGratuity),
			strconv.FormatBool(b.IsEligible),
		})
	}

	return rows
}

// OvertimeSummaryRows renders a monthly overtime summary as a table.
func OvertimeSummaryRows(summary overtime.MonthlySummary) [][]string {
	rows := [][]string{{"Type", "Hours", "Amount"}}

	for _, t := range []overtime.Type{overtime.TypeRegular, overtime.TypeNight, overtime.TypeFriday, overtime.TypeHoliday} {
		total, ok := summary.ByType[t]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			string(t),
			total.Hours.StringFixed(2),
			money.Fixed2(total.Amount),
		})
	}

	rows = append(rows, []string{
		"total",
		summary.TotalHours.StringFixed(2),
		money.Fixed2(summary.TotalAmount),
	})
	return rows
}
