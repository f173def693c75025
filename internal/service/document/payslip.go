package document

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/money"
)

var payslipTemplate = template.Must(template.New("payslip").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Payslip {{.Period}}</title></head>
<body>
<h1>{{.CompanyName}}</h1>
<h2>Payslip — {{.Period}}</h2>
<p>Employee: {{.EmployeeName}} ({{.EmployeeCode}})</p>
<h3>Earnings</h3>
<table border="1" cellspacing="0" cellpadding="4">
<tr><td>Basic Salary</td><td>{{.BasicSalary}}</td></tr>
<tr><td>Housing Allowance</td><td>{{.HousingAllowance}}</td></tr>
<tr><td>Transport Allowance</td><td>{{.TransportAllowance}}</td></tr>
<tr><td>Other Allowance</td><td>{{.OtherAllowance}}</td></tr>
<tr><td>Overtime ({{.OvertimeHours}} h)</td><td>{{.OvertimeAmount}}</td></tr>
<tr><th>Total Earnings</th><th>{{.TotalEarnings}}</th></tr>
</table>
<h3>Deductions</h3>
<table border="1" cellspacing="0" cellpadding="4">
<tr><td>Unpaid Leave ({{.UnpaidLeaveDays}} days)</td><td>{{.UnpaidLeaveDeduction}}</td></tr>
<tr><td>Salary Advance</td><td>{{.AdvanceDeduction}}</td></tr>
<tr><td>Loan Installment</td><td>{{.LoanDeduction}}</td></tr>
<tr><td>Other</td><td>{{.OtherDeduction}}</td></tr>
<tr><th>Total Deductions</th><th>{{.TotalDeductions}}</th></tr>
</table>
<h3>Net Salary: {{.NetSalary}}</h3>
<p>Paid to {{.BankName}} account {{.AccountNumber}}{{if .IBAN}} (IBAN {{.IBAN}}){{end}}</p>
</body>
</html>
`))

type payslipView struct {
	CompanyName          string
	Period               string
	EmployeeName         string
	EmployeeCode         string
	BasicSalary          string
	HousingAllowance     string
	TransportAllowance   string
	OtherAllowance       string
	OvertimeHours        string
	OvertimeAmount       string
	TotalEarnings        string
	UnpaidLeaveDays      int
	UnpaidLeaveDeduction string
	AdvanceDeduction     string
	LoanDeduction        string
	OtherDeduction       string
	TotalDeductions      string
	NetSalary            string
	BankName             string
	AccountNumber        string
	IBAN                 string
}

// RenderPayslipHTML renders one payroll entry as a printable payslip.
func RenderPayslipHTML(companyName string, e payroll.Entry) (string, error) {
	view := payslipView{
		CompanyName:          companyName,
		Period:               periodLabel(e.Month, e.Year),
		EmployeeName:         e.EmployeeName,
		EmployeeCode:         e.EmployeeCode,
		BasicSalary:          money.FormatAED(e.BasicSalary),
		HousingAllowance:     money.FormatAED(e.HousingAllowance),
		TransportAllowance:   money.FormatAED(e.TransportAllowance),
		OtherAllowance:       money.FormatAED(e.OtherAllowance),
		OvertimeHours:        e.OvertimeHours.StringFixed(2),
		OvertimeAmount:       money.FormatAED(e.OvertimeAmount),
		TotalEarnings:        money.FormatAED(e.TotalEarnings),
		UnpaidLeaveDays:      e.UnpaidLeaveDays,
		UnpaidLeaveDeduction: money.FormatAED(e.UnpaidLeaveDeduction),
		AdvanceDeduction:     money.FormatAED(e.AdvanceDeduction),
		LoanDeduction:        money.FormatAED(e.LoanDeduction),
		OtherDeduction:       money.FormatAED(e.OtherDeduction),
		TotalDeductions:      money.FormatAED(e.TotalDeductions),
		NetSalary:            money.FormatAED(e.NetSalary),
		BankName:             e.BankName,
		AccountNumber:        e.AccountNumber,
		IBAN:                 e.IBAN,
	}

	var buf strings.Builder
	if err := payslipTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render payslip: %w", err)
	}
	return buf.String(), nil
}

func periodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}
