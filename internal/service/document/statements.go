package document

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/gratuity"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/money"
	gratuityService "github.com/khaleejhr/hcm-core-go/internal/service/gratuity"
)

var gratuityStatementTemplate = template.Must(template.New("gratuity").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>End of Service Statement</title></head>
<body>
<h1>{{.CompanyName}}</h1>
<h2>End of Service Gratuity Statement</h2>
<p>Employee: {{.EmployeeName}}</p>
<p>Service period: {{.StartDate}} to {{.EndDate}} ({{.ServiceDuration}})</p>
{{if .IsEligible}}
<table border="1" cellspacing="0" cellpadding="4">
<tr><td>Daily Wage</td><td>{{.DailyWage}}</td></tr>
<tr><td>First Tier (21 days/year, first 5 years)</td><td>{{.FirstTier}}</td></tr>
<tr><td>Second Tier (30 days/year beyond 5 years)</td><td>{{.SecondTier}}</td></tr>
<tr><td>Gross Gratuity</td><td>{{.GrossGratuity}}</td></tr>
<tr><td>Resignation Deduction</td><td>{{.ResignationDeduction}}</td></tr>
<tr><td>Net Gratuity</td><td>{{.NetGratuity}}</td></tr>
{{if .IsCapped}}<tr><td>Statutory Cap (2 years' salary)</td><td>{{.MaxCap}}</td></tr>{{end}}
<tr><th>Payable Gratuity</th><th>{{.CappedGratuity}}</th></tr>
</table>
<p>{{.TierDescription}}</p>
<p>Payment due by {{.PaymentDeadline}}.</p>
{{else}}
<p>No gratuity is payable: {{.IneligibilityReason}}</p>
{{end}}
</body>
</html>
`))

type gratuityStatementView struct {
	CompanyName          string
	EmployeeName         string
	StartDate            string
	EndDate              string
	ServiceDuration      string
	IsEligible           bool
	IneligibilityReason  string
	DailyWage            string
	FirstTier            string
	SecondTier           string
	GrossGratuity        string
	ResignationDeduction string
	NetGratuity          string
	IsCapped             bool
	MaxCap               string
	CappedGratuity       string
	TierDescription      string
	PaymentDeadline      string
}

// RenderGratuityStatementHTML renders a gratuity breakdown as a printable
// end-of-service statement.
func RenderGratuityStatementHTML(companyName, employeeName string, in gratuity.Input, b gratuity.Breakdown) (string, error) {
	view := gratuityStatementView{
		CompanyName:          companyName,
		EmployeeName:         employeeName,
		StartDate:            in.StartDate.Format("2006-01-02"),
		EndDate:              in.EndDate.Format("2006-01-02"),
		ServiceDuration:      gratuityService.FormatServiceDuration(b),
		IsEligible:           b.IsEligible,
		IneligibilityReason:  b.IneligibilityReason,
		DailyWage:            money.FormatAED(b.DailyWage),
		FirstTier:            money.FormatAED(b.FirstTierAmount),
		SecondTier:           money.FormatAED(b.SecondTierAmount),
		GrossGratuity:        money.FormatAED(b.GrossGratuity),
		ResignationDeduction: money.FormatAED(b.ResignationDeduction),
		NetGratuity:          money.FormatAED(b.NetGratuity),
		IsCapped:             b.IsCapped,
		MaxCap:               money.FormatAED(b.MaxCap),
		CappedGratuity:       money.FormatAED(b.CappedGratuity),
		TierDescription:      gratuityService.ResignationTierDescription(in, b),
		PaymentDeadline:      b.PaymentDeadline.Format("2006-01-02"),
	}

	var buf strings.Builder
	if err := gratuityStatementTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render gratuity statement: %w", err)
	}
	return buf.String(), nil
}

var salaryCertificateTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Salary Certificate</title></head>
<body>
<h1>{{.CompanyName}}</h1>
<h2>Salary Certificate</h2>
<p>Date: {{.IssuedOn}}</p>
<p>This is to certify that {{.EmployeeName}} (employee code {{.EmployeeCode}})
has been employed with {{.CompanyName}} since {{.JoinDate}}{{if .Position}} as {{.Position}}{{end}}.</p>
<p>Their current monthly compensation is:</p>
<table border="1" cellspacing="0" cellpadding="4">
<tr><td>Basic Salary</td><td>{{.BasicSalary}}</td></tr>
<tr><td>Housing Allowance</td><td>{{.HousingAllowance}}</td></tr>
<tr><td>Transport Allowance</td><td>{{.TransportAllowance}}</td></tr>
<tr><td>Other Allowance</td><td>{{.OtherAllowance}}</td></tr>
<tr><th>Total Monthly Salary</th><th>{{.TotalSalary}}</th></tr>
</table>
<p>This certificate is issued upon the employee's request.</p>
</body>
</html>
`))

type salaryCertificateView struct {
	CompanyName        string
	IssuedOn           string
	EmployeeName       string
	EmployeeCode       string
	JoinDate           string
	Position           string
	BasicSalary        string
	HousingAllowance   string
	TransportAllowance string
	OtherAllowance     string
	TotalSalary        string
}

// RenderSalaryCertificateHTML renders an employment/salary certificate.
func RenderSalaryCertificateHTML(companyName string, emp employee.Employee, issuedOn time.Time) (string, error) {
	position := ""
	if emp.Position != nil {
		position = *emp.Position
	}

	view := salaryCertificateView{
		CompanyName:        companyName,
		IssuedOn:           issuedOn.Format("2006-01-02"),
		EmployeeName:       emp.FullName,
		EmployeeCode:       emp.EmployeeCode,
		JoinDate:           emp.JoinDate.Format("2006-01-02"),
		Position:           position,
		BasicSalary:        money.FormatAED(emp.BasicSalary),
		HousingAllowance:   money.FormatAED(emp.HousingAllowance),
		TransportAllowance: money.FormatAED(emp.TransportAllowance),
		OtherAllowance:     money.FormatAED(emp.OtherAllowance),
		TotalSalary:        money.FormatAED(emp.TotalSalary()),
	}

	var buf strings.Builder
	if err := salaryCertificateTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render salary certificate: %w", err)
	}
	return buf.String(), nil
}
