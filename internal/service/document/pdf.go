package document

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/money"
)

// WritePayslipPDF writes one payroll entry as an A4 payslip PDF.
func WritePayslipPDF(w io.Writer, companyName string, e payroll.Entry) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, companyName)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(40, 8, fmt.Sprintf("Payslip - %s", periodLabel(e.Month, e.Year)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", e.EmployeeName, e.EmployeeCode))
	pdf.Ln(10)

	line := func(label string, amount string) {
		pdf.Cell(90, 7, label)
		pdf.Cell(0, 7, amount)
		pdf.Ln(7)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Basic Salary", money.FormatAED(e.BasicSalary))
	line("Housing Allowance", money.FormatAED(e.HousingAllowance))
	line("Transport Allowance", money.FormatAED(e.TransportAllowance))
	line("Other Allowance", money.FormatAED(e.OtherAllowance))
	line(fmt.Sprintf("Overtime (%s h)", e.OvertimeHours.StringFixed(2)), money.FormatAED(e.OvertimeAmount))
	pdf.SetFont("Helvetica", "B", 11)
	line("Total Earnings", money.FormatAED(e.TotalEarnings))
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(fmt.Sprintf("Unpaid Leave (%d days)", e.UnpaidLeaveDays), money.FormatAED(e.UnpaidLeaveDeduction))
	line("Salary Advance", money.FormatAED(e.AdvanceDeduction))
	line("Loan Installment", money.FormatAED(e.LoanDeduction))
	line("Other", money.FormatAED(e.OtherDeduction))
	pdf.SetFont("Helvetica", "B", 11)
	line("Total Deductions", money.FormatAED(e.TotalDeductions))
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 13)
	line("Net Salary", money.FormatAED(e.NetSalary))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Paid to %s account %s", e.BankName, e.AccountNumber))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write payslip pdf: %w", err)
	}
	return nil
}
