package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khaleejhr/hcm-core-go/internal/service/document"
	payrollService "github.com/khaleejhr/hcm-core-go/internal/service/payroll"
)

var (
	payslipData     string
	payslipMonth    int
	payslipYear     int
	payslipEmployee string
	payslipOut      string
)

var payslipCmd = &cobra.Command{
	Use:   "payslip",
	Short: "Render one employee's payslip as a PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(payslipData)
		if err != nil {
			return err
		}

		svc := payrollService.NewService()
		run, err := svc.GenerateRun(ds.Employees, payslipMonth, payslipYear, ds.periodInputs())
		if err != nil {
			return err
		}

		for _, e := range run.Entries {
			if e.EmployeeCode != payslipEmployee {
				continue
			}

			f, err := os.Create(payslipOut)
			if err != nil {
				return fmt.Errorf("create payslip file: %w", err)
			}
			defer f.Close()

			if err := document.WritePayslipPDF(f, cfg.Company.Name, e); err != nil {
				return err
			}
			fmt.Printf("Payslip for %s written to %s\n", e.EmployeeName, payslipOut)
			return nil
		}

		return fmt.Errorf("no payroll entry for employee code %s in %d/%d", payslipEmployee, payslipMonth, payslipYear)
	},
}

func init() {
	payslipCmd.Flags().StringVar(&payslipData, "data", "", "JSON dataset file")
	payslipCmd.Flags().IntVar(&payslipMonth, "month", 0, "payroll month (1-12)")
	payslipCmd.Flags().IntVar(&payslipYear, "year", 0, "payroll year")
	payslipCmd.Flags().StringVar(&payslipEmployee, "employee", "", "employee code")
	payslipCmd.Flags().StringVar(&payslipOut, "out", "payslip.pdf", "output PDF path")

	_ = payslipCmd.MarkFlagRequired("data")
	_ = payslipCmd.MarkFlagRequired("month")
	_ = payslipCmd.MarkFlagRequired("year")
	_ = payslipCmd.MarkFlagRequired("employee")
}
