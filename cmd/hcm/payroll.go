package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khaleejhr/hcm-core-go/internal/pkg/logger"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/money"
	"github.com/khaleejhr/hcm-core-go/internal/service/document"
	payrollService "github.com/khaleejhr/hcm-core-go/internal/service/payroll"
)

var (
	payrollData     string
	payrollMonth    int
	payrollYear     int
	payrollRegister string
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Generate a monthly payroll run from a dataset file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(payrollData)
		if err != nil {
			return err
		}

		svc := payrollService.NewService()
		run, err := svc.GenerateRun(ds.Employees, payrollMonth, payrollYear, ds.periodInputs())
		if err != nil {
			return err
		}

		for _, e := range run.Entries {
			if e.NetSalary.IsNegative() {
				logger.L().Warn("negative net salary",
					"employee_code", e.EmployeeCode,
					"net_salary", e.NetSalary.StringFixed(2))
			}
		}

		rows := document.PayrollRegisterRows(run)
		out := os.Stdout
		if payrollRegister != "" {
			f, err := os.Create(payrollRegister)
			if err != nil {
				return fmt.Errorf("create register file: %w", err)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		if err := w.WriteAll(rows); err != nil {
			return fmt.Errorf("write register: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Run %d/%d: %d employees, net total %s\n",
			run.Month, run.Year, run.EmployeeCount, money.FormatAED(run.TotalNetSalary))
		return nil
	},
}

func init() {
	payrollCmd.Flags().StringVar(&payrollData, "data", "", "JSON dataset file")
	payrollCmd.Flags().IntVar(&payrollMonth, "month", 0, "payroll month (1-12)")
	payrollCmd.Flags().IntVar(&payrollYear, "year", 0, "payroll year")
	payrollCmd.Flags().StringVar(&payrollRegister, "register", "", "write the register CSV to this path instead of stdout")

	_ = payrollCmd.MarkFlagRequired("data")
	_ = payrollCmd.MarkFlagRequired("month")
	_ = payrollCmd.MarkFlagRequired("year")
}
