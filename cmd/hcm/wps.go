package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	payrollService "github.com/khaleejhr/hcm-core-go/internal/service/payroll"
)

var (
	wpsData       string
	wpsMonth      int
	wpsYear       int
	wpsApprovedBy string
)

var wpsCmd = &cobra.Command{
	Use:   "wps",
	Short: "Generate an approved payroll run's WPS SIF file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(wpsData)
		if err != nil {
			return err
		}

		svc := payrollService.NewService()
		run, err := svc.GenerateRun(ds.Employees, wpsMonth, wpsYear, ds.periodInputs())
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		run, err = run.Approve(wpsApprovedBy, now)
		if err != nil {
			return err
		}

		sif, err := svc.GenerateSIF(run, cfg.Company.EmployerCode)
		if err != nil {
			return err
		}
		run, err = run.MarkWPSGenerated(now)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.App.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		path := filepath.Join(cfg.App.OutputDir, payrollService.SIFFileName(cfg.Company.EmployerCode, now))
		if err := os.WriteFile(path, []byte(sif), 0o644); err != nil {
			return fmt.Errorf("write SIF: %w", err)
		}

		fmt.Printf("WPS file for %d/%d (%d employees) written to %s\n",
			run.Month, run.Year, run.EmployeeCount, path)
		return nil
	},
}

func init() {
	wpsCmd.Flags().StringVar(&wpsData, "data", "", "JSON dataset file")
	wpsCmd.Flags().IntVar(&wpsMonth, "month", 0, "payroll month (1-12)")
	wpsCmd.Flags().IntVar(&wpsYear, "year", 0, "payroll year")
	wpsCmd.Flags().StringVar(&wpsApprovedBy, "approved-by", "cli", "name recorded as run approver")

	_ = wpsCmd.MarkFlagRequired("data")
	_ = wpsCmd.MarkFlagRequired("month")
	_ = wpsCmd.MarkFlagRequired("year")
}
