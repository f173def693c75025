package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khaleejhr/hcm-core-go/internal/config"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "hcm",
	Short: "UAE HCM statutory calculations",
	Long:  `Gratuity, overtime and payroll calculations with WPS SIF export for UAE-based employers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Init(cfg.App.Env)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(gratuityCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(wpsCmd)
	rootCmd.AddCommand(payslipCmd)
}
