package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/gratuity"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/money"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/validator"
	"github.com/khaleejhr/hcm-core-go/internal/service/document"
	gratuityService "github.com/khaleejhr/hcm-core-go/internal/service/gratuity"
)

var (
	gratuitySalary      string
	gratuityStart       string
	gratuityEnd         string
	gratuityContract    string
	gratuityTermination string
	gratuityUnpaidDays  int
	gratuityEmployee    string
	gratuityStatement   string
)

var gratuityCmd = &cobra.Command{
	Use:   "gratuity",
	Short: "Calculate UAE end-of-service gratuity",
	RunE: func(cmd *cobra.Command, args []string) error {
		salary, err := decimal.NewFromString(gratuitySalary)
		if err != nil {
			return fmt.Errorf("invalid --salary: %w", err)
		}

		svc := gratuityService.NewService()
		req := gratuity.CalculateRequest{
			BasicSalary:     salary,
			StartDate:       gratuityStart,
			EndDate:         gratuityEnd,
			ContractType:    gratuityContract,
			TerminationType: gratuityTermination,
			UnpaidLeaveDays: gratuityUnpaidDays,
		}

		b, err := svc.Calculate(req)
		if err != nil {
			return err
		}

		printBreakdown(req, b)

		if gratuityStatement != "" {
			start, _ := validator.IsValidDate(req.StartDate)
			end, _ := validator.IsValidDate(req.EndDate)
			input := gratuity.Input{
				BasicSalary:     salary,
				StartDate:       start,
				EndDate:         end,
				ContractType:    employee.ContractType(gratuityContract),
				TerminationType: gratuity.TerminationType(gratuityTermination),
				UnpaidLeaveDays: gratuityUnpaidDays,
			}
			html, err := document.RenderGratuityStatementHTML(cfg.Company.Name, gratuityEmployee, input, b)
			if err != nil {
				return err
			}
			if err := os.WriteFile(gratuityStatement, []byte(html), 0o644); err != nil {
				return fmt.Errorf("write statement: %w", err)
			}
			fmt.Printf("Statement written to %s\n", gratuityStatement)
		}

		return nil
	},
}

func printBreakdown(req gratuity.CalculateRequest, b gratuity.Breakdown) {
	fmt.Printf("Service period:       %s (%s years)\n",
		gratuityService.FormatServiceDuration(b), b.YearsOfService.StringFixed(2))

	if !b.IsEligible {
		fmt.Printf("Not eligible:         %s\n", b.IneligibilityReason)
		return
	}

	fmt.Printf("Daily wage:           %s\n", money.FormatAED(b.DailyWage))
	fmt.Printf("First tier:           %s\n", money.FormatAED(b.FirstTierAmount))
	fmt.Printf("Second tier:          %s\n", money.FormatAED(b.SecondTierAmount))
	fmt.Printf("Gross gratuity:       %s\n", money.FormatAED(b.GrossGratuity))
	if b.ResignationDeduction.IsPositive() {
		fmt.Printf("Resignation deduction: %s\n", money.FormatAED(b.ResignationDeduction))
	}
	fmt.Printf("Net gratuity:         %s\n", money.FormatAED(b.NetGratuity))
	if b.IsCapped {
		fmt.Printf("Capped at:            %s (two years' salary)\n", money.FormatAED(b.MaxCap))
	}
	fmt.Printf("Payable gratuity:     %s\n", money.FormatAED(b.CappedGratuity))
	fmt.Printf("Payment due by:       %s\n", b.PaymentDeadline.Format("2006-01-02"))
}

func init() {
	gratuityCmd.Flags().StringVar(&gratuitySalary, "salary", "", "basic monthly salary in AED")
	gratuityCmd.Flags().StringVar(&gratuityStart, "start", "", "employment start date (YYYY-MM-DD)")
	gratuityCmd.Flags().StringVar(&gratuityEnd, "end", "", "employment end date (YYYY-MM-DD)")
	gratuityCmd.Flags().StringVar(&gratuityContract, "contract", "unlimited", "contract type: limited or unlimited")
	gratuityCmd.Flags().StringVar(&gratuityTermination, "termination", "termination", "termination type: resignation or termination")
	gratuityCmd.Flags().IntVar(&gratuityUnpaidDays, "unpaid-days", 0, "unpaid leave days to exclude from service")
	gratuityCmd.Flags().StringVar(&gratuityEmployee, "employee", "", "employee name for the printable statement")
	gratuityCmd.Flags().StringVar(&gratuityStatement, "statement", "", "write an HTML statement to this path")

	_ = gratuityCmd.MarkFlagRequired("salary")
	_ = gratuityCmd.MarkFlagRequired("start")
	_ = gratuityCmd.MarkFlagRequired("end")
}
