package payroll

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/dateutil"
	"github.com/khaleejhr/hcm-core-go/internal/pkg/money"
)

// wpsRecordType identifies an Employee Detail Record in the SIF format.
const wpsRecordType = "EDR"

var sifHeader = []string{
	"Record_Type",
	"Employer_Code",
	"Bank_Code",
	"Employee_ID",
	"Account_Number",
	"Start_Date",
	"End_Date",
	"Days_Worked",
	"Net_Salary",
	"Fixed_Allowance",
	"Variable_Allowance",
	"Leave_Amount",
}

// GenerateSIF renders a payroll run as a WPS Salary Information File: a
// fixed-column CSV with one EDR row per entry. Generation is gated on an
// approved run; the caller records the fact via Run.MarkWPSGenerated.
func (s *Service) GenerateSIF(run payroll.Run, employerCode string) (string, error) {
	if run.Status != payroll.RunStatusApproved {
		return "", payroll.ErrRunNotApproved
	}
	if len(run.Entries) == 0 {
		return "", payroll.ErrEmptyRun
	}

	first, last := dateutil.MonthBounds(run.Month, run.Year)
	daysInMonth := dateutil.DaysInMonth(run.Month, run.Year)

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(sifHeader); err != nil {
		return "", fmt.Errorf("write SIF header: %w", err)
	}

	for _, e := range run.Entries {
		fixedAllowance := e.HousingAllowance.Add(e.TransportAllowance)
		variableAllowance := e.OtherAllowance.Add(e.OvertimeAmount)
		daysWorked := daysInMonth - e.UnpaidLeaveDays

		row := []string{
			wpsRecordType,
			employerCode,
			string(e.BankCode),
			e.EmployeeCode,
			e.AccountNumber,
			dateutil.FormatYYYYMMDD(first),
			dateutil.FormatYYYYMMDD(last),
			strconv.Itoa(daysWorked),
			money.Fixed2(e.NetSalary),
			money.Fixed2(fixedAllowance),
			money.Fixed2(variableAllowance),
			money.Fixed2(e.UnpaidLeaveDeduction),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write SIF row for employee %s: %w", e.EmployeeCode, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush SIF: %w", err)
	}

	return buf.String(), nil
}

// SIFFileName follows the WPS submission naming convention:
// <employer code>_<YYMMDDHHMMSS>.SIF.
func SIFFileName(employerCode string, generatedAt time.Time) string {
	return fmt.Sprintf("%s_%s.SIF", employerCode, generatedAt.Format("060102150405"))
}
