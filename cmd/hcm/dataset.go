package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/leave"
	"github.com/khaleejhr/hcm-core-go/internal/domain/overtime"
	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
	payrollService "github.com/khaleejhr/hcm-core-go/internal/service/payroll"
)

// Dataset is the JSON input file consumed by the payroll-facing commands.
// It is the snapshot of records the surrounding system would otherwise
// supply from its store.
type Dataset struct {
	Employees       []employee.Employee      `json:"employees"`
	OvertimeEntries []overtime.Entry         `json:"overtime_entries"`
	LeaveRequests   []leave.Request          `json:"leave_requests"`
	LoansAdvances   []payroll.LoanAdvance    `json:"loans_advances"`
	Deductions      []payroll.Deduction      `json:"deductions"`
	PublicHolidays  []overtime.PublicHoliday `json:"public_holidays"`
}

func loadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return &ds, nil
}

func (d *Dataset) periodInputs() payrollService.PeriodInputs {
	return payrollService.PeriodInputs{
		OvertimeEntries: d.OvertimeEntries,
		LeaveRequests:   d.LeaveRequests,
		LoansAdvances:   d.LoansAdvances,
		Deductions:      d.Deductions,
	}
}
