package payroll

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaleejhr/hcm-core-go/internal/domain/employee"
	"github.com/khaleejhr/hcm-core-go/internal/domain/leave"
	"github.com/khaleejhr/hcm-core-go/internal/domain/payroll"
	"github.com/khaleejhr/hcm-core-go/internal/fixtures"
)

func approvedRun(t *testing.T, employees []employee.Employee, month, year int, inputs PeriodInputs) payroll.Run {
	t.Helper()

	svc := NewService()
	run, err := svc.GenerateRun(employees, month, year, inputs)
	require.NoError(t, err)

	run, err = run.Approve("hr-manager", time.Now().UTC())
	require.NoError(t, err)
	return run
}

func TestGenerateSIF_Layout(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	run := approvedRun(t, []employee.Employee{emp}, 1, 2025, PeriodInputs{})

	svc := NewService()
	out, err := svc.GenerateSIF(run, "EMPL0001234")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, sifHeader, records[0])

	row := records[1]
	require.Len(t, row, 12)
	assert.Equal(t, "EDR", row[0])
	assert.Equal(t, "EMPL0001234", row[1])
	assert.Equal(t, "026", row[2])
	assert.Equal(t, "EMP001", row[3])
	assert.Equal(t, emp.BankAccountNumber, row[4])
	assert.Equal(t, "20250101", row[5])
	assert.Equal(t, "20250131", row[6])
	assert.Equal(t, "31", row[7])
	assert.Equal(t, "22000.00", row[8])
	assert.Equal(t, "6500.00", row[9])
	assert.Equal(t, "500.00", row[10])
	assert.Equal(t, "0.00", row[11])
}

func TestGenerateSIF_DaysWorkedNetOfUnpaidLeave(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	inputs := PeriodInputs{
		LeaveRequests: []leave.Request{
			fixtures.NewUnpaidLeave(emp.ID, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 3),
		},
	}
	run := approvedRun(t, []employee.Employee{emp}, 2, 2025, inputs)

	svc := NewService()
	out, err := svc.GenerateSIF(run, "EMPL0001234")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// February 2025 has 28 days; 3 unpaid leave days leave 25 worked.
	assert.Equal(t, "20250201", records[1][5])
	assert.Equal(t, "20250228", records[1][6])
	assert.Equal(t, "25", records[1][7])
	assert.NotEqual(t, "0.00", records[1][11])
}

func TestGenerateSIF_RequiresApprovedRun(t *testing.T) {
	t.Parallel()

	emp := fixtures.NewEmployee("EMP001", "Aisha Rahman")
	svc := NewService()

	run, err := svc.GenerateRun([]employee.Employee{emp}, 1, 2025, PeriodInputs{})
	require.NoError(t, err)

	_, err = svc.GenerateSIF(run, "EMPL0001234")
	assert.ErrorIs(t, err, payroll.ErrRunNotApproved)
}

func TestGenerateSIF_RejectsEmptyRun(t *testing.T) {
	t.Parallel()

	run := approvedRun(t, nil, 1, 2025, PeriodInputs{})
	// An empty run can still be approved; SIF generation is where it fails.

	svc := NewService()
	_, err := svc.GenerateSIF(run, "EMPL0001234")
	assert.ErrorIs(t, err, payroll.ErrEmptyRun)
}

func TestSIFFileName(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 31, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "EMPL0001234_250131140509.SIF", SIFFileName("EMPL0001234", at))
}
