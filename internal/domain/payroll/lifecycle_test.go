package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculatedRun() Run {
	return Run{
		ID:     "run-1",
		Month:  1,
		Year:   2025,
		Status: RunStatusCalculated,
		Entries: []Entry{
			{ID: "entry-1", EmployeeCode: "EMP001", Status: EntryStatusCalculated},
			{ID: "entry-2", EmployeeCode: "EMP002", Status: EntryStatusCalculated},
		},
		EmployeeCount: 2,
	}
}

func TestRunLifecycle_HappyPath(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	run := calculatedRun()

	approved, err := run.Approve("hr-manager", now)
	require.NoError(t, err)
	assert.Equal(t, RunStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "hr-manager", *approved.ApprovedBy)
	for _, e := range approved.Entries {
		assert.Equal(t, EntryStatusApproved, e.Status)
		require.NotNil(t, e.ApprovedAt)
		assert.Equal(t, now, *e.ApprovedAt)
	}

	generated, err := approved.MarkWPSGenerated(now)
	require.NoError(t, err)
	assert.True(t, generated.WPSGenerated)
	assert.Equal(t, RunStatusApproved, generated.Status)

	paid, err := generated.MarkPaid(now)
	require.NoError(t, err)
	assert.Equal(t, RunStatusPaid, paid.Status)
	for _, e := range paid.Entries {
		assert.Equal(t, EntryStatusPaid, e.Status)
		require.NotNil(t, e.PaidAt)
	}
}

func TestRunLifecycle_ApproveIsOneWay(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	approved, err := calculatedRun().Approve("hr-manager", now)
	require.NoError(t, err)

	_, err = approved.Approve("hr-manager", now)
	assert.ErrorIs(t, err, ErrRunNotCalculated)
}

func TestRunLifecycle_WPSRequiresApproval(t *testing.T) {
	t.Parallel()

	_, err := calculatedRun().MarkWPSGenerated(time.Now().UTC())
	assert.ErrorIs(t, err, ErrRunNotApproved)
}

func TestRunLifecycle_PaidRequiresWPS(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	_, err := calculatedRun().MarkPaid(now)
	assert.ErrorIs(t, err, ErrRunNotApproved)

	approved, err := calculatedRun().Approve("hr-manager", now)
	require.NoError(t, err)

	_, err = approved.MarkPaid(now)
	assert.ErrorIs(t, err, ErrWPSNotGenerated)
}

func TestRunLifecycle_PaidIsTerminal(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	run, err := calculatedRun().Approve("hr-manager", now)
	require.NoError(t, err)
	run, err = run.MarkWPSGenerated(now)
	require.NoError(t, err)
	run, err = run.MarkPaid(now)
	require.NoError(t, err)

	_, err = run.MarkPaid(now)
	assert.ErrorIs(t, err, ErrRunAlreadyPaid)

	_, err = run.Approve("hr-manager", now)
	assert.ErrorIs(t, err, ErrRunNotCalculated)
}

func TestRunLifecycle_TransitionsDoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	run := calculatedRun()
	_, err := run.Approve("hr-manager", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, RunStatusCalculated, run.Status)
	assert.Equal(t, EntryStatusCalculated, run.Entries[0].Status)
}
