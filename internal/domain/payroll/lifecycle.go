package payroll

import "time"

// Approve moves a calculated run to approved, stamping every entry. The
// returned run is a fresh value; approval is all-or-nothing across entries.
func (r Run) Approve(approvedBy string, at time.Time) (Run, error) {
	if r.Status != RunStatusCalculated {
		return Run{}, ErrRunNotCalculated
	}

	entries := make([]Entry, len(r.Entries))
	for i, e := range r.Entries {
		e.Status = EntryStatusApproved
		e.ApprovedBy = &approvedBy
		e.ApprovedAt = &at
		entries[i] = e
	}

	r.Entries = entries
	r.Status = RunStatusApproved
	r.ApprovedBy = &approvedBy
	r.ApprovedAt = &at
	return r, nil
}

// MarkWPSGenerated records that the SIF file was produced for this run.
// Permitted only once the run is approved; the run status itself does not
// change.
func (r Run) MarkWPSGenerated(at time.Time) (Run, error) {
	if r.Status != RunStatusApproved {
		return Run{}, ErrRunNotApproved
	}

	r.WPSGenerated = true
	r.WPSGeneratedAt = &at
	return r, nil
}

// MarkPaid closes the run. Requires an approved run whose WPS file has
// been generated.
func (r Run) MarkPaid(at time.Time) (Run, error) {
	if r.Status == RunStatusPaid {
		return Run{}, ErrRunAlreadyPaid
	}
	if r.Status != RunStatusApproved {
		return Run{}, ErrRunNotApproved
	}
	if !r.WPSGenerated {
		return Run{}, ErrWPSNotGenerated
	}

	entries := make([]Entry, len(r.Entries))
	for i, e := range r.Entries {
		e.Status = EntryStatusPaid
		e.PaidAt = &at
		entries[i] = e
	}

	r.Entries = entries
	r.Status = RunStatusPaid
	r.PaidAt = &at
	return r, nil
}
