package payroll

import "errors"

var (
	ErrRunNotCalculated = errors.New("payroll run must be in calculated status to approve")
	ErrRunNotApproved   = errors.New("payroll run must be approved before WPS generation")
	ErrWPSNotGenerated  = errors.New("WPS file must be generated before marking run as paid")
	ErrRunAlreadyPaid   = errors.New("payroll run already paid")
	ErrEmptyRun         = errors.New("payroll run has no entries")
)
