package leave

import "time"

type Request struct {
	ID         string
	EmployeeID string
	Type       Type
	Status     Status
	StartDate  time.Time
	EndDate    time.Time
	TotalDays  int
	Reason     *string
	CreatedAt  time.Time
}

type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeMaternity Type = "maternity"
	TypeParental  Type = "parental"
	TypeUnpaid    Type = "unpaid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)
