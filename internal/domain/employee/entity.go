package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                 string
	EmployeeCode       string
	FullName           string
	Position           *string
	JoinDate           time.Time
	ContractType       ContractType
	EmploymentStatus   EmploymentStatus
	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherAllowance     decimal.Decimal
	BankName           string
	BankAccountNumber  string
	IBAN               string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TotalSalary is the full monthly package, basic plus all allowances.
func (e Employee) TotalSalary() decimal.Decimal {
	return e.BasicSalary.
		Add(e.HousingAllowance).
		Add(e.TransportAllowance).
		Add(e.OtherAllowance)
}

type ContractType string

const (
	ContractTypeLimited   ContractType = "limited"
	ContractTypeUnlimited ContractType = "unlimited"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
