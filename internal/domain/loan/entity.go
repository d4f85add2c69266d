package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a salary-advance request. Only loans in StatusAprobado are
// deducted from payroll.
type Loan struct {
	ID           string
	EmployeeID   string
	Amount       decimal.Decimal
	Reason       string
	Term         Term
	Installments int
	Status       Status
	RequestDate  time.Time
	ApprovalDate *time.Time
	ApprovedByID *string
	// Signature is the requester's signature image as a data URL,
	// carried opaquely.
	Signature string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Term string

const (
	// TermUnica is repaid with a single full deduction.
	TermUnica Term = "única"
	// TermQuincenal is repaid in equal installments, one per pay period.
	TermQuincenal Term = "quincenal"
)

func (t Term) Valid() bool {
	return t == TermUnica || t == TermQuincenal
}

type Status string

const (
	StatusPendiente Status = "Pendiente"
	StatusAprobado  Status = "Aprobado"
	StatusRechazado Status = "Rechazado"
	StatusPagado    Status = "Pagado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendiente, StatusAprobado, StatusRechazado, StatusPagado:
		return true
	}
	return false
}
