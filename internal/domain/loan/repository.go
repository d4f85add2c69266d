package loan

import (
	"context"
	"time"
)

type LoanRepository interface {
	Create(ctx context.Context, l Loan) (Loan, error)
	GetByID(ctx context.Context, id string) (Loan, error)
	List(ctx context.Context, filter ListFilter) ([]Loan, error)
	// SetStatus moves the loan to a new status, recording the approver
	// and approval date when given.
	SetStatus(ctx context.Context, id string, status Status, approvedByID *string, approvalDate *time.Time) (Loan, error)
}
