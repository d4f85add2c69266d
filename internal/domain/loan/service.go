package loan

import "context"

type LoanService interface {
	Create(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	Get(ctx context.Context, id string) (LoanResponse, error)
	List(ctx context.Context, filter ListFilter) ([]LoanResponse, error)
	Approve(ctx context.Context, id string, approvedByID string) (LoanResponse, error)
	Reject(ctx context.Context, id string, rejectedByID string) (LoanResponse, error)
	MarkPaid(ctx context.Context, id string) (LoanResponse, error)
}
