package loan

import (
	"context"
	"errors"
	"time"

	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
)

type LoanServiceImpl struct {
	loanRepo     loan.LoanRepository
	employeeRepo employee.EmployeeRepository
}

func NewLoanService(loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository) loan.LoanService {
	return &LoanServiceImpl{loanRepo: loanRepo, employeeRepo: employeeRepo}
}

func (s *LoanServiceImpl) Create(ctx context.Context, req loan.CreateLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return loan.LoanResponse{}, loan.ErrEmployeeNotFound
		}
		return loan.LoanResponse{}, err
	}

	created, err := s.loanRepo.Create(ctx, loan.Loan{
		EmployeeID:   req.EmployeeID,
		Amount:       req.Amount,
		Reason:       req.Reason,
		Term:         loan.Term(req.Term),
		Installments: req.Installments,
		Status:       loan.StatusPendiente,
		RequestDate:  time.Now(),
		Signature:    req.Signature,
	})
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return loan.ToResponse(created), nil
}

func (s *LoanServiceImpl) Get(ctx context.Context, id string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	return loan.ToResponse(l), nil
}

func (s *LoanServiceImpl) List(ctx context.Context, filter loan.ListFilter) ([]loan.LoanResponse, error) {
	loans, err := s.loanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		result = append(result, loan.ToResponse(l))
	}
	return result, nil
}

// Approve moves a pending loan to Aprobado, recording the approver and
// approval date. From that point the loan is deducted from payroll.
func (s *LoanServiceImpl) Approve(ctx context.Context, id string, approvedByID string) (loan.LoanResponse, error) {
	return s.decide(ctx, id, approvedByID, loan.StatusAprobado)
}

func (s *LoanServiceImpl) Reject(ctx context.Context, id string, rejectedByID string) (loan.LoanResponse, error) {
	return s.decide(ctx, id, rejectedByID, loan.StatusRechazado)
}

func (s *LoanServiceImpl) decide(ctx context.Context, id string, decidedByID string, status loan.Status) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if l.Status != loan.StatusPendiente {
		return loan.LoanResponse{}, loan.ErrLoanAlreadyProcessed
	}

	now := time.Now()
	updated, err := s.loanRepo.SetStatus(ctx, id, status, &decidedByID, &now)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return loan.ToResponse(updated), nil
}

// MarkPaid settles an approved loan so it stops being deducted.
func (s *LoanServiceImpl) MarkPaid(ctx context.Context, id string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if l.Status != loan.StatusAprobado {
		return loan.LoanResponse{}, loan.ErrLoanNotApproved
	}

	updated, err := s.loanRepo.SetStatus(ctx, id, loan.StatusPagado, nil, nil)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	return loan.ToResponse(updated), nil
}
