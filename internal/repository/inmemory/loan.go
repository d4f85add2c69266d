package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
)

type loanRepository struct {
	mu    sync.RWMutex
	loans map[string]loan.Loan
}

func NewLoanRepository() loan.LoanRepository {
	return &loanRepository{loans: make(map[string]loan.Loan)}
}

func (r *loanRepository) Create(_ context.Context, l loan.Loan) (loan.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	r.loans[l.ID] = l
	return l, nil
}

func (r *loanRepository) GetByID(_ context.Context, id string) (loan.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.loans[id]
	if !ok {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	return l, nil
}

func (r *loanRepository) List(_ context.Context, filter loan.ListFilter) ([]loan.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var loans []loan.Loan
	for _, l := range r.loans {
		if filter.EmployeeID != nil && l.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && l.Status != *filter.Status {
			continue
		}
		loans = append(loans, l)
	}

	sort.Slice(loans, func(i, j int) bool {
		if !loans[i].RequestDate.Equal(loans[j].RequestDate) {
			return loans[i].RequestDate.After(loans[j].RequestDate)
		}
		return loans[i].ID < loans[j].ID
	})
	return loans, nil
}

func (r *loanRepository) SetStatus(_ context.Context, id string, status loan.Status, approvedByID *string, approvalDate *time.Time) (loan.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.loans[id]
	if !ok {
		return loan.Loan{}, loan.ErrLoanNotFound
	}

	l.Status = status
	if approvedByID != nil {
		l.ApprovedByID = approvedByID
	}
	if approvalDate != nil {
		l.ApprovalDate = approvalDate
	}
	l.UpdatedAt = time.Now()
	r.loans[id] = l
	return l, nil
}
