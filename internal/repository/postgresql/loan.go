package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
	"github.com/guardian-payroll/backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

const loanColumns = `id, employee_id, amount, reason, term, installments, status, request_date, approval_date, approved_by_id, signature, created_at, updated_at`

func scanLoan(row pgx.Row) (loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Amount, &l.Reason, &l.Term, &l.Installments,
		&l.Status, &l.RequestDate, &l.ApprovalDate, &l.ApprovedByID,
		&l.Signature, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *loanRepositoryImpl) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loan_requests (id, employee_id, amount, reason, term, installments, status, request_date, signature)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + loanColumns

	created, err := scanLoan(q.QueryRow(ctx, query,
		uuid.NewString(), l.EmployeeID, l.Amount, l.Reason, l.Term,
		l.Installments, l.Status, l.RequestDate, l.Signature,
	))
	if err != nil {
		return loan.Loan{}, fmt.Errorf("failed to create loan request: %w", err)
	}

	return created, nil
}

func (r *loanRepositoryImpl) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loan_requests
		WHERE id = $1
	`

	l, err := scanLoan(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("failed to get loan request: %w", err)
	}

	return l, nil
}

func (r *loanRepositoryImpl) List(ctx context.Context, filter loan.ListFilter) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loan_requests
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	query += " ORDER BY request_date DESC, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loans, nil
}

func (r *loanRepositoryImpl) SetStatus(ctx context.Context, id string, status loan.Status, approvedByID *string, approvalDate *time.Time) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loan_requests
		SET status = $1,
			approved_by_id = COALESCE($2, approved_by_id),
			approval_date = COALESCE($3, approval_date),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + loanColumns

	updated, err := scanLoan(q.QueryRow(ctx, query, status, approvedByID, approvalDate, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("failed to update loan status: %w", err)
	}

	return updated, nil
}
