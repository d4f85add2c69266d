package loan

import (
	"context"
	"testing"

	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
	"github.com/guardian-payroll/backend-go/internal/pkg/validator"
	"github.com/guardian-payroll/backend-go/internal/repository/inmemory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoanFixture(t *testing.T) (loan.LoanService, employee.Employee) {
	t.Helper()

	employeeRepo := inmemory.NewEmployeeRepository()
	loanRepo := inmemory.NewLoanRepository()

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		FullName:  "Juan Pérez",
		Email:     "juan@example.com",
		Role:      employee.RoleGuardia,
		ShiftRate: decimal.NewFromInt(600),
	})
	require.NoError(t, err)

	return NewLoanService(loanRepo, employeeRepo), emp
}

func validRequest(employeeID string) loan.CreateLoanRequest {
	return loan.CreateLoanRequest{
		EmployeeID:   employeeID,
		Amount:       decimal.NewFromInt(1000),
		Reason:       "Gastos médicos",
		Term:         string(loan.TermQuincenal),
		Installments: 4,
		Signature:    "data:image/png;base64,iVBOR",
	}
}

func TestLoanService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new loans start pending", func(t *testing.T) {
		svc, emp := newLoanFixture(t)

		created, err := svc.Create(ctx, validRequest(emp.ID))
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, emp.ID, created.EmployeeID)
		assert.Equal(t, string(loan.StatusPendiente), created.Status)
		assert.NotEmpty(t, created.RequestDate)
		assert.Nil(t, created.ApprovalDate)
		assert.Nil(t, created.ApprovedByID)
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		svc, _ := newLoanFixture(t)

		_, err := svc.Create(ctx, validRequest("missing-id"))
		assert.ErrorIs(t, err, loan.ErrEmployeeNotFound)
	})

	t.Run("invalid request fails validation", func(t *testing.T) {
		svc, emp := newLoanFixture(t)

		tests := []struct {
			name   string
			mutate func(*loan.CreateLoanRequest)
		}{
			{"zero amount", func(r *loan.CreateLoanRequest) { r.Amount = decimal.Zero }},
			{"negative amount", func(r *loan.CreateLoanRequest) { r.Amount = decimal.NewFromInt(-100) }},
			{"missing reason", func(r *loan.CreateLoanRequest) { r.Reason = "" }},
			{"unknown term", func(r *loan.CreateLoanRequest) { r.Term = "mensual" }},
			{"quincenal with one installment", func(r *loan.CreateLoanRequest) { r.Installments = 1 }},
			{"missing signature", func(r *loan.CreateLoanRequest) { r.Signature = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest(emp.ID)
				tt.mutate(&req)

				_, err := svc.Create(ctx, req)
				var verrs validator.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
			})
		}
	})
}

func TestLoanService_Decisions(t *testing.T) {
	ctx := context.Background()

	t.Run("approve records approver and date", func(t *testing.T) {
		svc, emp := newLoanFixture(t)
		created, err := svc.Create(ctx, validRequest(emp.ID))
		require.NoError(t, err)

		approved, err := svc.Approve(ctx, created.ID, "director-id")
		require.NoError(t, err)

		assert.Equal(t, string(loan.StatusAprobado), approved.Status)
		require.NotNil(t, approved.ApprovedByID)
		assert.Equal(t, "director-id", *approved.ApprovedByID)
		assert.NotNil(t, approved.ApprovalDate)
	})

	t.Run("reject is final", func(t *testing.T) {
		svc, emp := newLoanFixture(t)
		created, err := svc.Create(ctx, validRequest(emp.ID))
		require.NoError(t, err)

		rejected, err := svc.Reject(ctx, created.ID, "director-id")
		require.NoError(t, err)
		assert.Equal(t, string(loan.StatusRechazado), rejected.Status)

		_, err = svc.Approve(ctx, created.ID, "director-id")
		assert.ErrorIs(t, err, loan.ErrLoanAlreadyProcessed)
	})

	t.Run("a loan cannot be decided twice", func(t *testing.T) {
		svc, emp := newLoanFixture(t)
		created, err := svc.Create(ctx, validRequest(emp.ID))
		require.NoError(t, err)

		_, err = svc.Approve(ctx, created.ID, "director-id")
		require.NoError(t, err)

		_, err = svc.Approve(ctx, created.ID, "director-id")
		assert.ErrorIs(t, err, loan.ErrLoanAlreadyProcessed)
		_, err = svc.Reject(ctx, created.ID, "director-id")
		assert.ErrorIs(t, err, loan.ErrLoanAlreadyProcessed)
	})

	t.Run("deciding a missing loan fails", func(t *testing.T) {
		svc, _ := newLoanFixture(t)

		_, err := svc.Approve(ctx, "missing-id", "director-id")
		assert.ErrorIs(t, err, loan.ErrLoanNotFound)
	})
}

func TestLoanService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("approved loan can be settled", func(t *testing.T) {
		svc, emp := newLoanFixture(t)
		created, err := svc.Create(ctx, validRequest(emp.ID))
		require.NoError(t, err)
		_, err = svc.Approve(ctx, created.ID, "director-id")
		require.NoError(t, err)

		paid, err := svc.MarkPaid(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, string(loan.StatusPagado), paid.Status)
	})

	t.Run("pending loan cannot be settled", func(t *testing.T) {
		svc, emp := newLoanFixture(t)
		created, err := svc.Create(ctx, validRequest(emp.ID))
		require.NoError(t, err)

		_, err = svc.MarkPaid(ctx, created.ID)
		assert.ErrorIs(t, err, loan.ErrLoanNotApproved)
	})
}
