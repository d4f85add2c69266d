package loan

import (
	"github.com/guardian-payroll/backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLoanRequest struct {
	EmployeeID   string          `json:"employee_id"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	Term         string          `json:"term"`
	Installments int             `json:"installments"`
	Signature    string          `json:"signature"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if !Term(r.Term).Valid() {
		errs = append(errs, validator.ValidationError{Field: "term", Message: "must be 'única' or 'quincenal'"})
	}
	if r.Installments < 1 {
		errs = append(errs, validator.ValidationError{Field: "installments", Message: "must be at least 1"})
	}
	if Term(r.Term) == TermQuincenal && r.Installments < 2 {
		errs = append(errs, validator.ValidationError{Field: "installments", Message: "must be at least 2 for quincenal loans"})
	}
	if validator.IsEmpty(r.Signature) {
		errs = append(errs, validator.ValidationError{Field: "signature", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows a listing to one employee and/or one status.
type ListFilter struct {
	EmployeeID *string
	Status     *Status
}

type LoanResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	Term         string          `json:"term"`
	Installments int             `json:"installments"`
	Status       string          `json:"status"`
	RequestDate  string          `json:"request_date"`
	ApprovalDate *string         `json:"approval_date,omitempty"`
	ApprovedByID *string         `json:"approved_by_id,omitempty"`
	Signature    string          `json:"signature"`
}

func ToResponse(l Loan) LoanResponse {
	var approvalDate *string
	if l.ApprovalDate != nil {
		str := l.ApprovalDate.Format("2006-01-02")
		approvalDate = &str
	}

	return LoanResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		Amount:       l.Amount,
		Reason:       l.Reason,
		Term:         string(l.Term),
		Installments: l.Installments,
		Status:       string(l.Status),
		RequestDate:  l.RequestDate.Format("2006-01-02"),
		ApprovalDate: approvalDate,
		ApprovedByID: l.ApprovedByID,
		Signature:    l.Signature,
	}
}
