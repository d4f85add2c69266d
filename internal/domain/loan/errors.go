package loan

import "errors"

var (
	ErrLoanNotFound         = errors.New("loan request not found")
	ErrLoanAlreadyProcessed = errors.New("loan request already processed")
	ErrLoanNotApproved      = errors.New("loan request is not approved")
	ErrEmployeeNotFound     = errors.New("employee not found")
)
