package payroll

import (
	"github.com/guardian-payroll/backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculatePayrollRequest struct {
	// Date is any calendar date inside the target month, YYYY-MM-DD.
	Date   string `json:"date"`
	Period string `json:"period"`
}

func (r *CalculatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !Period(r.Period).Valid() {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be '1-15' or '16-end'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollDetailResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	ShiftsWorked   int             `json:"shifts_worked"`
	LateArrivals   int             `json:"late_arrivals"`
	BasePay        decimal.Decimal `json:"base_pay"`
	LoanDeductions decimal.Decimal `json:"loan_deductions"`
	Penalties      decimal.Decimal `json:"penalties"`
	Bonuses        decimal.Decimal `json:"bonuses"`
	NetPay         decimal.Decimal `json:"net_pay"`
}

type PayrollSummaryResponse struct {
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
	TotalEmployees  int             `json:"total_employees"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalPenalties  decimal.Decimal `json:"total_penalties"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
}

type CalculatePayrollResponse struct {
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	Details   []PayrollDetailResponse `json:"details"`
	Summary   PayrollSummaryResponse  `json:"summary"`
}

func ToDetailResponse(d PayrollDetail) PayrollDetailResponse {
	return PayrollDetailResponse{
		EmployeeID:     d.EmployeeID,
		EmployeeName:   d.EmployeeName,
		ShiftsWorked:   d.ShiftsWorked,
		LateArrivals:   d.LateArrivals,
		BasePay:        d.BasePay,
		LoanDeductions: d.LoanDeductions,
		Penalties:      d.Penalties,
		Bonuses:        d.Bonuses,
		NetPay:         d.NetPay,
	}
}

func ToSummaryResponse(s PayrollSummary) PayrollSummaryResponse {
	return PayrollSummaryResponse{
		TotalNetPay:     s.TotalNetPay,
		TotalEmployees:  s.TotalEmployees,
		TotalDeductions: s.TotalDeductions,
		TotalPenalties:  s.TotalPenalties,
		TotalBonuses:    s.TotalBonuses,
	}
}
