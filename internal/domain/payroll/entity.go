package payroll

import "github.com/shopspring/decimal"

// Period selects one half of a month as the pay cycle.
type Period string

const (
	// PeriodFirstHalf covers days 1 through 15.
	PeriodFirstHalf Period = "1-15"
	// PeriodSecondHalf covers day 16 through the last day of the month.
	PeriodSecondHalf Period = "16-end"
)

func (p Period) Valid() bool {
	return p == PeriodFirstHalf || p == PeriodSecondHalf
}

// PayrollDetail is one employee's pay breakdown for a period. Details are
// computed on demand and never persisted.
type PayrollDetail struct {
	EmployeeID     string
	EmployeeName   string
	ShiftsWorked   int
	LateArrivals   int
	BasePay        decimal.Decimal
	LoanDeductions decimal.Decimal
	Penalties      decimal.Decimal
	Bonuses        decimal.Decimal
	NetPay         decimal.Decimal
}

// PayrollSummary aggregates a period's details. TotalEmployees counts only
// employees whose net pay is strictly positive.
type PayrollSummary struct {
	TotalNetPay     decimal.Decimal
	TotalEmployees  int
	TotalDeductions decimal.Decimal
	TotalPenalties  decimal.Decimal
	TotalBonuses    decimal.Decimal
}
