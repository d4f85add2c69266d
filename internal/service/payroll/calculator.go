package payroll

import (
	"time"

	"github.com/guardian-payroll/backend-go/internal/domain/attendance"
	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
	"github.com/guardian-payroll/backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// lateArrivalThreshold is the number of Retardo shifts in a period at which
// the penalty applies.
const lateArrivalThreshold = 3

// penaltyFactor is the fraction of one shift rate charged as the penalty.
// The penalty is flat: it does not scale with lates beyond the threshold.
var penaltyFactor = decimal.NewFromFloat(0.5)

// ResolvePeriod returns the inclusive start and end dates of the pay period
// that contains the reference date. The first half is always days 1-15; the
// second half runs from day 16 through the last day of the month.
func ResolvePeriod(reference time.Time, period payroll.Period) (start, end time.Time) {
	year, month, _ := reference.Date()
	loc := reference.Location()

	if period == payroll.PeriodFirstHalf {
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month, 15, 0, 0, 0, 0, loc)
		return start, end
	}

	// Day 0 of the next month is the last day of this one.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	start = time.Date(year, month, 16, 0, 0, 0, 0, loc)
	end = time.Date(year, month, lastDay, 0, 0, 0, 0, loc)
	return start, end
}

// AggregateAttendance counts an employee's worked and late shifts inside the
// inclusive date range. Day and night shifts on the same calendar day count
// independently. A day with no record contributes to no counter.
func AggregateAttendance(records []attendance.Attendance, start, end time.Time) (shiftsWorked, lateArrivals int) {
	startKey := start.Format(attendance.DateLayout)
	endKey := end.Format(attendance.DateLayout)

	for _, rec := range records {
		key := rec.DateKey()
		if key < startKey || key > endKey {
			continue
		}
		switch rec.Status {
		case attendance.StatusAsistencia:
			shiftsWorked++
		case attendance.StatusRetardo:
			lateArrivals++
		}
	}
	return shiftsWorked, lateArrivals
}

// PeriodDeduction returns the amount one loan takes out of a single pay
// period: the full amount for a única loan, one installment's worth for a
// quincenal loan. A quincenal loan with no positive installment count
// deducts nothing rather than dividing by zero.
func PeriodDeduction(l loan.Loan) decimal.Decimal {
	switch l.Term {
	case loan.TermQuincenal:
		if l.Installments <= 0 {
			return decimal.Zero
		}
		return l.Amount.Div(decimal.NewFromInt(int64(l.Installments)))
	case loan.TermUnica:
		return l.Amount
	}
	return decimal.Zero
}

// CalculateDetail builds one employee's pay breakdown from aggregated shift
// counts and the employee's approved loans. When several approved loans
// exist their per-period deductions are summed. Net pay is not floored at
// zero: deductions larger than base pay produce a negative result.
func CalculateDetail(emp employee.Employee, shiftsWorked, lateArrivals int, activeLoans []loan.Loan) payroll.PayrollDetail {
	basePay := emp.ShiftRate.Mul(decimal.NewFromInt(int64(shiftsWorked)))

	loanDeductions := decimal.Zero
	for _, l := range activeLoans {
		if l.Status != loan.StatusAprobado {
			continue
		}
		loanDeductions = loanDeductions.Add(PeriodDeduction(l))
	}

	penalties := decimal.Zero
	if lateArrivals >= lateArrivalThreshold {
		penalties = emp.ShiftRate.Mul(penaltyFactor)
	}

	// Reserved for future bonus rules.
	bonuses := decimal.Zero

	netPay := basePay.Sub(loanDeductions).Sub(penalties).Add(bonuses)

	return payroll.PayrollDetail{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName,
		ShiftsWorked:   shiftsWorked,
		LateArrivals:   lateArrivals,
		BasePay:        basePay,
		LoanDeductions: loanDeductions,
		Penalties:      penalties,
		Bonuses:        bonuses,
		NetPay:         netPay,
	}
}

// Summarize folds a period's details into the dashboard totals. Only
// employees with strictly positive net pay count toward TotalEmployees.
func Summarize(details []payroll.PayrollDetail) payroll.PayrollSummary {
	summary := payroll.PayrollSummary{
		TotalNetPay:     decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalPenalties:  decimal.Zero,
		TotalBonuses:    decimal.Zero,
	}

	for _, d := range details {
		summary.TotalNetPay = summary.TotalNetPay.Add(d.NetPay)
		summary.TotalDeductions = summary.TotalDeductions.Add(d.LoanDeductions)
		summary.TotalPenalties = summary.TotalPenalties.Add(d.Penalties)
		summary.TotalBonuses = summary.TotalBonuses.Add(d.Bonuses)
		if d.NetPay.IsPositive() {
			summary.TotalEmployees++
		}
	}
	return summary
}
