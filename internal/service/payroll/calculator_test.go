package payroll

import (
	"testing"
	"time"

	"github.com/guardian-payroll/backend-go/internal/domain/attendance"
	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
	"github.com/guardian-payroll/backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(attendance.DateLayout, value)
	require.NoError(t, err)
	return parsed
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual.String())
}

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name          string
		reference     string
		period        payroll.Period
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "first half is always days 1 through 15",
			reference:     "2025-03-10",
			period:        payroll.PeriodFirstHalf,
			expectedStart: "2025-03-01",
			expectedEnd:   "2025-03-15",
		},
		{
			name:          "first half of february",
			reference:     "2025-02-28",
			period:        payroll.PeriodFirstHalf,
			expectedStart: "2025-02-01",
			expectedEnd:   "2025-02-15",
		},
		{
			name:          "second half of a 31-day month",
			reference:     "2025-01-20",
			period:        payroll.PeriodSecondHalf,
			expectedStart: "2025-01-16",
			expectedEnd:   "2025-01-31",
		},
		{
			name:          "second half of a 30-day month",
			reference:     "2025-04-01",
			period:        payroll.PeriodSecondHalf,
			expectedStart: "2025-04-16",
			expectedEnd:   "2025-04-30",
		},
		{
			name:          "second half of february in a common year",
			reference:     "2025-02-05",
			period:        payroll.PeriodSecondHalf,
			expectedStart: "2025-02-16",
			expectedEnd:   "2025-02-28",
		},
		{
			name:          "second half of february in a leap year",
			reference:     "2024-02-05",
			period:        payroll.PeriodSecondHalf,
			expectedStart: "2024-02-16",
			expectedEnd:   "2024-02-29",
		},
		{
			name:          "reference day inside the month does not shift the bounds",
			reference:     "2025-01-31",
			period:        payroll.PeriodSecondHalf,
			expectedStart: "2025-01-16",
			expectedEnd:   "2025-01-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolvePeriod(mustDate(t, tt.reference), tt.period)
			assert.Equal(t, tt.expectedStart, start.Format(attendance.DateLayout))
			assert.Equal(t, tt.expectedEnd, end.Format(attendance.DateLayout))
		})
	}
}

func TestAggregateAttendance(t *testing.T) {
	record := func(date string, shift attendance.Shift, status attendance.Status) attendance.Attendance {
		return attendance.Attendance{
			EmployeeID: "emp-1",
			Date:       mustDate(t, date),
			Shift:      shift,
			Status:     status,
		}
	}

	start := mustDate(t, "2025-03-01")
	end := mustDate(t, "2025-03-15")

	t.Run("day and night shifts on the same date count separately", func(t *testing.T) {
		records := []attendance.Attendance{
			record("2025-03-04", attendance.ShiftDay, attendance.StatusAsistencia),
			record("2025-03-04", attendance.ShiftNight, attendance.StatusAsistencia),
		}

		worked, lates := AggregateAttendance(records, start, end)
		assert.Equal(t, 2, worked)
		assert.Equal(t, 0, lates)
	})

	t.Run("boundary days are inclusive and neighbors are excluded", func(t *testing.T) {
		records := []attendance.Attendance{
			record("2025-02-28", attendance.ShiftDay, attendance.StatusAsistencia),
			record("2025-03-01", attendance.ShiftDay, attendance.StatusAsistencia),
			record("2025-03-15", attendance.ShiftDay, attendance.StatusAsistencia),
			record("2025-03-16", attendance.ShiftDay, attendance.StatusAsistencia),
		}

		worked, lates := AggregateAttendance(records, start, end)
		assert.Equal(t, 2, worked)
		assert.Equal(t, 0, lates)
	})

	t.Run("only asistencia and retardo move the counters", func(t *testing.T) {
		records := []attendance.Attendance{
			record("2025-03-03", attendance.ShiftDay, attendance.StatusAsistencia),
			record("2025-03-04", attendance.ShiftDay, attendance.StatusRetardo),
			record("2025-03-05", attendance.ShiftDay, attendance.StatusFalta),
			record("2025-03-06", attendance.ShiftDay, attendance.StatusDescanso),
			record("2025-03-07", attendance.ShiftDay, attendance.StatusVacaciones),
			record("2025-03-08", attendance.ShiftDay, attendance.StatusIncapacidad),
		}

		worked, lates := AggregateAttendance(records, start, end)
		assert.Equal(t, 1, worked)
		assert.Equal(t, 1, lates)
	})

	t.Run("no records yields zero counts", func(t *testing.T) {
		worked, lates := AggregateAttendance(nil, start, end)
		assert.Equal(t, 0, worked)
		assert.Equal(t, 0, lates)
	})
}

func TestPeriodDeduction(t *testing.T) {
	t.Run("única deducts the full amount", func(t *testing.T) {
		l := loan.Loan{Term: loan.TermUnica, Amount: decimal.NewFromInt(800), Installments: 1}
		assertDecimal(t, "800", PeriodDeduction(l))
	})

	t.Run("quincenal deducts one installment", func(t *testing.T) {
		l := loan.Loan{Term: loan.TermQuincenal, Amount: decimal.NewFromInt(1000), Installments: 4}
		assertDecimal(t, "250", PeriodDeduction(l))
	})

	t.Run("quincenal with zero installments deducts nothing", func(t *testing.T) {
		l := loan.Loan{Term: loan.TermQuincenal, Amount: decimal.NewFromInt(1000), Installments: 0}
		assertDecimal(t, "0", PeriodDeduction(l))
	})

	t.Run("quincenal with negative installments deducts nothing", func(t *testing.T) {
		l := loan.Loan{Term: loan.TermQuincenal, Amount: decimal.NewFromInt(1000), Installments: -2}
		assertDecimal(t, "0", PeriodDeduction(l))
	})
}

func TestCalculateDetail(t *testing.T) {
	guard := employee.Employee{
		ID:        "emp-1",
		FullName:  "Juan Pérez",
		Role:      employee.RoleGuardia,
		ShiftRate: decimal.NewFromInt(600),
	}

	t.Run("base pay scales linearly with shifts worked", func(t *testing.T) {
		for shifts, expected := range map[int]string{0: "0", 1: "600", 7: "4200", 15: "9000"} {
			detail := CalculateDetail(guard, shifts, 0, nil)
			assertDecimal(t, expected, detail.BasePay)
			assertDecimal(t, expected, detail.NetPay)
		}
	})

	t.Run("penalty is a step function of late arrivals", func(t *testing.T) {
		tests := []struct {
			lates           int
			expectedPenalty string
		}{
			{0, "0"},
			{1, "0"},
			{2, "0"},
			{3, "300"},
			{4, "300"},
			{100, "300"},
		}

		for _, tt := range tests {
			detail := CalculateDetail(guard, 10, tt.lates, nil)
			assertDecimal(t, tt.expectedPenalty, detail.Penalties)
		}
	})

	t.Run("only approved loans are deducted", func(t *testing.T) {
		loans := []loan.Loan{
			{Term: loan.TermUnica, Amount: decimal.NewFromInt(500), Status: loan.StatusAprobado},
			{Term: loan.TermUnica, Amount: decimal.NewFromInt(900), Status: loan.StatusPendiente},
			{Term: loan.TermUnica, Amount: decimal.NewFromInt(900), Status: loan.StatusRechazado},
			{Term: loan.TermUnica, Amount: decimal.NewFromInt(900), Status: loan.StatusPagado},
		}

		detail := CalculateDetail(guard, 10, 0, loans)
		assertDecimal(t, "500", detail.LoanDeductions)
		assertDecimal(t, "5500", detail.NetPay)
	})

	t.Run("multiple approved loans are summed", func(t *testing.T) {
		loans := []loan.Loan{
			{Term: loan.TermUnica, Amount: decimal.NewFromInt(500), Status: loan.StatusAprobado},
			{Term: loan.TermQuincenal, Amount: decimal.NewFromInt(1000), Installments: 4, Status: loan.StatusAprobado},
		}

		detail := CalculateDetail(guard, 10, 0, loans)
		assertDecimal(t, "750", detail.LoanDeductions)
		assertDecimal(t, "5250", detail.NetPay)
	})

	t.Run("net pay can go negative", func(t *testing.T) {
		loans := []loan.Loan{
			{Term: loan.TermUnica, Amount: decimal.NewFromInt(1100), Status: loan.StatusAprobado},
		}

		detail := CalculateDetail(guard, 1, 0, loans)
		assertDecimal(t, "-500", detail.NetPay)
	})

	t.Run("deductions and penalties combine", func(t *testing.T) {
		loans := []loan.Loan{
			{Term: loan.TermQuincenal, Amount: decimal.NewFromInt(1200), Installments: 2, Status: loan.StatusAprobado},
		}

		detail := CalculateDetail(guard, 10, 3, loans)
		assertDecimal(t, "6000", detail.BasePay)
		assertDecimal(t, "600", detail.LoanDeductions)
		assertDecimal(t, "300", detail.Penalties)
		assertDecimal(t, "0", detail.Bonuses)
		assertDecimal(t, "5100", detail.NetPay)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("totals are the sum of the details", func(t *testing.T) {
		details := []payroll.PayrollDetail{
			{
				NetPay:         decimal.NewFromInt(5100),
				LoanDeductions: decimal.NewFromInt(600),
				Penalties:      decimal.NewFromInt(300),
				Bonuses:        decimal.Zero,
			},
			{
				NetPay:         decimal.NewFromInt(3000),
				LoanDeductions: decimal.Zero,
				Penalties:      decimal.Zero,
				Bonuses:        decimal.Zero,
			},
		}

		summary := Summarize(details)
		assertDecimal(t, "8100", summary.TotalNetPay)
		assertDecimal(t, "600", summary.TotalDeductions)
		assertDecimal(t, "300", summary.TotalPenalties)
		assertDecimal(t, "0", summary.TotalBonuses)
		assert.Equal(t, 2, summary.TotalEmployees)
	})

	t.Run("negative net pay reduces the total but not the headcount", func(t *testing.T) {
		details := []payroll.PayrollDetail{
			{NetPay: decimal.NewFromInt(4000)},
			{NetPay: decimal.NewFromInt(-500), LoanDeductions: decimal.NewFromInt(500)},
			{NetPay: decimal.Zero},
		}

		summary := Summarize(details)
		assertDecimal(t, "3500", summary.TotalNetPay)
		assert.Equal(t, 1, summary.TotalEmployees)
	})

	t.Run("empty period produces a zero summary", func(t *testing.T) {
		summary := Summarize(nil)
		assertDecimal(t, "0", summary.TotalNetPay)
		assert.Equal(t, 0, summary.TotalEmployees)
	})
}
