package payroll

import (
	"context"
	"testing"

	"github.com/guardian-payroll/backend-go/internal/config"
	"github.com/guardian-payroll/backend-go/internal/domain/attendance"
	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
	"github.com/guardian-payroll/backend-go/internal/domain/payroll"
	"github.com/guardian-payroll/backend-go/internal/pkg/validator"
	"github.com/guardian-payroll/backend-go/internal/repository/inmemory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payrollFixture struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	loanRepo       loan.LoanRepository
	service        payroll.PayrollService
}

func newPayrollFixture(t *testing.T, cfg config.PayrollConfig) *payrollFixture {
	t.Helper()
	f := &payrollFixture{
		employeeRepo:   inmemory.NewEmployeeRepository(),
		attendanceRepo: inmemory.NewAttendanceRepository(),
		loanRepo:       inmemory.NewLoanRepository(),
	}
	f.service = NewPayrollService(f.employeeRepo, f.attendanceRepo, f.loanRepo, cfg)
	return f
}

func (f *payrollFixture) seedEmployee(t *testing.T, name, email string, shiftRate int64) employee.Employee {
	t.Helper()
	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		FullName:  name,
		Email:     email,
		Role:      employee.RoleGuardia,
		ShiftRate: decimal.NewFromInt(shiftRate),
	})
	require.NoError(t, err)
	return emp
}

func (f *payrollFixture) seedAttendance(t *testing.T, employeeID, date string, shift attendance.Shift, status attendance.Status) {
	t.Helper()
	_, err := f.attendanceRepo.Upsert(context.Background(), attendance.Attendance{
		EmployeeID: employeeID,
		Date:       mustDate(t, date),
		Shift:      shift,
		Status:     status,
	})
	require.NoError(t, err)
}

func (f *payrollFixture) seedLoan(t *testing.T, employeeID string, amount int64, term loan.Term, installments int, status loan.Status) loan.Loan {
	t.Helper()
	l, err := f.loanRepo.Create(context.Background(), loan.Loan{
		EmployeeID:   employeeID,
		Amount:       decimal.NewFromInt(amount),
		Term:         term,
		Installments: installments,
		Status:       status,
	})
	require.NoError(t, err)
	return l
}

func findDetail(t *testing.T, details []payroll.PayrollDetailResponse, employeeID string) payroll.PayrollDetailResponse {
	t.Helper()
	for _, d := range details {
		if d.EmployeeID == employeeID {
			return d
		}
	}
	t.Fatalf("no detail for employee %s", employeeID)
	return payroll.PayrollDetailResponse{}
}

func TestPayrollService_Calculate(t *testing.T) {
	ctx := context.Background()

	t.Run("full period for one guard", func(t *testing.T) {
		f := newPayrollFixture(t, config.PayrollConfig{})
		guard := f.seedEmployee(t, "Juan Pérez", "juan@example.com", 600)

		workedDays := []string{
			"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05",
			"2025-03-06", "2025-03-07", "2025-03-08", "2025-03-09", "2025-03-10",
		}
		for _, day := range workedDays {
			f.seedAttendance(t, guard.ID, day, attendance.ShiftDay, attendance.StatusAsistencia)
		}
		for _, day := range []string{"2025-03-11", "2025-03-12", "2025-03-13"} {
			f.seedAttendance(t, guard.ID, day, attendance.ShiftDay, attendance.StatusRetardo)
		}
		f.seedLoan(t, guard.ID, 1200, loan.TermQuincenal, 2, loan.StatusAprobado)

		result, err := f.service.Calculate(ctx, payroll.CalculatePayrollRequest{
			Date:   "2025-03-10",
			Period: string(payroll.PeriodFirstHalf),
		})
		require.NoError(t, err)

		assert.Equal(t, "2025-03-01", result.StartDate)
		assert.Equal(t, "2025-03-15", result.EndDate)
		require.Len(t, result.Details, 1)

		detail := result.Details[0]
		assert.Equal(t, guard.ID, detail.EmployeeID)
		assert.Equal(t, 10, detail.ShiftsWorked)
		assert.Equal(t, 3, detail.LateArrivals)
		assertDecimal(t, "6000", detail.BasePay)
		assertDecimal(t, "600", detail.LoanDeductions)
		assertDecimal(t, "300", detail.Penalties)
		assertDecimal(t, "5100", detail.NetPay)

		assertDecimal(t, "5100", result.Summary.TotalNetPay)
		assert.Equal(t, 1, result.Summary.TotalEmployees)
	})

	t.Run("records outside the period are ignored", func(t *testing.T) {
		f := newPayrollFixture(t, config.PayrollConfig{})
		guard := f.seedEmployee(t, "Ana López", "ana@example.com", 500)

		f.seedAttendance(t, guard.ID, "2025-03-15", attendance.ShiftDay, attendance.StatusAsistencia)
		f.seedAttendance(t, guard.ID, "2025-03-16", attendance.ShiftDay, attendance.StatusAsistencia)
		f.seedAttendance(t, guard.ID, "2025-03-31", attendance.ShiftNight, attendance.StatusAsistencia)
		f.seedAttendance(t, guard.ID, "2025-04-01", attendance.ShiftDay, attendance.StatusAsistencia)

		result, err := f.service.Calculate(ctx, payroll.CalculatePayrollRequest{
			Date:   "2025-03-20",
			Period: string(payroll.PeriodSecondHalf),
		})
		require.NoError(t, err)

		assert.Equal(t, "2025-03-16", result.StartDate)
		assert.Equal(t, "2025-03-31", result.EndDate)
		require.Len(t, result.Details, 1)
		assert.Equal(t, 2, result.Details[0].ShiftsWorked)
		assertDecimal(t, "1000", result.Details[0].NetPay)
	})

	t.Run("summary adds across employees and counts positive net pay only", func(t *testing.T) {
		f := newPayrollFixture(t, config.PayrollConfig{})
		worker := f.seedEmployee(t, "Carlos Ruiz", "carlos@example.com", 600)
		debtor := f.seedEmployee(t, "Luis Gómez", "luis@example.com", 600)
		idle := f.seedEmployee(t, "Rosa Díaz", "rosa@example.com", 600)

		for _, day := range []string{"2025-03-03", "2025-03-04", "2025-03-05"} {
			f.seedAttendance(t, worker.ID, day, attendance.ShiftDay, attendance.StatusAsistencia)
		}
		f.seedAttendance(t, debtor.ID, "2025-03-03", attendance.ShiftDay, attendance.StatusAsistencia)
		f.seedLoan(t, debtor.ID, 1100, loan.TermUnica, 1, loan.StatusAprobado)

		result, err := f.service.Calculate(ctx, payroll.CalculatePayrollRequest{
			Date:   "2025-03-01",
			Period: string(payroll.PeriodFirstHalf),
		})
		require.NoError(t, err)
		require.Len(t, result.Details, 3)

		assertDecimal(t, "1800", findDetail(t, result.Details, worker.ID).NetPay)
		assertDecimal(t, "-500", findDetail(t, result.Details, debtor.ID).NetPay)
		assertDecimal(t, "0", findDetail(t, result.Details, idle.ID).NetPay)

		assertDecimal(t, "1300", result.Summary.TotalNetPay)
		assertDecimal(t, "1100", result.Summary.TotalDeductions)
		assert.Equal(t, 1, result.Summary.TotalEmployees)
	})

	t.Run("pending and rejected loans are not deducted", func(t *testing.T) {
		f := newPayrollFixture(t, config.PayrollConfig{})
		guard := f.seedEmployee(t, "Pedro Sánchez", "pedro@example.com", 600)
		f.seedAttendance(t, guard.ID, "2025-03-03", attendance.ShiftDay, attendance.StatusAsistencia)
		f.seedLoan(t, guard.ID, 900, loan.TermUnica, 1, loan.StatusPendiente)
		f.seedLoan(t, guard.ID, 900, loan.TermUnica, 1, loan.StatusRechazado)
		f.seedLoan(t, guard.ID, 900, loan.TermUnica, 1, loan.StatusPagado)

		result, err := f.service.Calculate(ctx, payroll.CalculatePayrollRequest{
			Date:   "2025-03-01",
			Period: string(payroll.PeriodFirstHalf),
		})
		require.NoError(t, err)

		detail := findDetail(t, result.Details, guard.ID)
		assertDecimal(t, "0", detail.LoanDeductions)
		assertDecimal(t, "600", detail.NetPay)
	})

	t.Run("two runs over the same data give identical results", func(t *testing.T) {
		f := newPayrollFixture(t, config.PayrollConfig{})
		guard := f.seedEmployee(t, "María Torres", "maria@example.com", 550)
		f.seedAttendance(t, guard.ID, "2025-03-05", attendance.ShiftDay, attendance.StatusAsistencia)
		f.seedAttendance(t, guard.ID, "2025-03-05", attendance.ShiftNight, attendance.StatusAsistencia)
		f.seedLoan(t, guard.ID, 1000, loan.TermQuincenal, 4, loan.StatusAprobado)

		req := payroll.CalculatePayrollRequest{Date: "2025-03-10", Period: string(payroll.PeriodFirstHalf)}

		first, err := f.service.Calculate(ctx, req)
		require.NoError(t, err)
		second, err := f.service.Calculate(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, first.Details[0].ShiftsWorked)
		assertDecimal(t, "850", first.Details[0].NetPay)
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		f := newPayrollFixture(t, config.PayrollConfig{})

		_, err := f.service.Calculate(ctx, payroll.CalculatePayrollRequest{Date: "not-a-date", Period: "1-15"})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)

		_, err = f.service.Calculate(ctx, payroll.CalculatePayrollRequest{Date: "2025-03-10", Period: "monthly"})
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestPayrollService_SettleSingleLoans(t *testing.T) {
	ctx := context.Background()
	req := payroll.CalculatePayrollRequest{Date: "2025-03-10", Period: string(payroll.PeriodFirstHalf)}

	t.Run("disabled keeps deducting a única loan every period", func(t *testing.T) {
		f := newPayrollFixture(t, config.PayrollConfig{SettleSingleLoans: false})
		guard := f.seedEmployee(t, "Juan Pérez", "juan@example.com", 600)
		f.seedAttendance(t, guard.ID, "2025-03-03", attendance.ShiftDay, attendance.StatusAsistencia)
		single := f.seedLoan(t, guard.ID, 400, loan.TermUnica, 1, loan.StatusAprobado)

		first, err := f.service.Calculate(ctx, req)
		require.NoError(t, err)
		assertDecimal(t, "400", first.Details[0].LoanDeductions)

		second, err := f.service.Calculate(ctx, req)
		require.NoError(t, err)
		assertDecimal(t, "400", second.Details[0].LoanDeductions)

		stored, err := f.loanRepo.GetByID(ctx, single.ID)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusAprobado, stored.Status)
	})

	t.Run("enabled marks a única loan paid after one deduction", func(t *testing.T) {
		f := newPayrollFixture(t, config.PayrollConfig{SettleSingleLoans: true})
		guard := f.seedEmployee(t, "Juan Pérez", "juan@example.com", 600)
		f.seedAttendance(t, guard.ID, "2025-03-03", attendance.ShiftDay, attendance.StatusAsistencia)
		single := f.seedLoan(t, guard.ID, 400, loan.TermUnica, 1, loan.StatusAprobado)
		recurring := f.seedLoan(t, guard.ID, 1000, loan.TermQuincenal, 4, loan.StatusAprobado)

		first, err := f.service.Calculate(ctx, req)
		require.NoError(t, err)
		assertDecimal(t, "650", first.Details[0].LoanDeductions)

		stored, err := f.loanRepo.GetByID(ctx, single.ID)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusPagado, stored.Status)

		second, err := f.service.Calculate(ctx, req)
		require.NoError(t, err)
		assertDecimal(t, "250", second.Details[0].LoanDeductions)

		stillApproved, err := f.loanRepo.GetByID(ctx, recurring.ID)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusAprobado, stillApproved.Status)
	})
}

func TestPayrollService_ExportPDF(t *testing.T) {
	ctx := context.Background()
	f := newPayrollFixture(t, config.PayrollConfig{})
	guard := f.seedEmployee(t, "Juan Pérez", "juan@example.com", 600)
	f.seedAttendance(t, guard.ID, "2025-03-03", attendance.ShiftDay, attendance.StatusAsistencia)

	data, err := f.service.ExportPDF(ctx, payroll.CalculatePayrollRequest{
		Date:   "2025-03-10",
		Period: string(payroll.PeriodFirstHalf),
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))

	_, err = f.service.ExportPDF(ctx, payroll.CalculatePayrollRequest{Date: "2025-03-10", Period: "bad"})
	assert.Error(t, err)
}
