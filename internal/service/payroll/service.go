package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/guardian-payroll/backend-go/internal/config"
	"github.com/guardian-payroll/backend-go/internal/domain/attendance"
	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
	"github.com/guardian-payroll/backend-go/internal/domain/payroll"
	"github.com/guardian-payroll/backend-go/internal/pkg/pdf"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	loanRepo       loan.LoanRepository
	cfg            config.PayrollConfig
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	loanRepo loan.LoanRepository,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		loanRepo:       loanRepo,
		cfg:            cfg,
	}
}

// Calculate resolves the pay period, aggregates every employee's attendance
// inside it and produces the per-employee breakdowns plus the period
// summary. Results are returned, never stored; each run starts from the
// current repository contents.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, req payroll.CalculatePayrollRequest) (payroll.CalculatePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CalculatePayrollResponse{}, err
	}

	reference, err := time.Parse(attendance.DateLayout, req.Date)
	if err != nil {
		return payroll.CalculatePayrollResponse{}, payroll.ErrInvalidPeriod
	}

	start, end := ResolvePeriod(reference, payroll.Period(req.Period))

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.CalculatePayrollResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return payroll.CalculatePayrollResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	recordsByEmployee := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		recordsByEmployee[rec.EmployeeID] = append(recordsByEmployee[rec.EmployeeID], rec)
	}

	approved := loan.StatusAprobado
	activeLoans, err := s.loanRepo.List(ctx, loan.ListFilter{Status: &approved})
	if err != nil {
		return payroll.CalculatePayrollResponse{}, fmt.Errorf("failed to list approved loans: %w", err)
	}
	loansByEmployee := make(map[string][]loan.Loan)
	for _, l := range activeLoans {
		loansByEmployee[l.EmployeeID] = append(loansByEmployee[l.EmployeeID], l)
	}

	details := make([]payroll.PayrollDetail, 0, len(employees))
	for _, emp := range employees {
		shiftsWorked, lateArrivals := AggregateAttendance(recordsByEmployee[emp.ID], start, end)
		details = append(details, CalculateDetail(emp, shiftsWorked, lateArrivals, loansByEmployee[emp.ID]))
	}

	summary := Summarize(details)

	if s.cfg.SettleSingleLoans {
		if err := s.settleSingleLoans(ctx, activeLoans); err != nil {
			return payroll.CalculatePayrollResponse{}, err
		}
	}

	detailResponses := make([]payroll.PayrollDetailResponse, 0, len(details))
	for _, d := range details {
		detailResponses = append(detailResponses, payroll.ToDetailResponse(d))
	}

	return payroll.CalculatePayrollResponse{
		StartDate: start.Format(attendance.DateLayout),
		EndDate:   end.Format(attendance.DateLayout),
		Details:   detailResponses,
		Summary:   payroll.ToSummaryResponse(summary),
	}, nil
}

// settleSingleLoans flips única loans to Pagado once their full amount has
// been deducted in this run. Without the flag a única loan stays approved
// and is deducted again every period.
func (s *PayrollServiceImpl) settleSingleLoans(ctx context.Context, activeLoans []loan.Loan) error {
	for _, l := range activeLoans {
		if l.Term != loan.TermUnica {
			continue
		}
		if _, err := s.loanRepo.SetStatus(ctx, l.ID, loan.StatusPagado, nil, nil); err != nil {
			return fmt.Errorf("failed to settle loan %s: %w", l.ID, err)
		}
	}
	return nil
}

func (s *PayrollServiceImpl) ExportPDF(ctx context.Context, req payroll.CalculatePayrollRequest) ([]byte, error) {
	result, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}

	return pdf.RenderPayrollReport(result.StartDate, result.EndDate, result.Details, result.Summary)
}
