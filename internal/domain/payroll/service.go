package payroll

import "context"

type PayrollService interface {
	Calculate(ctx context.Context, req CalculatePayrollRequest) (CalculatePayrollResponse, error)
	// ExportPDF runs the same calculation and renders it as a PDF report.
	ExportPDF(ctx context.Context, req CalculatePayrollRequest) ([]byte, error)
}
