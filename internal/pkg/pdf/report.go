package pdf

import (
	"bytes"
	"fmt"

	"github.com/guardian-payroll/backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

var reportColumns = []struct {
	title string
	width float64
}{
	{"Empleado", 52},
	{"Turnos", 18},
	{"Retardos", 20},
	{"Sueldo Base", 28},
	{"Préstamos", 26},
	{"Penalización", 28},
	{"Bono", 18},
	{"Neto", 28},
}

// RenderPayrollReport renders a period's payroll table plus summary totals
// as a PDF document.
func RenderPayrollReport(startDate, endDate string, details []payroll.PayrollDetailResponse, summary payroll.PayrollSummaryResponse) ([]byte, error) {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetTitle("Nómina Guardian", true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Nómina Guardian")
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 8, fmt.Sprintf("Periodo: %s a %s", startDate, endDate))
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for _, col := range reportColumns {
		doc.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	for _, d := range details {
		doc.CellFormat(reportColumns[0].width, 7, d.EmployeeName, "1", 0, "L", false, 0, "")
		doc.CellFormat(reportColumns[1].width, 7, fmt.Sprintf("%d", d.ShiftsWorked), "1", 0, "R", false, 0, "")
		doc.CellFormat(reportColumns[2].width, 7, fmt.Sprintf("%d", d.LateArrivals), "1", 0, "R", false, 0, "")
		doc.CellFormat(reportColumns[3].width, 7, "$ "+d.BasePay.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(reportColumns[4].width, 7, "$ "+d.LoanDeductions.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(reportColumns[5].width, 7, "$ "+d.Penalties.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(reportColumns[6].width, 7, "$ "+d.Bonuses.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(reportColumns[7].width, 7, "$ "+d.NetPay.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	doc.Ln(6)
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 7, fmt.Sprintf("Total a pagar: $ %s", summary.TotalNetPay.StringFixed(2)))
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 6, fmt.Sprintf("Empleados en nómina: %d", summary.TotalEmployees))
	doc.Ln(5)
	doc.Cell(0, 6, fmt.Sprintf("Descuentos por préstamos: $ %s", summary.TotalDeductions.StringFixed(2)))
	doc.Ln(5)
	doc.Cell(0, 6, fmt.Sprintf("Penalizaciones: $ %s", summary.TotalPenalties.StringFixed(2)))
	doc.Ln(5)
	doc.Cell(0, 6, fmt.Sprintf("Bonos: $ %s", summary.TotalBonuses.StringFixed(2)))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payroll report: %w", err)
	}
	return buf.Bytes(), nil
}
