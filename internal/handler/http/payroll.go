package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/guardian-payroll/backend-go/internal/domain/payroll"
	"github.com/guardian-payroll/backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	req := payroll.CalculatePayrollRequest{
		Date:   r.URL.Query().Get("date"),
		Period: r.URL.Query().Get("period"),
	}

	data, err := h.payrollService.ExportPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="nomina-%s-%s.pdf"`, req.Date, req.Period))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
