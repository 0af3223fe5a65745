package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/handler/http/response"
)

type ExportHandler interface {
	DailyPDF(w http.ResponseWriter, r *http.Request)
	MonthlyPDF(w http.ResponseWriter, r *http.Request)
	YearlyPDF(w http.ResponseWriter, r *http.Request)
}

type ExportHandlerImpl struct {
	exportService report.ExportService
}

func NewExportHandler(exportService report.ExportService) ExportHandler {
	return &ExportHandlerImpl{exportService: exportService}
}

func writePDF(w http.ResponseWriter, filename string, content []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// DailyPDF implements ExportHandler.
func (h *ExportHandlerImpl) DailyPDF(w http.ResponseWriter, r *http.Request) {
	req := report.DailyReportRequest{
		CardNo: r.URL.Query().Get("card_no"),
		Date:   r.URL.Query().Get("date"),
	}

	filename, content, err := h.exportService.DailyPDF(r.Context(), req)
	if err != nil {
		slog.Error("Daily export error", "card_no", req.CardNo, "date", req.Date, "error", err)
		response.HandleError(w, err)
		return
	}

	writePDF(w, filename, content)
}

// MonthlyPDF implements ExportHandler.
func (h *ExportHandlerImpl) MonthlyPDF(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		CardNo: r.URL.Query().Get("card_no"),
		Month:  r.URL.Query().Get("month"),
	}

	filename, content, err := h.exportService.MonthlyPDF(r.Context(), req)
	if err != nil {
		slog.Error("Monthly export error", "card_no", req.CardNo, "month", req.Month, "error", err)
		response.HandleError(w, err)
		return
	}

	writePDF(w, filename, content)
}

// YearlyPDF implements ExportHandler.
func (h *ExportHandlerImpl) YearlyPDF(w http.ResponseWriter, r *http.Request) {
	req := report.YearlyReportRequest{
		CardNo: r.URL.Query().Get("card_no"),
		Year:   r.URL.Query().Get("year"),
	}

	filename, content, err := h.exportService.YearlyPDF(r.Context(), req)
	if err != nil {
		slog.Error("Yearly export error", "card_no", req.CardNo, "year", req.Year, "error", err)
		response.HandleError(w, err)
		return
	}

	writePDF(w, filename, content)
}
