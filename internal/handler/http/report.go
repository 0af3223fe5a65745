package http

import (
	"log/slog"
	"net/http"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	Yearly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Daily implements ReportHandler.
func (h *ReportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	req := report.DailyReportRequest{
		CardNo: r.URL.Query().Get("card_no"),
		Date:   r.URL.Query().Get("date"),
	}

	resp, err := h.reportService.Daily(r.Context(), req)
	if err != nil {
		slog.Error("Daily report error", "card_no", req.CardNo, "date", req.Date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		CardNo: r.URL.Query().Get("card_no"),
		Month:  r.URL.Query().Get("month"),
	}

	resp, err := h.reportService.Monthly(r.Context(), req)
	if err != nil {
		slog.Error("Monthly report error", "card_no", req.CardNo, "month", req.Month, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Yearly implements ReportHandler.
func (h *ReportHandlerImpl) Yearly(w http.ResponseWriter, r *http.Request) {
	req := report.YearlyReportRequest{
		CardNo: r.URL.Query().Get("card_no"),
		Year:   r.URL.Query().Get("year"),
	}

	resp, err := h.reportService.Yearly(r.Context(), req)
	if err != nil {
		slog.Error("Yearly report error", "card_no", req.CardNo, "year", req.Year, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
