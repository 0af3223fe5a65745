package http

import (
	"log/slog"
	"net/http"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/dashboard"
	"github.com/oilchem-hr/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	resp, err := h.dashboardService.GetDashboard(r.Context(), date)
	if err != nil {
		slog.Error("Dashboard error", "date", date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
