package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/notification"
	"github.com/oilchem-hr/attendance-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// Run implements NotificationHandler.
func (h *NotificationHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var runReq notification.RunRequest

	if err := json.NewDecoder(r.Body).Decode(&runReq); err != nil {
		slog.Error("Notification run decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.notificationService.Run(r.Context(), runReq)
	if err != nil {
		slog.Error("Notification run error", "date", runReq.Date, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification run completed", result)
}

// Logs implements NotificationHandler.
func (h *NotificationHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.notificationService.Logs(r.Context(), limit)
	if err != nil {
		slog.Error("Notification logs error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
