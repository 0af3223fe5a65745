package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/settings"
	"github.com/oilchem-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// List implements SettingsHandler.
func (h *SettingsHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	resp, err := h.settingsService.List(r.Context(), search)
	if err != nil {
		slog.Error("Settings list error", "search", search, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cardNo := chi.URLParam(r, "cardNo")

	resp, err := h.settingsService.Get(r.Context(), cardNo)
	if err != nil {
		slog.Error("Settings get error", "card_no", cardNo, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Save implements SettingsHandler.
func (h *SettingsHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq settings.SaveShiftConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Settings save decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.settingsService.Save(r.Context(), saveReq)
	if err != nil {
		slog.Error("Settings save error", "card_no", saveReq.CardNo, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift configuration saved", resp)
}
