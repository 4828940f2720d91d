package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles admin dashboard HTTP requests.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Summary handles GET /api/admin/summary requests.
func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Stores handles GET /api/admin/stores requests.
func (h *AdminHandler) Stores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	q := r.URL.Query()
	filter := model.StoreFilter{
		Search:   q.Get("search"),
		SortDesc: !strings.EqualFold(q.Get("sort"), "asc"),
	}

	// Only the two known status values filter; anything else is ignored.
	if status := model.StoreStatus(q.Get("status")); status.Valid() {
		filter.Status = status
	}

	stores, err := h.service.Stores(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if stores == nil {
		stores = []model.StoreListing{}
	}
	writeJSON(w, http.StatusOK, stores)
}

// UpdateStoreStatus handles PUT /api/admin/stores/{id}/status requests.
func (h *AdminHandler) UpdateStoreStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/admin/stores/")
	idStr, rest, found := strings.Cut(path, "/")
	if !found || rest != "status" {
		writeError(w, http.StatusNotFound, model.ErrCodeValidation, "not found", h.logger)
		return
	}

	storeID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid store ID", h.logger)
		return
	}

	var req struct {
		Status model.StoreStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateStoreStatus(r.Context(), storeID, req.Status); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Store " + string(req.Status) + " successfully",
	})
}
