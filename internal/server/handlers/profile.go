package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/profile"
	"github.com/iudanet/drfriend/pkg/api"
)

// maxProfileBody ограничивает размер тела запроса профиля (аватар в data URI)
const maxProfileBody = 8 << 20

// ProfileHandler handles the user profile
type ProfileHandler struct {
	logger  *slog.Logger
	service profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(logger *slog.Logger, service profile.Service) *ProfileHandler {
	return &ProfileHandler{
		logger:  logger,
		service: service,
	}
}

// Get обрабатывает GET /api/v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.Error("Failed to load profile", "error", err)
		sendError(w, h.logger, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, api.Profile(p), http.StatusOK)
}

// Put обрабатывает PUT /api/v1/profile
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req api.Profile
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxProfileBody)).Decode(&req); err != nil {
		h.logger.Warn("Invalid profile request", "error", err)
		sendError(w, h.logger, "Invalid JSON", http.StatusBadRequest)
		return
	}

	p := models.Profile(req)
	if err := h.service.Save(r.Context(), p); err != nil {
		if errors.Is(err, profile.ErrInvalidProfile) {
			sendError(w, h.logger, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to save profile", "error", err)
		sendError(w, h.logger, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, req, http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/profile
// Записи и корзина не затрагиваются
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		h.logger.Error("Failed to clear profile", "error", err)
		sendError(w, h.logger, "Failed to clear profile", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
