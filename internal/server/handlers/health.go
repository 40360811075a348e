package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/drfriend/internal/storage"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	kv      storage.KV
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, kv storage.KV, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		kv:      kv,
		version: version,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health обрабатывает GET /health
// Проверяет, что хранилище открыто и доступно для чтения
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	err := h.kv.View(r.Context(), func(tx storage.Tx) error {
		return nil
	})
	if err != nil {
		h.logger.Error("storage is unavailable", slog.Any("error", err))
		sendJSON(w, h.logger, HealthResponse{Status: "unavailable", Version: h.version}, http.StatusServiceUnavailable)
		return
	}

	sendJSON(w, h.logger, HealthResponse{Status: "ok", Version: h.version}, http.StatusOK)
}
