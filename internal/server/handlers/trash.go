package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/drfriend/internal/lifecycle"
	"github.com/iudanet/drfriend/pkg/api"
)

// TrashHandler handles the trash listing, restore and permanent delete
type TrashHandler struct {
	logger  *slog.Logger
	service lifecycle.Service
}

// NewTrashHandler creates a new trash handler
func NewTrashHandler(logger *slog.Logger, service lifecycle.Service) *TrashHandler {
	return &TrashHandler{
		logger:  logger,
		service: service,
	}
}

// List обрабатывает GET /api/v1/trash
func (h *TrashHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Trash(r.Context())
	if err != nil {
		h.logger.Error("Failed to load trash", "error", err)
		sendError(w, h.logger, "Failed to load trash", http.StatusInternalServerError)
		return
	}

	resp := api.TrashListResponse{Entries: make([]api.RecordInfo, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toRecordInfo(e.Record(), e.OriginCategory()))
	}
	sendJSON(w, h.logger, resp, http.StatusOK)
}

// Restore обрабатывает POST /api/v1/trash/{id}/restore
// Запись возвращается в конец своей исходной категории
func (h *TrashHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.service.RestoreFromTrashByID(r.Context(), id)
	if err != nil {
		h.sendLookupError(w, err, id)
		return
	}

	sendJSON(w, h.logger, toRecordInfo(entry.Record(), entry.OriginCategory()), http.StatusOK)
}

// Purge обрабатывает DELETE /api/v1/trash/{id}
// Удаление окончательное, восстановить запись после него нельзя
func (h *TrashHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.service.PermanentlyDeleteByID(r.Context(), id); err != nil {
		h.sendLookupError(w, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TrashHandler) sendLookupError(w http.ResponseWriter, err error, id string) {
	if errors.Is(err, lifecycle.ErrTrashEntryNotFound) {
		sendError(w, h.logger, "Trash entry not found", http.StatusNotFound)
		return
	}
	h.logger.Error("Trash operation failed", "error", err, "id", id)
	sendError(w, h.logger, "Trash operation failed", http.StatusInternalServerError)
}
