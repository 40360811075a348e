package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/payload"
	"github.com/iudanet/drfriend/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(w http.ResponseWriter, logger *slog.Logger, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(w, logger, resp, statusCode)
}

// toRecordInfo конвертирует запись в API формат без содержимого
func toRecordInfo(rec models.FileRecord, category models.Category) api.RecordInfo {
	size := 0
	if data, _, err := payload.Decode(rec.Data); err == nil {
		size = len(data)
	}
	return api.RecordInfo{
		ID:       rec.ID,
		Name:     rec.Name,
		Mime:     rec.Mime,
		Date:     rec.Date,
		Category: category.String(),
		Size:     size,
	}
}
