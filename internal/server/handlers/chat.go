package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/drfriend/internal/chat"
	"github.com/iudanet/drfriend/pkg/api"
)

// ChatHandler отвечает на сообщения помощнику
type ChatHandler struct {
	logger *slog.Logger
}

// NewChatHandler создает новый handler для чата
func NewChatHandler(logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		logger: logger,
	}
}

// Reply обрабатывает POST /api/v1/chat
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, h.logger, "Invalid JSON", http.StatusBadRequest)
		return
	}

	reply, ok := chat.Reply(req.Message)
	if !ok {
		sendError(w, h.logger, "Message is required", http.StatusBadRequest)
		return
	}

	sendJSON(w, h.logger, api.ChatResponse{Reply: reply}, http.StatusOK)
}
