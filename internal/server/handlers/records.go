package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/drfriend/internal/lifecycle"
	"github.com/iudanet/drfriend/internal/models"
	"github.com/iudanet/drfriend/internal/payload"
	"github.com/iudanet/drfriend/internal/validation"
	"github.com/iudanet/drfriend/pkg/api"
)

// RecordsHandler handles record listing, upload, download and soft delete
type RecordsHandler struct {
	logger    *slog.Logger
	service   lifecycle.Service
	maxUpload int64
}

// NewRecordsHandler creates a new records handler.
// maxUpload limits the size of an uploaded file in bytes.
func NewRecordsHandler(logger *slog.Logger, service lifecycle.Service, maxUpload int64) *RecordsHandler {
	return &RecordsHandler{
		logger:    logger,
		service:   service,
		maxUpload: maxUpload,
	}
}

// Counts обрабатывает GET /api/v1/counts
func (h *RecordsHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Counts(r.Context())
	if err != nil {
		h.logger.Error("Failed to count records", "error", err)
		sendError(w, h.logger, "Failed to count records", http.StatusInternalServerError)
		return
	}

	resp := api.CountsResponse{Counts: make(map[string]int, len(counts))}
	for c, n := range counts {
		resp.Counts[c.String()] = n
		resp.Total += n
	}
	sendJSON(w, h.logger, resp, http.StatusOK)
}

// List обрабатывает GET /api/v1/records/{category}
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	category, ok := h.category(w, r)
	if !ok {
		return
	}

	set, err := h.service.Records(r.Context())
	if err != nil {
		h.logger.Error("Failed to load records", "error", err)
		sendError(w, h.logger, "Failed to load records", http.StatusInternalServerError)
		return
	}

	resp := api.RecordListResponse{
		Category: category.String(),
		Records:  make([]api.RecordInfo, 0, len(set[category])),
	}
	for _, rec := range set[category] {
		resp.Records = append(resp.Records, toRecordInfo(rec, category))
	}
	sendJSON(w, h.logger, resp, http.StatusOK)
}

// Upload обрабатывает POST /api/v1/records/{category}
// Ожидает multipart форму с полем file и необязательным полем name
func (h *RecordsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	category, ok := h.category(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, h.logger, "File is too large, limit is "+strconv.FormatInt(h.maxUpload, 10)+" bytes", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Warn("Invalid upload form", "error", err)
		sendError(w, h.logger, "Choose a file first", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", "error", err)
		sendError(w, h.logger, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		name = strings.TrimSpace(header.Filename)
	}
	if err := validation.ValidateFileName(name); err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return
	}

	mimeType := uploadMime(header.Header.Get("Content-Type"))
	if mimeType == "" {
		mimeType = payload.DetectMime(header.Filename, content)
	}

	rec := h.service.CreateRecord(name, mimeType, payload.Encode(content, mimeType))
	if err := h.service.Add(r.Context(), category, rec); err != nil {
		h.logger.Error("Failed to add record", "error", err, "category", category)
		sendError(w, h.logger, "Failed to save record", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, toRecordInfo(rec, category), http.StatusCreated)
}

// uploadMime возвращает тип из заголовка части формы без параметров.
// application/octet-stream означает, что клиент тип не знает.
func uploadMime(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType == payload.DefaultMime {
		return ""
	}
	return mediaType
}

// Download обрабатывает GET /api/v1/records/{category}/{id}/download
func (h *RecordsHandler) Download(w http.ResponseWriter, r *http.Request) {
	category, rec, ok := h.lookup(w, r)
	if !ok {
		return
	}

	data, contentType, err := payload.Decode(rec.Data)
	if err != nil {
		h.logger.Error("Stored payload is corrupted", "error", err, "id", rec.ID, "category", category)
		sendError(w, h.logger, "Stored file is corrupted", http.StatusInternalServerError)
		return
	}
	if rec.Mime != "" {
		contentType = rec.Mime
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": payload.DownloadName(*rec),
	}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("Failed to write download", "error", err, "id", rec.ID)
	}
}

// Delete обрабатывает DELETE /api/v1/records/{category}/{id}
// Перемещает запись в корзину
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	_, rec, ok := h.lookup(w, r)
	if !ok {
		return
	}

	entry, err := h.service.MoveToTrashByID(r.Context(), rec.ID)
	if err != nil {
		if errors.Is(err, lifecycle.ErrRecordNotFound) {
			sendError(w, h.logger, "Record not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to move record to trash", "error", err, "id", rec.ID)
		sendError(w, h.logger, "Failed to move record to trash", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, toRecordInfo(entry.Record(), entry.Category), http.StatusOK)
}

// category разбирает категорию из пути, при ошибке отправляет 400
func (h *RecordsHandler) category(w http.ResponseWriter, r *http.Request) (models.Category, bool) {
	category, err := models.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		sendError(w, h.logger, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return category, true
}

// lookup находит запись по id и проверяет, что она лежит в категории из пути
func (h *RecordsHandler) lookup(w http.ResponseWriter, r *http.Request) (models.Category, *models.FileRecord, bool) {
	category, ok := h.category(w, r)
	if !ok {
		return "", nil, false
	}

	id := chi.URLParam(r, "id")
	found, rec, err := h.service.Record(r.Context(), id)
	if err != nil {
		if errors.Is(err, lifecycle.ErrRecordNotFound) {
			sendError(w, h.logger, "Record not found", http.StatusNotFound)
			return "", nil, false
		}
		h.logger.Error("Failed to load record", "error", err, "id", id)
		sendError(w, h.logger, "Failed to load record", http.StatusInternalServerError)
		return "", nil, false
	}
	if found != category {
		sendError(w, h.logger, "Record not found", http.StatusNotFound)
		return "", nil, false
	}
	return category, rec, true
}
