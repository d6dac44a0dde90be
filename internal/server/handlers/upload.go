package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/224solutions/offline-sync/internal/checksum"
	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/internal/server/storage"
	"github.com/224solutions/offline-sync/pkg/api"
)

// maxUploadSize ограничивает размер одного вложения
const maxUploadSize = 10 << 20 // 10 MiB

// FileStore определяет интерфейс для сохранения загруженных файлов
type FileStore interface {
	// SaveFile сохраняет файл; false означает дубликат file_id
	SaveFile(ctx context.Context, file *models.StoredFile) (bool, error)
}

// UploadHandler handles file attachment uploads
type UploadHandler struct {
	logger *slog.Logger
	files  FileStore
	events EventStore
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(logger *slog.Logger, files FileStore, events EventStore) *UploadHandler {
	return &UploadHandler{
		logger: logger,
		files:  files,
		events: events,
	}
}

// HandleUpload обрабатывает POST /api/sync/upload
// Принимает multipart-запрос с полями event_id, file_id, checksum и
// частью file. Владеющее событие должно быть принято раньше файла:
// клиент загружает вложения только после подтверждения события.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	vendorID, ok := GetVendorID(ctx)
	if !ok {
		h.logger.Error("Vendor ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.logger.Warn("Failed to parse multipart form", "error", err)
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	eventID := r.FormValue("event_id")
	fileID := r.FormValue("file_id")
	expectedChecksum := r.FormValue("checksum")
	if eventID == "" || fileID == "" || expectedChecksum == "" {
		http.Error(w, "event_id, file_id and checksum are required", http.StatusBadRequest)
		return
	}

	// Файл без принятого события не сохраняем.
	event, err := h.events.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			h.logger.Warn("Upload for unknown event",
				"event_id", eventID,
				"vendor_id", vendorID)
			http.Error(w, "Unknown event", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get owning event", "error", err, "event_id", eventID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if event.VendorID != vendorID {
		h.logger.Warn("Upload vendor_id mismatch",
			"expected", event.VendorID,
			"got", vendorID,
			"event_id", eventID)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("Missing file part", "error", err)
		http.Error(w, "file part is required", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = part.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(part, maxUploadSize+1))
	if err != nil {
		h.logger.Error("Failed to read file part", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(data) > maxUploadSize {
		http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		http.Error(w, "File is empty", http.StatusBadRequest)
		return
	}

	// Контрольная сумма считается клиентом при записи файла:
	// расхождение значит повреждение по дороге.
	if err := checksum.Verify(data, expectedChecksum); err != nil {
		h.logger.Warn("Upload checksum mismatch",
			"file_id", fileID,
			"error", err)
		http.Error(w, "Checksum mismatch", http.StatusBadRequest)
		return
	}

	created, err := h.files.SaveFile(ctx, &models.StoredFile{
		ReceivedAt:  time.Now(),
		FileID:      fileID,
		EventID:     eventID,
		VendorID:    vendorID,
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Checksum:    expectedChecksum,
		Data:        data,
		Size:        int64(len(data)),
	})
	if err != nil {
		h.logger.Error("Failed to save file", "error", err, "file_id", fileID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("File upload completed",
		"vendor_id", vendorID,
		"file_id", fileID,
		"size", len(data),
		"duplicate", !created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.UploadResponse{
		Success: true,
		FileID:  fileID,
	}); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
