package handler

import (
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

type StorageHandler struct {
	ports.FileService
	bucketID string
}

func NewStorageHandler(fileService ports.FileService, bucketID string) *StorageHandler {
	return &StorageHandler{fileService, bucketID}
}

// View godoc
// @Summary Просмотр объекта
// @Description Отдаёт содержимое объекта бакета, на этот адрес указывает url записи о файле
// @Tags Storage
// @Produce octet-stream
// @Param bucketId path string true "Бакет"
// @Param fileId path string true "Идентификатор объекта"
// @Param project query string false "Проект"
// @Success 200 {file} binary
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /storage/buckets/{bucketId}/files/{fileId}/view [get]
func (h *StorageHandler) View(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "bucketId") != h.bucketID {
		util.HandleError(w, "бакет не найден", http.StatusNotFound)
		return
	}

	body, info, err := h.ViewFile(r.Context(), chi.URLParam(r, "fileId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer body.Close()

	contentType := info.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if info.SizeOriginal > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.SizeOriginal, 10))
	}
	disposition := "attachment"
	if inlineSafe(contentType) {
		disposition = "inline"
	}
	params := map[string]string{}
	if info.Name != "" {
		params["filename"] = info.Name
	}
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, params))
	w.Header().Set("Content-Security-Policy", "sandbox")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if _, err := io.Copy(w, body); err != nil {
		util.Sugar.Warnw("[StorageHandler] обрыв передачи объекта", "fileId", info.ID, "error", err)
	}
}

// inlineSafe : типы, которые браузер показывает без исполнения скриптов.
// svg сюда не входит, остальное отдаётся на скачивание
func inlineSafe(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	switch {
	case mediaType == "image/svg+xml":
		return false
	case strings.HasPrefix(mediaType, "image/"),
		strings.HasPrefix(mediaType, "video/"),
		strings.HasPrefix(mediaType, "audio/"):
		return true
	}

	return mediaType == "application/pdf" || mediaType == "text/plain"
}
