package handler

import (
	"file-storage-server/config"
	"file-storage-server/internal/model"
	requestresponse "file-storage-server/internal/model/requestresponse"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/security"
	"file-storage-server/internal/util"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// base64 раздувает данные на треть, плюс запас на остальные поля JSON
const uploadEnvelopeBytes = 1 << 20

type FileHandler struct {
	ports.FileService
	limits config.LimitsConfig
}

func NewFileHandler(fileService ports.FileService, limits config.LimitsConfig) *FileHandler {
	return &FileHandler{fileService, limits}
}

// Upload godoc
// @Summary Загрузка файла
// @Description Принимает файл в виде data-URL, кладёт его в бакет и создаёт запись о файле
// @Tags Files
// @Accept json
// @Produce json
// @Param body body requestresponse.UploadFileRequest true "Файл и владелец"
// @Success 201 {object} model.File
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный запрос или содержимое"
// @Failure 401 {object} requestresponse.ErrorResponse "Нет сессии"
// @Failure 403 {object} requestresponse.ErrorResponse "Владелец не совпадает с текущим пользователем"
// @Failure 413 {object} requestresponse.ErrorResponse "Файл слишком большой"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/files [post]
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.limits.MaxUploadBytes/3*4+uploadEnvelopeBytes)

	var req requestresponse.UploadFileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	user := security.UserFromContext(r.Context())
	if user.ID != req.OwnerID || user.AccountID != req.AccountID {
		util.HandleError(w, "нельзя загружать файлы от имени другого пользователя", http.StatusForbidden)
		return
	}

	file, err := h.UploadFile(r.Context(), ports.UploadFileParams{
		File: model.UploadedFile{
			Base64String: req.File.Base64String,
			FileName:     req.File.FileName,
			FileType:     req.File.FileType,
		},
		OwnerID:   req.OwnerID,
		AccountID: req.AccountID,
		Path:      req.Path,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, file)
}

// List godoc
// @Summary Список файлов
// @Description Файлы, которыми владеет текущий пользователь или которые ему открыты
// @Tags Files
// @Produce json
// @Param type query string false "Типы через запятую: document,image,video,audio,other"
// @Param query query string false "Подстрока имени"
// @Param sort query string false "Поле и направление, например $createdAt-desc"
// @Param limit query int false "Максимум записей"
// @Success 200 {object} model.FileList
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/files [get]
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	var types []string
	if raw := r.URL.Query().Get("type"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			t = strings.TrimSpace(t)
			if !util.IsFileType(t) {
				util.HandleError(w, "неизвестный тип файла: "+t, http.StatusBadRequest)
				return
			}
			types = append(types, t)
		}
	}

	h.list(w, r, types)
}

// ListByType godoc
// @Summary Файлы раздела
// @Description Раздел documents, images, media или others переводится в список типов
// @Tags Files
// @Produce json
// @Param type path string true "Раздел" Enums(documents, images, media, others)
// @Param query query string false "Подстрока имени"
// @Param sort query string false "Поле и направление"
// @Param limit query int false "Максимум записей"
// @Success 200 {object} model.FileList
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/files/types/{type} [get]
func (h *FileHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, util.GetFileTypesParams(chi.URLParam(r, "type")))
}

func (h *FileHandler) list(w http.ResponseWriter, r *http.Request, types []string) {
	values := r.URL.Query()

	limit := 0
	if raw := values.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			util.HandleError(w, "limit должен быть неотрицательным числом", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	files, err := h.GetFiles(r.Context(), security.SessionSecretFromContext(r.Context()), ports.GetFilesParams{
		Types:      types,
		SearchText: values.Get("query"),
		Sort:       values.Get("sort"),
		Limit:      limit,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, files)
}

// Get godoc
// @Summary Запись о файле
// @Tags Files
// @Produce json
// @Param fileId path string true "Идентификатор записи"
// @Success 200 {object} model.File
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/files/{fileId} [get]
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	file, err := h.GetFile(r.Context(), security.UserFromContext(r.Context()), chi.URLParam(r, "fileId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, file)
}

// Rename godoc
// @Summary Переименование файла
// @Description Новое имя собирается как name.extension, при пустом расширении остаётся name
// @Tags Files
// @Accept json
// @Produce json
// @Param fileId path string true "Идентификатор записи"
// @Param body body requestresponse.RenameFileRequest true "Новое имя"
// @Success 200 {object} model.File
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/files/{fileId}/name [put]
func (h *FileHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RenameFileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	file, err := h.RenameFile(r.Context(), security.UserFromContext(r.Context()), ports.RenameFileParams{
		FileID:    chi.URLParam(r, "fileId"),
		Name:      req.Name,
		Extension: req.Extension,
		Path:      req.Path,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, file)
}

// Share godoc
// @Summary Доступ к файлу
// @Description Полностью заменяет список email, которым открыт файл. Пустой список закрывает доступ всем
// @Tags Files
// @Accept json
// @Produce json
// @Param fileId path string true "Идентификатор записи"
// @Param body body requestresponse.UpdateFileUsersRequest true "Список email"
// @Success 200 {object} model.File
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/files/{fileId}/users [put]
func (h *FileHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateFileUsersRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	file, err := h.UpdateFileUsers(r.Context(), security.UserFromContext(r.Context()), ports.UpdateFileUsersParams{
		FileID: chi.URLParam(r, "fileId"),
		Emails: req.Emails,
		Path:   req.Path,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, file)
}

// Delete godoc
// @Summary Удаление файла
// @Description Удаляет запись, затем объект в бакете
// @Tags Files
// @Produce json
// @Param fileId path string true "Идентификатор записи"
// @Param bucketFileId query string true "Идентификатор объекта в бакете"
// @Param path query string true "Маршрут для инвалидации"
// @Success 200 {object} requestresponse.DeleteFileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/files/{fileId} [delete]
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bucketFileID := r.URL.Query().Get("bucketFileId")
	if bucketFileID == "" {
		util.HandleError(w, "bucketFileId обязателен", http.StatusBadRequest)
		return
	}

	result, err := h.DeleteFile(r.Context(), security.UserFromContext(r.Context()), ports.DeleteFileParams{
		FileID:       chi.URLParam(r, "fileId"),
		BucketFileID: bucketFileID,
		Path:         r.URL.Query().Get("path"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.DeleteFileResponse{Status: result["status"]})
}

// Usage godoc
// @Summary Занятое место
// @Description Сумма размеров и последнее обновление по типам файлов владельца, а также квота
// @Tags Files
// @Produce json
// @Success 200 {object} model.SpaceUsage
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/files/usage [get]
func (h *FileHandler) Usage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.GetTotalSpaceUsed(r.Context(), security.UserFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, usage)
}

// Revalidated godoc
// @Summary Инвалидация маршрута
// @Description Время последней инвалидации маршрута, null если её не было
// @Tags Routes
// @Produce json
// @Param path query string true "Маршрут"
// @Success 200 {object} requestresponse.RevalidatedResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/routes/revalidated [get]
func (h *FileHandler) Revalidated(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if !strings.HasPrefix(path, "/") {
		util.HandleError(w, "path должен начинаться с /", http.StatusBadRequest)
		return
	}

	at, err := h.RevalidatedAt(r.Context(), path)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.RevalidatedResponse{Path: path, RevalidatedAt: at})
}
