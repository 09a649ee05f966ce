package handler

import (
	"encoding/json"
	"errors"
	"file-storage-server/internal/platform"
	"file-storage-server/internal/query"
	"file-storage-server/internal/service"
	"file-storage-server/internal/util"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeAndValidate : разбирает JSON-тело и проверяет теги validate
func decodeAndValidate(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return service.ErrFileTooLarge
		}
		return fmt.Errorf("некорректный JSON: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		messages = append(messages, fmt.Sprintf("поле %s не прошло проверку %s", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}

// writeRequestError : 413 для слишком большого тела, иначе 400
func writeRequestError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrFileTooLarge) {
		util.HandleError(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	util.HandleError(w, err.Error(), http.StatusBadRequest)
}

// writeServiceError : переводит ошибки сервисов в HTTP-статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, platform.ErrNoSession),
		errors.Is(err, platform.ErrInvalidCredentials):
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
	case errors.Is(err, service.ErrAccessDenied):
		util.HandleError(w, "доступ запрещён", http.StatusForbidden)
	case errors.Is(err, service.ErrFileNotFound), errors.Is(err, platform.ErrFileNotFound):
		util.HandleError(w, "файл не найден", http.StatusNotFound)
	case errors.Is(err, service.ErrFileTooLarge):
		util.HandleError(w, "файл превышает допустимый размер", http.StatusRequestEntityTooLarge)
	case errors.Is(err, service.ErrInvalidFile), errors.Is(err, query.ErrUnknownAttribute):
		util.HandleError(w, err.Error(), http.StatusBadRequest)
	default:
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
