package handler

import (
	"errors"
	"file-storage-server/config"
	requestresponse "file-storage-server/internal/model/requestresponse"
	"file-storage-server/internal/platform"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/security"
	"file-storage-server/internal/service"
	"file-storage-server/internal/util"
	"net/http"
	"time"
)

type AuthHandler struct {
	ports.UserService
	cookie     config.CookieConfig
	signInPath string
}

func NewAuthHandler(userService ports.UserService, cookie config.CookieConfig, signInPath string) *AuthHandler {
	return &AuthHandler{userService, cookie, signInPath}
}

// SignUp godoc
// @Summary Регистрация
// @Description Отправляет одноразовый код на почту. Запись пользователя создаётся, только если email ещё не зарегистрирован
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateAccountRequest true "ФИО и email"
// @Success 200 {object} requestresponse.AccountResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или поля"
// @Failure 429 {object} requestresponse.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/auth/sign-up [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateAccountRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	accountID, err := h.CreateAccount(r.Context(), req.FullName, req.Email)
	if err != nil {
		util.HandleError(w, "не удалось создать учётную запись", http.StatusInternalServerError)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AccountResponse{AccountID: &accountID})
}

// SignIn godoc
// @Summary Вход по email
// @Description Отправляет одноразовый код существующему пользователю. Для неизвестного email возвращает accountId = null
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.SignInRequest true "Email"
// @Success 200 {object} requestresponse.AccountResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.AccountResponse "Пользователь не найден"
// @Failure 429 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/sign-in [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SignInRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	accountID, err := h.SignInUser(r.Context(), req.Email)
	if errors.Is(err, service.ErrUserNotFound) {
		util.WriteJSON(w, http.StatusNotFound, requestresponse.AccountResponse{Error: service.ErrUserNotFound.Error()})
		return
	}
	if err != nil {
		util.HandleError(w, "не удалось выполнить вход", http.StatusInternalServerError)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AccountResponse{AccountID: &accountID})
}

// Verify godoc
// @Summary Подтверждение кода
// @Description Обменивает одноразовый код на сессию и устанавливает cookie сессии
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.VerifySecretRequest true "accountId и код"
// @Success 200 {object} requestresponse.VerifySecretResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный или просроченный код"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/verify [post]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.VerifySecretRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	session, err := h.VerifySecret(r.Context(), req.AccountID, req.Password)
	if err != nil {
		if errors.Is(err, platform.ErrInvalidCredentials) {
			util.HandleError(w, "неверный или просроченный код", http.StatusUnauthorized)
			return
		}
		util.HandleError(w, "не удалось подтвердить код", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(session.Secret, session.ExpireAt))
	util.WriteJSON(w, http.StatusOK, requestresponse.VerifySecretResponse{SessionID: session.ID})
}

// Me godoc
// @Summary Текущий пользователь
// @Description Возвращает пользователя текущей сессии или null
// @Tags Authentication
// @Produce json
// @Success 200 {object} model.User
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.GetCurrentUser(r.Context(), security.SessionSecretFromContext(r.Context()))
	util.WriteJSON(w, http.StatusOK, user)
}

// SignOut godoc
// @Summary Выход
// @Description Удаляет сессию, очищает cookie и перенаправляет на страницу входа, даже если удалить сессию не удалось
// @Tags Authentication
// @Success 303 {string} string "Перенаправление на страницу входа"
// @Router /api/auth/sign-out [post]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.SignOutUser(r.Context(), security.SessionSecretFromContext(r.Context())); err != nil {
		util.Sugar.Warnw("[AuthHandler] сессия не удалена", "error", err)
	}

	cookie := h.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	http.Redirect(w, r, h.signInPath, http.StatusSeeOther)
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cookie.Secure,
	}
}
