package security

import (
	"context"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"net/http"
)

type contextKey string

const (
	SessionSecretContextKey contextKey = "sessionSecret"
	UserContextKey          contextKey = "user"
)

// SessionMiddleware : кладёт секрет сессии из cookie в контекст, без обращения к платформе
func SessionMiddleware(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionSecretContextKey, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser : пропускает только запросы с действующей сессией, пользователь кладётся в контекст
func RequireUser(userService ports.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userService.GetCurrentUser(r.Context(), SessionSecretFromContext(r.Context()))
			if user == nil {
				util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionSecretFromContext(ctx context.Context) string {
	secret, _ := ctx.Value(SessionSecretContextKey).(string)
	return secret
}

func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserContextKey).(*model.User)
	return user
}
