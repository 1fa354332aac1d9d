// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

type userIDKey struct{}

// Auth требует заголовок X-User-ID на защищённых маршрутах и кладёт его
// значение в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

// UserID извлекает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok
}
