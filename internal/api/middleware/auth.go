package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/FitStudio-BookingService/internal/api/handlers"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserIDHeader заголовок с идентификатором пользователя
// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку
const UserIDHeader = "X-User-ID"

// Auth извлекает ID пользователя из заголовка и кладет его в контекст
// Запросы без корректного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+UserIDHeader)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+UserIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
