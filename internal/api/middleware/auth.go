package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
)

// Заголовок с ID пользователя, проставляется API-гейтвеем после аутентификации
const userIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth проверяет наличие корректного X-User-ID заголовка и кладет
// ID пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(userIDHeader)
		if rawID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
