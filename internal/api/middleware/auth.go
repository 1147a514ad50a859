package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/barberbook/BarberBook-AvailabilityService/internal/api/handlers"
)

type userIDCtxKey struct{}

const userIDHeader = "X-User-ID"

// Auth проверяет наличие заголовка X-User-ID и кладет ID владельца в контекст.
// Аутентификация как таковая выполняется на API gateway; здесь мы доверяем заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "заголовок X-User-ID обязателен")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, "некорректный X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(uuid.UUID)
	return userID, ok
}
