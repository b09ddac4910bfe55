package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zamezamo/partsbot/internal/models"
)

type key int

const (
	AuthServiceKey key = iota
	JwtServiceKey
	StatsServiceKey
	UpdateSinkKey
)

// ServiceInjectorMiddleware кладет сервисы в контекст запроса, чтобы обработчики
// могли получить их по ключу.
func ServiceInjectorMiddleware(
	authService models.AdminAuthService,
	jwtService models.JWTService,
	statsService models.StatsService,
	updateSink models.UpdateSink,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), AuthServiceKey, authService)
			ctx = context.WithValue(ctx, JwtServiceKey, jwtService)
			ctx = context.WithValue(ctx, StatsServiceKey, statsService)
			ctx = context.WithValue(ctx, UpdateSinkKey, updateSink)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetServiceFromContext извлекает сервис из контекста запроса по ключу.
// В случае ошибки возвращает HTTP 500 и nil.
func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Сервис не найден в контексте по ключу %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
