package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/zamezamo/partsbot/internal/middlewares"
	"github.com/zamezamo/partsbot/internal/models"
	"github.com/zamezamo/partsbot/internal/services"
)

// Login обрабатывает запрос на вход администратора и возвращает JWT токен при
// успешной авторизации.
func Login(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.AdminCredentials](w, r)

	authService := middlewares.GetServiceFromContext[models.AdminAuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)

	if data.Password == nil || *data.Password == "" {
		http.Error(w, "Запрос не содержит пароль", http.StatusBadRequest)
		return
	}

	if err := (*authService).Login(*data.Password); err != nil {
		if errors.Is(err, services.ErrPasswordIsIncorrect) {
			http.Error(w, "Неверный пароль", http.StatusUnauthorized)
			return
		}

		http.Error(w, fmt.Sprintf("Произошла ошибка при входе: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	token, err := (*jwtService).GenerateJWT("admin")
	if err != nil {
		http.Error(w, fmt.Sprintf("Произошла ошибка при генерации jwt токена: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
}
