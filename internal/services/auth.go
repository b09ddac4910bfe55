package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Определение пользовательских ошибок
var (
	ErrPasswordIsIncorrect = errors.New("пароль неверен")
)

// AdminAuthService проверяет пароль административного API.
// Пароль задается конфигурацией и хэшируется при старте процесса.
type AdminAuthService struct {
	passwordHash []byte
}

// NewAdminAuthService создает новый экземпляр AdminAuthService.
func NewAdminAuthService(password string) (*AdminAuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("ошибка при хэшировании пароля: %w", err)
	}
	return &AdminAuthService{passwordHash: hash}, nil
}

// Login сверяет пароль с хэшем.
func (a *AdminAuthService) Login(password string) error {
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordIsIncorrect
		}
		return fmt.Errorf("ошибка при сравнении паролей: %w", err)
	}
	return nil
}
