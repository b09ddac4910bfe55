package services

import (
	"context"

	"github.com/zamezamo/partsbot/internal/database"
	"github.com/zamezamo/partsbot/internal/models"
)

// ProfileService управляет профилями покупателей.
type ProfileService struct {
	storage profileStorage
}

// Интерфейс хранилища для работы с профилями
type profileStorage interface {
	UpsertUser(ctx context.Context, userID int64, username string) (*database.UserDB, error)
	FindUser(ctx context.Context, userID int64) (*database.UserDB, error)
	UpdateUserField(ctx context.Context, userID int64, field models.ProfileField, value string) (*database.UserDB, error)
}

// NewProfileService создает новый экземпляр ProfileService.
func NewProfileService(storage profileStorage) *ProfileService {
	return &ProfileService{storage: storage}
}

// TouchUser создает пользователя при первом обращении, для существующего
// обновляет username. Пользователи никогда не удаляются.
func (p *ProfileService) TouchUser(ctx context.Context, userID int64, username string) (*models.User, error) {
	user, err := p.storage.UpsertUser(ctx, userID, username)
	if err != nil {
		return nil, err
	}
	return &user.User, nil
}

// GetUser возвращает профиль пользователя, nil если пользователь еще не обращался.
func (p *ProfileService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := p.storage.FindUser(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	return &user.User, nil
}

// UpdateProfileField обновляет одно поле профиля. Валидация значения выполняется
// на границе ввода, до вызова сервиса.
func (p *ProfileService) UpdateProfileField(ctx context.Context, userID int64, field models.ProfileField, value string) (*models.User, error) {
	user, err := p.storage.UpdateUserField(ctx, userID, field, value)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &user.User, nil
}
