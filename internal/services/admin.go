package services

import (
	"context"
	"errors"

	"github.com/zamezamo/partsbot/internal/database"
	"github.com/zamezamo/partsbot/internal/models"
)

// Определение пользовательских ошибок
var (
	ErrAdminNotFound = errors.New("оператор не найден")
)

// AdminService управляет статичным списком операторов.
type AdminService struct {
	storage adminStorage
}

// Интерфейс хранилища для работы с операторами
type adminStorage interface {
	FindAdmin(ctx context.Context, adminID int64) (*database.AdminDB, error)
	ToggleAdminNotifications(ctx context.Context, adminID int64) (*database.AdminDB, error)
}

// NewAdminService создает новый экземпляр AdminService.
func NewAdminService(storage adminStorage) *AdminService {
	return &AdminService{storage: storage}
}

// FindAdmin возвращает оператора по идентификатору чата, nil если чат не операторский.
func (a *AdminService) FindAdmin(ctx context.Context, adminID int64) (*models.Admin, error) {
	admin, err := a.storage.FindAdmin(ctx, adminID)
	if err != nil || admin == nil {
		return nil, err
	}
	return &admin.Admin, nil
}

// ToggleNotifications переключает флаг уведомлений оператора и возвращает
// обновленную запись.
func (a *AdminService) ToggleNotifications(ctx context.Context, adminID int64) (*models.Admin, error) {
	admin, err := a.storage.ToggleAdminNotifications(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return &admin.Admin, nil
}
