package services

import (
	"context"

	"github.com/zamezamo/partsbot/internal/models"
)

// StatsService отдает сводные счетчики панели оператора.
// Счетчики — проекция над таблицами заказов и каталога, без собственного состояния.
type StatsService struct {
	storage statsStorage
}

// Интерфейс хранилища для чтения статистики
type statsStorage interface {
	GetStats(ctx context.Context) (models.Stats, error)
}

// NewStatsService создает новый экземпляр StatsService.
func NewStatsService(storage statsStorage) *StatsService {
	return &StatsService{storage: storage}
}

// GetStats возвращает счетчики заказов и доступных товаров.
func (s *StatsService) GetStats(ctx context.Context) (models.Stats, error) {
	return s.storage.GetStats(ctx)
}
