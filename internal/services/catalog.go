package services

import (
	"context"

	"github.com/zamezamo/partsbot/internal/database"
	"github.com/zamezamo/partsbot/internal/models"
)

// CatalogService предоставляет навигацию по доступным товарам каталога.
type CatalogService struct {
	storage catalogStorage
}

// Интерфейс хранилища для работы с каталогом
type catalogStorage interface {
	FindPart(ctx context.Context, partID int64) (*database.PartDB, error)
	FindFirstEligiblePart(ctx context.Context, category models.Category) (*database.PartDB, error)
	FindLastEligiblePart(ctx context.Context, category models.Category) (*database.PartDB, error)
	FindNextEligiblePart(ctx context.Context, category models.Category, afterID int64) (*database.PartDB, error)
	FindPrevEligiblePart(ctx context.Context, category models.Category, beforeID int64) (*database.PartDB, error)
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(storage catalogStorage) *CatalogService {
	return &CatalogService{storage: storage}
}

func toPart(part *database.PartDB) *models.Part {
	if part == nil {
		return nil
	}
	return &part.Part
}

// FindPart возвращает живую запись товара по идентификатору, nil если записи нет.
func (c *CatalogService) FindPart(ctx context.Context, partID int64) (*models.Part, error) {
	part, err := c.storage.FindPart(ctx, partID)
	if err != nil {
		return nil, err
	}
	return toPart(part), nil
}

// FirstInCategory возвращает первый доступный товар категории, nil если категория пуста.
func (c *CatalogService) FirstInCategory(ctx context.Context, category models.Category) (*models.Part, error) {
	part, err := c.storage.FindFirstEligiblePart(ctx, category)
	if err != nil {
		return nil, err
	}
	return toPart(part), nil
}

// NextInCategory возвращает следующий доступный товар категории.
// Переход за последний товар замыкается на первый.
func (c *CatalogService) NextInCategory(ctx context.Context, category models.Category, afterID int64) (*models.Part, error) {
	part, err := c.storage.FindNextEligiblePart(ctx, category, afterID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return c.FirstInCategory(ctx, category)
	}
	return toPart(part), nil
}

// PrevInCategory возвращает предыдущий доступный товар категории.
// Переход за первый товар замыкается на последний.
func (c *CatalogService) PrevInCategory(ctx context.Context, category models.Category, beforeID int64) (*models.Part, error) {
	part, err := c.storage.FindPrevEligiblePart(ctx, category, beforeID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		part, err = c.storage.FindLastEligiblePart(ctx, category)
		if err != nil {
			return nil, err
		}
	}
	return toPart(part), nil
}
