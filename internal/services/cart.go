package services

import (
	"context"
	"fmt"

	"github.com/zamezamo/partsbot/internal/database"
	"github.com/zamezamo/partsbot/internal/models"
)

// CartService управляет открытой корзиной пользователя.
//
// Каждое изменение количества сверяется с живой записью товара, а не с кэшем
// сессии: корзина никогда не хранит больше товара, чем есть на складе в момент
// изменения. При этом остаток не резервируется — несколько корзин могут
// одновременно ссылаться на один и тот же остаток до подтверждения заказа.
type CartService struct {
	storage cartStorage
}

// Интерфейс хранилища для работы с корзиной
type cartStorage interface {
	GetOrCreateCart(ctx context.Context, userID int64) (*database.OrderDB, error)
	UpdateCartParts(ctx context.Context, order *database.OrderDB) error
	FindPart(ctx context.Context, partID int64) (*database.PartDB, error)
}

// NewCartService создает новый экземпляр CartService.
func NewCartService(storage cartStorage) *CartService {
	return &CartService{storage: storage}
}

// GetOrCreateCart возвращает открытую корзину пользователя, создавая ее при отсутствии.
func (c *CartService) GetOrCreateCart(ctx context.Context, userID int64) (*models.Order, error) {
	cart, err := c.storage.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &cart.Order, nil
}

// AddOne увеличивает количество товара в корзине на единицу.
func (c *CartService) AddOne(ctx context.Context, userID, partID int64) (*models.CartChange, error) {
	return c.changeCount(ctx, userID, partID, +1, false)
}

// RemoveOne уменьшает количество товара в корзине на единицу.
// Количество, достигшее нуля, удаляет позицию целиком.
func (c *CartService) RemoveOne(ctx context.Context, userID, partID int64) (*models.CartChange, error) {
	return c.changeCount(ctx, userID, partID, -1, false)
}

// SetCount выставляет точное количество товара в корзине.
// Ноль и отрицательные значения удаляют позицию.
func (c *CartService) SetCount(ctx context.Context, userID, partID int64, count int) (*models.CartChange, error) {
	return c.changeCount(ctx, userID, partID, count, true)
}

// changeCount применяет изменение количества к позиции корзины, сверяясь с живой
// записью товара. delta трактуется как приращение либо как абсолютное значение.
func (c *CartService) changeCount(ctx context.Context, userID, partID int64, delta int, absolute bool) (*models.CartChange, error) {
	cart, err := c.storage.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	part, err := c.storage.FindPart(ctx, partID)
	if err != nil {
		return nil, err
	}

	if cart.Parts == nil {
		cart.Parts = make(map[string]models.CartLine)
	}

	key := models.PartKey(partID)
	line, inCart := cart.Parts[key]

	// Товар убран из каталога: позиция удаляется, изменение не применяется.
	if part == nil || !part.IsAvailable {
		change := &models.CartChange{Order: &cart.Order, PartDeleted: true}
		if inCart {
			delete(cart.Parts, key)
			if err := c.storage.UpdateCartParts(ctx, cart); err != nil {
				return nil, fmt.Errorf("ошибка удаления позиции корзины: %w", err)
			}
		}
		return change, nil
	}

	desired := line.Count + delta
	if absolute {
		desired = delta
	}
	if desired < 0 {
		desired = 0
	}

	change := &models.CartChange{Order: &cart.Order, Part: &part.Part}

	count := desired
	if count > part.AvailableCount {
		count = part.AvailableCount
		change.NotEnoughCount = true
	}
	change.Count = count

	if count == 0 {
		if inCart {
			delete(cart.Parts, key)
			if err := c.storage.UpdateCartParts(ctx, cart); err != nil {
				return nil, fmt.Errorf("ошибка удаления позиции корзины: %w", err)
			}
		}
		return change, nil
	}

	// Позиция перезаписывается свежим снимком товара: цена и описание могли
	// измениться с момента добавления.
	cart.Parts[key] = models.NewCartLine(&part.Part, count)
	if err := c.storage.UpdateCartParts(ctx, cart); err != nil {
		return nil, fmt.Errorf("ошибка обновления позиции корзины: %w", err)
	}

	return change, nil
}
