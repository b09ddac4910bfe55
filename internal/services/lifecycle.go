package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/zamezamo/partsbot/internal/database"
	"github.com/zamezamo/partsbot/internal/logger"
	"github.com/zamezamo/partsbot/internal/models"
)

// Определение пользовательских ошибок
var (
	ErrCartIsEmpty      = errors.New("корзина пуста")
	ErrOrderNotFound    = errors.New("заказ не найден")
	ErrOrderNotAccepted = errors.New("заказ еще не принят")
)

// Notifier получает события жизненного цикла заказа строго после их фиксации
// в хранилище. Доставка не влияет на сам переход.
type Notifier interface {
	Notify(ctx context.Context, event models.OrderEvent)
}

// OrderLifecycleService проводит заказ по состояниям:
// корзина -> подтвержден (не принят) -> подтвержден (принят) -> выполнен,
// с веткой отмены из любого подтвержденного состояния.
type OrderLifecycleService struct {
	storage  lifecycleStorage
	notifier Notifier
}

// Интерфейс хранилища для работы с жизненным циклом заказов
type lifecycleStorage interface {
	ConfirmCart(ctx context.Context, userID int64) (*database.ConfirmedOrderDB, *database.OrderDB, []models.LineCorrection, error)
	AcceptConfirmedOrder(ctx context.Context, orderID int64) (*database.ConfirmedOrderDB, error)
	CancelConfirmedOrder(ctx context.Context, orderID int64) (*database.ConfirmedOrderDB, error)
	CompleteConfirmedOrder(ctx context.Context, orderID int64) (*database.CompletedOrderDB, error)

	FindFirstConfirmedOrder(ctx context.Context, ownerID *int64) (*database.ConfirmedOrderDB, error)
	FindLastConfirmedOrder(ctx context.Context, ownerID *int64) (*database.ConfirmedOrderDB, error)
	FindNextConfirmedOrder(ctx context.Context, ownerID *int64, afterID int64) (*database.ConfirmedOrderDB, error)
	FindPrevConfirmedOrder(ctx context.Context, ownerID *int64, beforeID int64) (*database.ConfirmedOrderDB, error)

	FindFirstCompletedOrder(ctx context.Context, ownerID *int64) (*database.CompletedOrderDB, error)
	FindLastCompletedOrder(ctx context.Context, ownerID *int64) (*database.CompletedOrderDB, error)
	FindNextCompletedOrder(ctx context.Context, ownerID *int64, afterID int64) (*database.CompletedOrderDB, error)
	FindPrevCompletedOrder(ctx context.Context, ownerID *int64, beforeID int64) (*database.CompletedOrderDB, error)
}

// NewOrderLifecycleService создает новый экземпляр OrderLifecycleService.
func NewOrderLifecycleService(storage lifecycleStorage, notifier Notifier) *OrderLifecycleService {
	return &OrderLifecycleService{storage: storage, notifier: notifier}
}

// Confirm подтверждает корзину пользователя.
//
// Хранилище атомарно сверяет позиции с живым каталогом и либо создает
// подтвержденный заказ со списанием остатков, либо записывает исправленную
// корзину без создания заказа. Во втором случае результат содержит исправления,
// и корзину необходимо показать пользователю заново.
func (s *OrderLifecycleService) Confirm(ctx context.Context, userID int64) (*models.ConfirmResult, error) {
	confirmed, corrected, corrections, err := s.storage.ConfirmCart(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrCartIsEmpty) || errors.Is(err, database.ErrCartNotFound) {
			return nil, ErrCartIsEmpty
		}
		return nil, err
	}

	if corrected != nil {
		logger.Log.Info("подтверждение отклонено, корзина исправлена по каталогу",
			zap.Int64("order_id", corrected.ID),
			zap.Int64("user_id", userID),
			zap.Int("corrections", len(corrections)),
		)
		return &models.ConfirmResult{Cart: &corrected.Order, Corrections: corrections}, nil
	}

	logger.Log.Info("заказ подтвержден",
		zap.Int64("order_id", confirmed.ID),
		zap.Int64("user_id", confirmed.UserID),
		zap.Float64("cost", confirmed.Cost),
	)

	s.notifier.Notify(ctx, models.OrderEvent{
		Type:    models.OrderEventConfirmed,
		OrderID: confirmed.ID,
		UserID:  confirmed.UserID,
		Parts:   confirmed.Parts,
		Cost:    confirmed.Cost,
	})

	return &models.ConfirmResult{Confirmed: &confirmed.ConfirmedOrder}, nil
}

// Accept помечает подтвержденный заказ принятым. Остатки не изменяются.
func (s *OrderLifecycleService) Accept(ctx context.Context, orderID int64) (*models.ConfirmedOrder, error) {
	order, err := s.storage.AcceptConfirmedOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	logger.Log.Info("заказ принят",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
	)

	s.notifier.Notify(ctx, models.OrderEvent{
		Type:    models.OrderEventAccepted,
		OrderID: order.ID,
		UserID:  order.UserID,
		Parts:   order.Parts,
		Cost:    order.Cost,
	})

	return &order.ConfirmedOrder, nil
}

// Cancel удаляет подтвержденный заказ и возвращает его остатки в каталог.
// Допустим и для принятого, и для непринятого заказа.
func (s *OrderLifecycleService) Cancel(ctx context.Context, orderID int64) (*models.ConfirmedOrder, error) {
	order, err := s.storage.CancelConfirmedOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	logger.Log.Info("заказ отменен",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
	)

	s.notifier.Notify(ctx, models.OrderEvent{
		Type:    models.OrderEventCancelled,
		OrderID: order.ID,
		UserID:  order.UserID,
		Parts:   order.Parts,
		Cost:    order.Cost,
	})

	return &order.ConfirmedOrder, nil
}

// Complete переносит принятый заказ в архив выполненных.
func (s *OrderLifecycleService) Complete(ctx context.Context, orderID int64) (*models.CompletedOrder, error) {
	order, err := s.storage.CompleteConfirmedOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		if errors.Is(err, database.ErrOrderNotAccepted) {
			return nil, ErrOrderNotAccepted
		}
		return nil, err
	}

	logger.Log.Info("заказ выполнен",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", order.UserID),
	)

	s.notifier.Notify(ctx, models.OrderEvent{
		Type:    models.OrderEventCompleted,
		OrderID: order.ID,
		UserID:  order.UserID,
		Parts:   order.Parts,
		Cost:    order.Cost,
	})

	return &order.CompletedOrder, nil
}

// FirstConfirmed возвращает первый подтвержденный заказ владельца
// (весь список при ownerID = nil), nil если список пуст.
func (s *OrderLifecycleService) FirstConfirmed(ctx context.Context, ownerID *int64) (*models.ConfirmedOrder, error) {
	order, err := s.storage.FindFirstConfirmedOrder(ctx, ownerID)
	if err != nil || order == nil {
		return nil, err
	}
	return &order.ConfirmedOrder, nil
}

// StepConfirmed листает подтвержденные заказы по идентификатору с замыканием
// списка в кольцо: шаг за последний заказ возвращает первый и наоборот.
func (s *OrderLifecycleService) StepConfirmed(ctx context.Context, ownerID *int64, fromID int64, forward bool) (*models.ConfirmedOrder, error) {
	var (
		order *database.ConfirmedOrderDB
		err   error
	)

	if forward {
		order, err = s.storage.FindNextConfirmedOrder(ctx, ownerID, fromID)
		if err == nil && order == nil {
			order, err = s.storage.FindFirstConfirmedOrder(ctx, ownerID)
		}
	} else {
		order, err = s.storage.FindPrevConfirmedOrder(ctx, ownerID, fromID)
		if err == nil && order == nil {
			order, err = s.storage.FindLastConfirmedOrder(ctx, ownerID)
		}
	}

	if err != nil || order == nil {
		return nil, err
	}
	return &order.ConfirmedOrder, nil
}

// FirstCompleted возвращает первый заказ архива владельца, nil если архив пуст.
func (s *OrderLifecycleService) FirstCompleted(ctx context.Context, ownerID *int64) (*models.CompletedOrder, error) {
	order, err := s.storage.FindFirstCompletedOrder(ctx, ownerID)
	if err != nil || order == nil {
		return nil, err
	}
	return &order.CompletedOrder, nil
}

// StepCompleted листает архив выполненных заказов с замыканием списка в кольцо.
func (s *OrderLifecycleService) StepCompleted(ctx context.Context, ownerID *int64, fromID int64, forward bool) (*models.CompletedOrder, error) {
	var (
		order *database.CompletedOrderDB
		err   error
	)

	if forward {
		order, err = s.storage.FindNextCompletedOrder(ctx, ownerID, fromID)
		if err == nil && order == nil {
			order, err = s.storage.FindFirstCompletedOrder(ctx, ownerID)
		}
	} else {
		order, err = s.storage.FindPrevCompletedOrder(ctx, ownerID, fromID)
		if err == nil && order == nil {
			order, err = s.storage.FindLastCompletedOrder(ctx, ownerID)
		}
	}

	if err != nil || order == nil {
		return nil, err
	}
	return &order.CompletedOrder, nil
}
