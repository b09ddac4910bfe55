package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamezamo/partsbot/internal/models"
)

func TestCancelOrderTx(t *testing.T) {
	ctx := context.Background()

	t.Run("отмена возвращает остатки и удаляет заказ", func(t *testing.T) {
		tx := newFakeTx()
		// Товар был скрыт списанием последнего остатка при подтверждении.
		tx.parts[9] = &models.Part{ID: 9, IsAvailable: false, Category: models.CategoryPolishPastes, Name: "паста", Price: 3, AvailableCount: 0}
		tx.confirmed[42] = &models.ConfirmedOrder{
			ID:     42,
			UserID: 100,
			Parts: map[string]models.CartLine{
				models.PartKey(9): {Name: "паста", Price: 3, Count: 2},
			},
			Cost:        6,
			OrderedTime: time.Now(),
		}

		cancelled, err := cancelOrderTx(ctx, tx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), cancelled.ID)

		// Остаток восстановлен по позиции, товар снова открыт для витрины.
		assert.Equal(t, 2, tx.parts[9].AvailableCount)
		assert.True(t, tx.parts[9].IsAvailable)
		assert.Empty(t, tx.confirmed)
		assert.Equal(t, []string{"lock confirmed 42", "restore part 9 x2", "delete confirmed 42"}, tx.log)
	})

	t.Run("неизвестный заказ не отменяется", func(t *testing.T) {
		tx := newFakeTx()

		_, err := cancelOrderTx(ctx, tx, 1)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestCompleteOrderTx(t *testing.T) {
	ctx := context.Background()
	orderedTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	acceptedTime := time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC)

	t.Run("принятый заказ переносится в архив с исходными метками времени", func(t *testing.T) {
		tx := newFakeTx()
		tx.parts[7] = &models.Part{ID: 7, IsAvailable: true, Category: models.CategoryAbrasives, Name: "круг", Price: 10, AvailableCount: 3}
		tx.confirmed[42] = &models.ConfirmedOrder{
			ID:     42,
			UserID: 100,
			Parts: map[string]models.CartLine{
				models.PartKey(7): {Name: "круг", Price: 10, Count: 2},
			},
			Cost:         20,
			OrderedTime:  orderedTime,
			IsAccepted:   true,
			AcceptedTime: acceptedTime,
		}

		completed, err := completeOrderTx(ctx, tx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), completed.ID)
		assert.Equal(t, orderedTime, completed.OrderedTime)
		assert.Equal(t, acceptedTime, completed.AcceptedTime)

		// Заказ ушел из списка подтвержденных, остатки не изменились.
		assert.Empty(t, tx.confirmed)
		assert.Len(t, tx.completed, 1)
		assert.Equal(t, 3, tx.parts[7].AvailableCount)
	})

	t.Run("непринятый заказ выполнить нельзя", func(t *testing.T) {
		tx := newFakeTx()
		tx.confirmed[42] = &models.ConfirmedOrder{ID: 42, UserID: 100, OrderedTime: orderedTime}

		_, err := completeOrderTx(ctx, tx, 42)
		assert.ErrorIs(t, err, ErrOrderNotAccepted)
		assert.Len(t, tx.confirmed, 1)
		assert.Empty(t, tx.completed)
	})

	t.Run("неизвестный заказ выполнить нельзя", func(t *testing.T) {
		tx := newFakeTx()

		_, err := completeOrderTx(ctx, tx, 1)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
