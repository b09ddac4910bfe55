package database

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamezamo/partsbot/internal/models"
)

// fakeRow возвращает заранее подготовленные значения колонок.
type fakeRow struct {
	err    error
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, value := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(value))
	}
	return nil
}

// fakeTx эмулирует таблицы товаров, корзин и заказов в памяти и ведет журнал
// выполненных запросов в порядке их выполнения.
type fakeTx struct {
	parts     map[int64]*models.Part
	carts     map[int64]*models.Order // ключ — идентификатор пользователя
	confirmed map[int64]*models.ConfirmedOrder
	completed map[int64]*models.CompletedOrder
	log       []string
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		parts:     map[int64]*models.Part{},
		carts:     map[int64]*models.Order{},
		confirmed: map[int64]*models.ConfirmedOrder{},
		completed: map[int64]*models.CompletedOrder{},
	}
}

func clonedParts(parts map[string]models.CartLine) map[string]models.CartLine {
	cloned := make(map[string]models.CartLine, len(parts))
	for key, line := range parts {
		cloned[key] = line
	}
	return cloned
}

func (f *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	switch sql {
	case SelectCartByUserForUpdateQuery:
		f.log = append(f.log, "lock cart")
		cart, ok := f.carts[args[0].(int64)]
		if !ok {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{values: []any{cart.ID, cart.UserID, clonedParts(cart.Parts)}}

	case SelectPartForUpdateQuery:
		id := args[0].(int64)
		f.log = append(f.log, fmt.Sprintf("lock part %d", id))
		part, ok := f.parts[id]
		if !ok {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{values: []any{
			part.ID, part.IsAvailable, part.Category, part.Name,
			part.Description, part.Price, part.AvailableCount, part.Image,
		}}

	case InsertConfirmedOrderQuery:
		id := args[0].(int64)
		f.log = append(f.log, fmt.Sprintf("insert confirmed %d", id))
		order := &models.ConfirmedOrder{
			ID:          id,
			UserID:      args[1].(int64),
			Parts:       clonedParts(args[2].(map[string]models.CartLine)),
			Cost:        args[3].(float64),
			OrderedTime: time.Now(),
		}
		f.confirmed[id] = order
		return fakeRow{values: []any{
			order.ID, order.UserID, clonedParts(order.Parts), order.Cost,
			order.OrderedTime, order.IsAccepted, order.AcceptedTime,
		}}

	case SelectConfirmedOrderForUpdateQuery:
		id := args[0].(int64)
		f.log = append(f.log, fmt.Sprintf("lock confirmed %d", id))
		order, ok := f.confirmed[id]
		if !ok {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{values: []any{
			order.ID, order.UserID, clonedParts(order.Parts), order.Cost,
			order.OrderedTime, order.IsAccepted, order.AcceptedTime,
		}}

	case InsertCompletedOrderQuery:
		id := args[0].(int64)
		f.log = append(f.log, fmt.Sprintf("insert completed %d", id))
		order := &models.CompletedOrder{
			ID:            id,
			UserID:        args[1].(int64),
			Parts:         clonedParts(args[2].(map[string]models.CartLine)),
			Cost:          args[3].(float64),
			OrderedTime:   args[4].(time.Time),
			AcceptedTime:  args[5].(time.Time),
			CompletedTime: time.Now(),
		}
		f.completed[id] = order
		return fakeRow{values: []any{
			order.ID, order.UserID, clonedParts(order.Parts), order.Cost,
			order.OrderedTime, order.AcceptedTime, order.CompletedTime,
		}}
	}

	return fakeRow{err: fmt.Errorf("неожиданный запрос: %s", sql)}
}

func (f *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	switch sql {
	case UpdateCartPartsQuery:
		f.log = append(f.log, "rewrite cart")
		for _, cart := range f.carts {
			if cart.ID == args[0].(int64) {
				cart.Parts = clonedParts(args[1].(map[string]models.CartLine))
			}
		}

	case ReservePartCountQuery:
		id, count := args[0].(int64), args[1].(int)
		f.log = append(f.log, fmt.Sprintf("reserve part %d x%d", id, count))
		if part := f.parts[id]; part != nil {
			part.AvailableCount -= count
			if part.AvailableCount <= 0 {
				part.IsAvailable = false
			}
		}

	case RestorePartCountQuery:
		id, count := args[0].(int64), args[1].(int)
		f.log = append(f.log, fmt.Sprintf("restore part %d x%d", id, count))
		if part := f.parts[id]; part != nil {
			part.AvailableCount += count
			part.IsAvailable = true
		}

	case DeleteCartQuery:
		f.log = append(f.log, "delete cart")
		for userID, cart := range f.carts {
			if cart.ID == args[0].(int64) {
				delete(f.carts, userID)
			}
		}

	case DeleteConfirmedOrderQuery:
		id := args[0].(int64)
		f.log = append(f.log, fmt.Sprintf("delete confirmed %d", id))
		delete(f.confirmed, id)

	default:
		return pgconn.CommandTag{}, fmt.Errorf("неожиданный запрос: %s", sql)
	}

	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func TestConfirmCartTx(t *testing.T) {
	ctx := context.Background()

	t.Run("чистое подтверждение создает заказ, списывает остатки и удаляет корзину", func(t *testing.T) {
		tx := newFakeTx()
		tx.parts[7] = &models.Part{ID: 7, IsAvailable: true, Category: models.CategoryAbrasives, Name: "круг", Price: 10, AvailableCount: 5}
		tx.parts[9] = &models.Part{ID: 9, IsAvailable: true, Category: models.CategoryPolishPastes, Name: "паста", Price: 3, AvailableCount: 1}
		tx.carts[100] = &models.Order{ID: 42, UserID: 100, Parts: map[string]models.CartLine{
			models.PartKey(7): models.NewCartLine(tx.parts[7], 2),
			models.PartKey(9): models.NewCartLine(tx.parts[9], 1),
		}}

		confirmed, corrected, corrections, err := confirmCartTx(ctx, tx, 100)
		require.NoError(t, err)
		require.NotNil(t, confirmed)
		assert.Nil(t, corrected)
		assert.Empty(t, corrections)

		// Ровно один заказ, он наследует идентификатор корзины, корзина удалена.
		assert.Equal(t, int64(42), confirmed.ID)
		assert.InDelta(t, 23.0, confirmed.Cost, 1e-9)
		assert.Len(t, tx.confirmed, 1)
		assert.NotContains(t, tx.carts, int64(100))

		// Остатки списаны по позициям, товар с нулевым остатком скрыт с витрины.
		assert.Equal(t, 3, tx.parts[7].AvailableCount)
		assert.True(t, tx.parts[7].IsAvailable)
		assert.Equal(t, 0, tx.parts[9].AvailableCount)
		assert.False(t, tx.parts[9].IsAvailable)

		// Строки товаров блокируются по возрастанию идентификаторов,
		// корзина удаляется последней.
		assert.Equal(t, []string{
			"lock cart",
			"lock part 7",
			"lock part 9",
			"insert confirmed 42",
			"reserve part 7 x2",
			"reserve part 9 x1",
			"delete cart",
		}, tx.log)
	})

	t.Run("расхождение с каталогом исправляет корзину и не создает заказ", func(t *testing.T) {
		tx := newFakeTx()
		tx.parts[7] = &models.Part{ID: 7, IsAvailable: true, Category: models.CategoryAbrasives, Name: "круг", Price: 10, AvailableCount: 1}
		tx.carts[100] = &models.Order{ID: 42, UserID: 100, Parts: map[string]models.CartLine{
			models.PartKey(7): models.NewCartLine(tx.parts[7], 3),
		}}

		confirmed, corrected, corrections, err := confirmCartTx(ctx, tx, 100)
		require.NoError(t, err)
		assert.Nil(t, confirmed)
		require.NotNil(t, corrected)
		require.Len(t, corrections, 1)
		assert.True(t, corrections[0].NotEnoughCount)

		// Исправленная корзина записана обратно с урезанным количеством,
		// остаток не списан, заказ не появился.
		assert.Equal(t, 1, tx.carts[100].Parts[models.PartKey(7)].Count)
		assert.Equal(t, 1, tx.parts[7].AvailableCount)
		assert.Empty(t, tx.confirmed)
		assert.Equal(t, []string{"lock cart", "lock part 7", "rewrite cart"}, tx.log)
	})

	t.Run("пустая корзина не подтверждается", func(t *testing.T) {
		tx := newFakeTx()
		tx.carts[100] = &models.Order{ID: 42, UserID: 100, Parts: map[string]models.CartLine{}}

		_, _, _, err := confirmCartTx(ctx, tx, 100)
		assert.ErrorIs(t, err, ErrCartIsEmpty)
	})

	t.Run("отсутствующая корзина не подтверждается", func(t *testing.T) {
		tx := newFakeTx()

		_, _, _, err := confirmCartTx(ctx, tx, 200)
		assert.ErrorIs(t, err, ErrCartNotFound)
	})
}

func TestConfirmThenCancelRestoresStock(t *testing.T) {
	ctx := context.Background()

	tx := newFakeTx()
	tx.parts[7] = &models.Part{ID: 7, IsAvailable: true, Category: models.CategoryAbrasives, Name: "круг", Price: 10, AvailableCount: 1}
	tx.carts[100] = &models.Order{ID: 42, UserID: 100, Parts: map[string]models.CartLine{
		models.PartKey(7): models.NewCartLine(tx.parts[7], 1),
	}}

	confirmed, _, _, err := confirmCartTx(ctx, tx, 100)
	require.NoError(t, err)
	require.NotNil(t, confirmed)
	require.Equal(t, 0, tx.parts[7].AvailableCount)
	require.False(t, tx.parts[7].IsAvailable)

	// Отмена возвращает остаток и снова открывает товар для витрины.
	cancelled, err := cancelOrderTx(ctx, tx, confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, confirmed.ID, cancelled.ID)
	assert.Equal(t, 1, tx.parts[7].AvailableCount)
	assert.True(t, tx.parts[7].IsAvailable)
	assert.Empty(t, tx.confirmed)
}

func TestConfirmLastUnitRace(t *testing.T) {
	ctx := context.Background()

	tx := newFakeTx()
	tx.parts[7] = &models.Part{ID: 7, IsAvailable: true, Category: models.CategoryAbrasives, Name: "круг", Price: 10, AvailableCount: 1}
	tx.carts[100] = &models.Order{ID: 1, UserID: 100, Parts: map[string]models.CartLine{
		models.PartKey(7): models.NewCartLine(tx.parts[7], 1),
	}}
	tx.carts[101] = &models.Order{ID: 2, UserID: 101, Parts: map[string]models.CartLine{
		models.PartKey(7): models.NewCartLine(tx.parts[7], 1),
	}}

	first, _, _, err := confirmCartTx(ctx, tx, 100)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Второе подтверждение застает уже списанный остаток: заказ не создается,
	// корзина исправляется по живому каталогу.
	confirmed, corrected, corrections, err := confirmCartTx(ctx, tx, 101)
	require.NoError(t, err)
	assert.Nil(t, confirmed)
	require.NotNil(t, corrected)
	require.Len(t, corrections, 1)
	assert.Equal(t, int64(7), corrections[0].PartID)
	assert.Empty(t, corrected.Parts)
	assert.Len(t, tx.confirmed, 1)
}
