package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamezamo/partsbot/internal/database"
	"github.com/zamezamo/partsbot/internal/models"
)

// fakeCartStorage хранит корзину и каталог в памяти.
type fakeCartStorage struct {
	cart    *database.OrderDB
	parts   map[int64]*database.PartDB
	updates int
}

func (f *fakeCartStorage) GetOrCreateCart(_ context.Context, userID int64) (*database.OrderDB, error) {
	if f.cart == nil {
		f.cart = &database.OrderDB{Order: models.Order{ID: 1, UserID: userID, Parts: map[string]models.CartLine{}}}
	}
	return f.cart, nil
}

func (f *fakeCartStorage) UpdateCartParts(_ context.Context, order *database.OrderDB) error {
	f.cart = order
	f.updates++
	return nil
}

func (f *fakeCartStorage) FindPart(_ context.Context, partID int64) (*database.PartDB, error) {
	return f.parts[partID], nil
}

func newFakeCartStorage(parts ...*database.PartDB) *fakeCartStorage {
	storage := &fakeCartStorage{parts: map[int64]*database.PartDB{}}
	for _, part := range parts {
		storage.parts[part.ID] = part
	}
	return storage
}

func TestCartServiceAddOne(t *testing.T) {
	ctx := context.Background()
	storage := newFakeCartStorage(
		&database.PartDB{Part: models.Part{ID: 7, IsAvailable: true, Name: "паста", Price: 10, AvailableCount: 2}},
	)
	service := NewCartService(storage)

	change, err := service.AddOne(ctx, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, change.Count)
	assert.False(t, change.NotEnoughCount)
	assert.Equal(t, 1, storage.cart.Parts["7"].Count)

	change, err = service.AddOne(ctx, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, change.Count)

	// Остаток исчерпан: количество урезается, флаг выставляется.
	change, err = service.AddOne(ctx, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, change.Count)
	assert.True(t, change.NotEnoughCount)
	assert.Equal(t, 2, storage.cart.Parts["7"].Count)
}

func TestCartServiceSetCount(t *testing.T) {
	ctx := context.Background()
	storage := newFakeCartStorage(
		&database.PartDB{Part: models.Part{ID: 7, IsAvailable: true, Name: "паста", Price: 10, AvailableCount: 3}},
	)
	service := NewCartService(storage)

	// Запрошено больше остатка: выставляется максимально доступное количество.
	change, err := service.SetCount(ctx, 100, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, change.Count)
	assert.True(t, change.NotEnoughCount)
	assert.Equal(t, 3, storage.cart.Parts["7"].Count)

	// Ноль удаляет позицию целиком.
	change, err = service.SetCount(ctx, 100, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, change.Count)
	assert.NotContains(t, storage.cart.Parts, "7")
}

func TestCartServiceRemoveOne(t *testing.T) {
	ctx := context.Background()
	storage := newFakeCartStorage(
		&database.PartDB{Part: models.Part{ID: 7, IsAvailable: true, Name: "паста", Price: 10, AvailableCount: 3}},
	)
	service := NewCartService(storage)

	_, err := service.SetCount(ctx, 100, 7, 1)
	require.NoError(t, err)

	change, err := service.RemoveOne(ctx, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, change.Count)
	assert.NotContains(t, storage.cart.Parts, "7")

	// Повторное уменьшение отсутствующей позиции не уходит в минус.
	change, err = service.RemoveOne(ctx, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, change.Count)
}

func TestCartServicePartDeleted(t *testing.T) {
	ctx := context.Background()
	part := &database.PartDB{Part: models.Part{ID: 7, IsAvailable: true, Name: "паста", Price: 10, AvailableCount: 3}}
	storage := newFakeCartStorage(part)
	service := NewCartService(storage)

	_, err := service.SetCount(ctx, 100, 7, 2)
	require.NoError(t, err)

	// Товар сняли с продажи между действиями пользователя.
	part.IsAvailable = false

	change, err := service.AddOne(ctx, 100, 7)
	require.NoError(t, err)
	assert.True(t, change.PartDeleted)
	assert.NotContains(t, storage.cart.Parts, "7")
}

func TestCartServiceRefreshesSnapshot(t *testing.T) {
	ctx := context.Background()
	part := &database.PartDB{Part: models.Part{ID: 7, IsAvailable: true, Name: "паста", Price: 10, AvailableCount: 5}}
	storage := newFakeCartStorage(part)
	service := NewCartService(storage)

	_, err := service.SetCount(ctx, 100, 7, 2)
	require.NoError(t, err)

	// Цена изменилась после добавления: позиция перезаписывается живым снимком.
	part.Price = 15

	_, err = service.AddOne(ctx, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, float64(15), storage.cart.Parts["7"].Price)
	assert.Equal(t, 3, storage.cart.Parts["7"].Count)
}
