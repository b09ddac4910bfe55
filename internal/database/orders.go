package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zamezamo/partsbot/internal/models"
)

// Определение пользовательских ошибок
var (
	ErrCartNotFound = errors.New("корзина не найдена")
	ErrCartIsEmpty  = errors.New("корзина пуста")
	ErrUserNotFound = errors.New("пользователь не найден")
)

// SQL-запросы для работы с корзинами.
// Уникальный индекс по user_id гарантирует не более одной открытой корзины на пользователя.
const (
	UpsertCartQuery = `
		INSERT INTO
			orders (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET
			user_id = EXCLUDED.user_id
		RETURNING
		    order_id, user_id, parts
	`
	SelectCartByUserQuery = `
		SELECT
		    order_id,
		    user_id,
		    parts
		FROM
		    orders
		WHERE
		    user_id = $1
	`
	SelectCartByUserForUpdateQuery = SelectCartByUserQuery + `
		FOR UPDATE
	`
	UpdateCartPartsQuery = `
		UPDATE
			orders
		SET
			parts = $2,
			cost = $3
		WHERE
		    order_id = $1
	`
	DeleteCartQuery = `
		DELETE FROM
			orders
		WHERE
		    order_id = $1
	`

	SelectPartForUpdateQuery = `
		SELECT ` + partColumns + `
		FROM
		    parts
		WHERE
		    part_id = $1
		FOR UPDATE
	`
	// ReservePartCountQuery списывает остаток товара по подтвержденной позиции.
	// Товар с нулевым остатком принудительно скрывается из каталога.
	ReservePartCountQuery = `
		UPDATE
			parts
		SET
			available_count = available_count - $2,
			is_available = CASE WHEN available_count - $2 <= 0 THEN FALSE ELSE is_available END
		WHERE
		    part_id = $1
	`
	// RestorePartCountQuery возвращает остаток товара по отмененной позиции
	// и снова открывает товар для витрины.
	RestorePartCountQuery = `
		UPDATE
			parts
		SET
			available_count = available_count + $2,
			is_available = TRUE
		WHERE
		    part_id = $1
	`
)

// OrderDB представляет запись открытой корзины из базы данных.
type OrderDB struct {
	models.Order
}

func scanCart(row pgx.Row) (*OrderDB, error) {
	order := &OrderDB{}

	if err := row.Scan(&order.ID, &order.UserID, &order.Parts); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска корзины: %w", err)
	}

	return order, nil
}

// GetOrCreateCart возвращает открытую корзину пользователя, создавая ее при отсутствии.
// Корзину можно открыть только для известного пользователя.
func (d *Database) GetOrCreateCart(ctx context.Context, userID int64) (*OrderDB, error) {
	cart, err := scanCart(d.db.QueryRow(ctx, UpsertCartQuery, userID))
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return cart, nil
}

// UpdateCartParts перезаписывает позиции корзины и ее пересчитанную стоимость.
func (d *Database) UpdateCartParts(ctx context.Context, order *OrderDB) error {
	_, err := d.db.Exec(ctx, UpdateCartPartsQuery, order.ID, order.Parts, order.Cost())
	if err != nil {
		return fmt.Errorf("ошибка обновления корзины: %w", err)
	}
	return nil
}

// sortedPartIDs возвращает идентификаторы товаров корзины по возрастанию.
// Блокировка строк товаров всегда берется в этом порядке, чтобы параллельные
// подтверждения не взаимоблокировались.
func sortedPartIDs(parts map[string]models.CartLine) []int64 {
	ids := make([]int64, 0, len(parts))
	for key := range parts {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// txExecutor покрывает операции транзакции, которые нужны телам переходов
// жизненного цикла заказа. pgx.Tx удовлетворяет интерфейсу.
type txExecutor interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// lockLiveParts блокирует и читает живые записи товаров корзины внутри транзакции.
func lockLiveParts(ctx context.Context, tx txExecutor, parts map[string]models.CartLine) (map[string]*models.Part, error) {
	live := make(map[string]*models.Part, len(parts))

	for _, id := range sortedPartIDs(parts) {
		part, err := scanPart(tx.QueryRow(ctx, SelectPartForUpdateQuery, id))
		if err != nil {
			return nil, err
		}
		if part != nil {
			live[models.PartKey(id)] = &part.Part
		}
	}

	return live, nil
}

// ConfirmCart атомарно превращает корзину пользователя в подтвержденный заказ.
//
// Внутри одной транзакции корзина и живые записи ее товаров блокируются, позиции
// сверяются с каталогом. Если сверка нашла расхождения, исправленная корзина
// записывается обратно, заказ не создается и возвращается список исправлений.
// Если расхождений нет, создается ConfirmedOrder с идентификатором корзины,
// остатки товаров списываются по позициям, корзина удаляется.
func (d *Database) ConfirmCart(ctx context.Context, userID int64) (*ConfirmedOrderDB, *OrderDB, []models.LineCorrection, error) {
	var (
		confirmed   *ConfirmedOrderDB
		corrected   *OrderDB
		corrections []models.LineCorrection
	)

	err := d.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		confirmed, corrected, corrections, err = confirmCartTx(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return confirmed, corrected, corrections, nil
}

// confirmCartTx выполняет подтверждение корзины внутри открытой транзакции.
func confirmCartTx(ctx context.Context, tx txExecutor, userID int64) (*ConfirmedOrderDB, *OrderDB, []models.LineCorrection, error) {
	cart, err := scanCart(tx.QueryRow(ctx, SelectCartByUserForUpdateQuery, userID))
	if err != nil {
		return nil, nil, nil, err
	}
	if cart == nil {
		return nil, nil, nil, ErrCartNotFound
	}
	if len(cart.Parts) == 0 {
		return nil, nil, nil, ErrCartIsEmpty
	}

	live, err := lockLiveParts(ctx, tx, cart.Parts)
	if err != nil {
		return nil, nil, nil, err
	}

	fixedParts, corrections := models.ReconcileParts(cart.Parts, live)
	if len(corrections) > 0 {
		cart.Parts = fixedParts
		if _, err := tx.Exec(ctx, UpdateCartPartsQuery, cart.ID, cart.Parts, cart.Cost()); err != nil {
			return nil, nil, nil, fmt.Errorf("ошибка записи исправленной корзины: %w", err)
		}

		return nil, cart, corrections, nil
	}

	order, err := scanConfirmedOrder(tx.QueryRow(ctx, InsertConfirmedOrderQuery, cart.ID, cart.UserID, cart.Parts, cart.Cost()))
	if err != nil {
		return nil, nil, nil, err
	}

	for _, id := range sortedPartIDs(cart.Parts) {
		line := cart.Parts[models.PartKey(id)]
		if _, err := tx.Exec(ctx, ReservePartCountQuery, id, line.Count); err != nil {
			return nil, nil, nil, fmt.Errorf("ошибка списания остатка товара %d: %w", id, err)
		}
	}

	if _, err := tx.Exec(ctx, DeleteCartQuery, cart.ID); err != nil {
		return nil, nil, nil, fmt.Errorf("ошибка удаления корзины: %w", err)
	}

	return order, nil, nil, nil
}
