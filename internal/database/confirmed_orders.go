package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zamezamo/partsbot/internal/models"
)

// Определение пользовательских ошибок
var (
	ErrOrderNotFound = errors.New("заказ не найден")
)

// SQL-запросы для работы с подтвержденными заказами.
// Подтвержденный заказ наследует идентификатор корзины, из которой был создан.
const (
	confirmedOrderColumns = `
		order_id,
		user_id,
		parts,
		cost,
		ordered_time,
		is_accepted,
		accepted_time
	`

	InsertConfirmedOrderQuery = `
		INSERT INTO
			confirmed_orders (order_id, user_id, parts, cost)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + confirmedOrderColumns

	SelectConfirmedOrderQuery = `
		SELECT ` + confirmedOrderColumns + `
		FROM
		    confirmed_orders
		WHERE
		    order_id = $1
	`
	SelectConfirmedOrderForUpdateQuery = SelectConfirmedOrderQuery + `
		FOR UPDATE
	`
	// AcceptConfirmedOrderQuery идемпотентен: повторное принятие не сдвигает accepted_time.
	AcceptConfirmedOrderQuery = `
		UPDATE
			confirmed_orders
		SET
			accepted_time = CASE WHEN is_accepted THEN accepted_time ELSE now() END,
			is_accepted = TRUE
		WHERE
		    order_id = $1
		RETURNING ` + confirmedOrderColumns

	DeleteConfirmedOrderQuery = `
		DELETE FROM
			confirmed_orders
		WHERE
		    order_id = $1
	`

	// Запросы листания: владелец NULL означает общий список для оператора.
	SelectFirstConfirmedOrderQuery = `
		SELECT ` + confirmedOrderColumns + `
		FROM
		    confirmed_orders
		WHERE
		    ($1::bigint IS NULL OR user_id = $1)
		ORDER BY
		    order_id ASC
		LIMIT 1
	`
	SelectLastConfirmedOrderQuery = `
		SELECT ` + confirmedOrderColumns + `
		FROM
		    confirmed_orders
		WHERE
		    ($1::bigint IS NULL OR user_id = $1)
		ORDER BY
		    order_id DESC
		LIMIT 1
	`
	SelectNextConfirmedOrderQuery = `
		SELECT ` + confirmedOrderColumns + `
		FROM
		    confirmed_orders
		WHERE
		    ($1::bigint IS NULL OR user_id = $1) AND order_id > $2
		ORDER BY
		    order_id ASC
		LIMIT 1
	`
	SelectPrevConfirmedOrderQuery = `
		SELECT ` + confirmedOrderColumns + `
		FROM
		    confirmed_orders
		WHERE
		    ($1::bigint IS NULL OR user_id = $1) AND order_id < $2
		ORDER BY
		    order_id DESC
		LIMIT 1
	`
)

// ConfirmedOrderDB представляет запись подтвержденного заказа из базы данных.
type ConfirmedOrderDB struct {
	models.ConfirmedOrder
}

func scanConfirmedOrder(row pgx.Row) (*ConfirmedOrderDB, error) {
	order := &ConfirmedOrderDB{}

	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Parts,
		&order.Cost,
		&order.OrderedTime,
		&order.IsAccepted,
		&order.AcceptedTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска подтвержденного заказа: %w", err)
	}

	return order, nil
}

// AcceptConfirmedOrder помечает заказ принятым и возвращает обновленную запись.
func (d *Database) AcceptConfirmedOrder(ctx context.Context, orderID int64) (*ConfirmedOrderDB, error) {
	order, err := scanConfirmedOrder(d.db.QueryRow(ctx, AcceptConfirmedOrderQuery, orderID))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CancelConfirmedOrder атомарно удаляет подтвержденный заказ и возвращает остатки
// его позиций обратно в каталог. Товары снова открываются для витрины.
func (d *Database) CancelConfirmedOrder(ctx context.Context, orderID int64) (*ConfirmedOrderDB, error) {
	var cancelled *ConfirmedOrderDB

	err := d.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		cancelled, err = cancelOrderTx(ctx, tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

// cancelOrderTx выполняет отмену подтвержденного заказа внутри открытой транзакции.
func cancelOrderTx(ctx context.Context, tx txExecutor, orderID int64) (*ConfirmedOrderDB, error) {
	order, err := scanConfirmedOrder(tx.QueryRow(ctx, SelectConfirmedOrderForUpdateQuery, orderID))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	for _, id := range sortedPartIDs(order.Parts) {
		line := order.Parts[models.PartKey(id)]
		if _, err := tx.Exec(ctx, RestorePartCountQuery, id, line.Count); err != nil {
			return nil, fmt.Errorf("ошибка возврата остатка товара %d: %w", id, err)
		}
	}

	if _, err := tx.Exec(ctx, DeleteConfirmedOrderQuery, order.ID); err != nil {
		return nil, fmt.Errorf("ошибка удаления подтвержденного заказа: %w", err)
	}

	return order, nil
}

// FindFirstConfirmedOrder возвращает первый подтвержденный заказ владельца
// (или общего списка при ownerID = nil).
func (d *Database) FindFirstConfirmedOrder(ctx context.Context, ownerID *int64) (*ConfirmedOrderDB, error) {
	return scanConfirmedOrder(d.db.QueryRow(ctx, SelectFirstConfirmedOrderQuery, ownerID))
}

// FindLastConfirmedOrder возвращает последний подтвержденный заказ владельца.
func (d *Database) FindLastConfirmedOrder(ctx context.Context, ownerID *int64) (*ConfirmedOrderDB, error) {
	return scanConfirmedOrder(d.db.QueryRow(ctx, SelectLastConfirmedOrderQuery, ownerID))
}

// FindNextConfirmedOrder возвращает следующий подтвержденный заказ после заданного.
func (d *Database) FindNextConfirmedOrder(ctx context.Context, ownerID *int64, afterID int64) (*ConfirmedOrderDB, error) {
	return scanConfirmedOrder(d.db.QueryRow(ctx, SelectNextConfirmedOrderQuery, ownerID, afterID))
}

// FindPrevConfirmedOrder возвращает предыдущий подтвержденный заказ перед заданным.
func (d *Database) FindPrevConfirmedOrder(ctx context.Context, ownerID *int64, beforeID int64) (*ConfirmedOrderDB, error) {
	return scanConfirmedOrder(d.db.QueryRow(ctx, SelectPrevConfirmedOrderQuery, ownerID, beforeID))
}
