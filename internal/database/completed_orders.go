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
	ErrOrderNotAccepted = errors.New("заказ еще не принят")
)

// SQL-запросы для работы с архивом выполненных заказов.
const (
	completedOrderColumns = `
		order_id,
		user_id,
		parts,
		cost,
		ordered_time,
		accepted_time,
		completed_time
	`

	InsertCompletedOrderQuery = `
		INSERT INTO
			completed_orders (order_id, user_id, parts, cost, ordered_time, accepted_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + completedOrderColumns

	SelectFirstCompletedOrderQuery = `
		SELECT ` + completedOrderColumns + `
		FROM
		    completed_orders
		WHERE
		    ($1::bigint IS NULL OR user_id = $1)
		ORDER BY
		    order_id ASC
		LIMIT 1
	`
	SelectLastCompletedOrderQuery = `
		SELECT ` + completedOrderColumns + `
		FROM
		    completed_orders
		WHERE
		    ($1::bigint IS NULL OR user_id = $1)
		ORDER BY
		    order_id DESC
		LIMIT 1
	`
	SelectNextCompletedOrderQuery = `
		SELECT ` + completedOrderColumns + `
		FROM
		    completed_orders
		WHERE
		    ($1::bigint IS NULL OR user_id = $1) AND order_id > $2
		ORDER BY
		    order_id ASC
		LIMIT 1
	`
	SelectPrevCompletedOrderQuery = `
		SELECT ` + completedOrderColumns + `
		FROM
		    completed_orders
		WHERE
		    ($1::bigint IS NULL OR user_id = $1) AND order_id < $2
		ORDER BY
		    order_id DESC
		LIMIT 1
	`
)

// CompletedOrderDB представляет запись выполненного заказа из базы данных.
type CompletedOrderDB struct {
	models.CompletedOrder
}

func scanCompletedOrder(row pgx.Row) (*CompletedOrderDB, error) {
	order := &CompletedOrderDB{}

	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Parts,
		&order.Cost,
		&order.OrderedTime,
		&order.AcceptedTime,
		&order.CompletedTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска выполненного заказа: %w", err)
	}

	return order, nil
}

// CompleteConfirmedOrder атомарно переносит принятый заказ в архив выполненных.
// Снимок позиций, ordered_time и accepted_time переносятся без изменений,
// completed_time выставляется моментом переноса. Непринятый заказ выполнить нельзя.
func (d *Database) CompleteConfirmedOrder(ctx context.Context, orderID int64) (*CompletedOrderDB, error) {
	var completed *CompletedOrderDB

	err := d.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		completed, err = completeOrderTx(ctx, tx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return completed, nil
}

// completeOrderTx выполняет перенос заказа в архив внутри открытой транзакции.
func completeOrderTx(ctx context.Context, tx txExecutor, orderID int64) (*CompletedOrderDB, error) {
	order, err := scanConfirmedOrder(tx.QueryRow(ctx, SelectConfirmedOrderForUpdateQuery, orderID))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.IsAccepted {
		return nil, ErrOrderNotAccepted
	}

	completed, err := scanCompletedOrder(tx.QueryRow(
		ctx,
		InsertCompletedOrderQuery,
		order.ID,
		order.UserID,
		order.Parts,
		order.Cost,
		order.OrderedTime,
		order.AcceptedTime,
	))
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, DeleteConfirmedOrderQuery, order.ID); err != nil {
		return nil, fmt.Errorf("ошибка удаления подтвержденного заказа: %w", err)
	}

	return completed, nil
}

// FindFirstCompletedOrder возвращает первый заказ архива владельца
// (или общего архива при ownerID = nil).
func (d *Database) FindFirstCompletedOrder(ctx context.Context, ownerID *int64) (*CompletedOrderDB, error) {
	return scanCompletedOrder(d.db.QueryRow(ctx, SelectFirstCompletedOrderQuery, ownerID))
}

// FindLastCompletedOrder возвращает последний заказ архива владельца.
func (d *Database) FindLastCompletedOrder(ctx context.Context, ownerID *int64) (*CompletedOrderDB, error) {
	return scanCompletedOrder(d.db.QueryRow(ctx, SelectLastCompletedOrderQuery, ownerID))
}

// FindNextCompletedOrder возвращает следующий заказ архива после заданного.
func (d *Database) FindNextCompletedOrder(ctx context.Context, ownerID *int64, afterID int64) (*CompletedOrderDB, error) {
	return scanCompletedOrder(d.db.QueryRow(ctx, SelectNextCompletedOrderQuery, ownerID, afterID))
}

// FindPrevCompletedOrder возвращает предыдущий заказ архива перед заданным.
func (d *Database) FindPrevCompletedOrder(ctx context.Context, ownerID *int64, beforeID int64) (*CompletedOrderDB, error) {
	return scanCompletedOrder(d.db.QueryRow(ctx, SelectPrevCompletedOrderQuery, ownerID, beforeID))
}
