package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zamezamo/partsbot/internal/models"
)

// SQL-запросы для работы с каталогом товаров.
// Товар считается доступным для витрины, когда is_available = TRUE и остаток положителен.
const (
	partColumns = `
		part_id,
		is_available,
		category,
		name,
		description,
		price,
		available_count,
		image
	`

	SelectPartQuery = `
		SELECT ` + partColumns + `
		FROM
		    parts
		WHERE
		    part_id = $1
	`
	SelectFirstEligiblePartQuery = `
		SELECT ` + partColumns + `
		FROM
		    parts
		WHERE
		    is_available AND available_count > 0 AND category = $1
		ORDER BY
		    part_id ASC
		LIMIT 1
	`
	SelectLastEligiblePartQuery = `
		SELECT ` + partColumns + `
		FROM
		    parts
		WHERE
		    is_available AND available_count > 0 AND category = $1
		ORDER BY
		    part_id DESC
		LIMIT 1
	`
	SelectNextEligiblePartQuery = `
		SELECT ` + partColumns + `
		FROM
		    parts
		WHERE
		    is_available AND available_count > 0 AND category = $1 AND part_id > $2
		ORDER BY
		    part_id ASC
		LIMIT 1
	`
	SelectPrevEligiblePartQuery = `
		SELECT ` + partColumns + `
		FROM
		    parts
		WHERE
		    is_available AND available_count > 0 AND category = $1 AND part_id < $2
		ORDER BY
		    part_id DESC
		LIMIT 1
	`
)

// PartDB представляет запись товара из базы данных.
type PartDB struct {
	models.Part
}

// scanPart читает запись товара из строки результата.
func scanPart(row pgx.Row) (*PartDB, error) {
	part := &PartDB{}

	err := row.Scan(
		&part.ID,
		&part.IsAvailable,
		&part.Category,
		&part.Name,
		&part.Description,
		&part.Price,
		&part.AvailableCount,
		&part.Image,
	)
	if err != nil {
		// Если товар не найден, возвращаем nil без ошибки
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска товара: %w", err)
	}

	return part, nil
}

// FindPart ищет товар по его идентификатору.
func (d *Database) FindPart(ctx context.Context, partID int64) (*PartDB, error) {
	return scanPart(d.db.QueryRow(ctx, SelectPartQuery, partID))
}

// FindFirstEligiblePart возвращает первый доступный товар категории.
func (d *Database) FindFirstEligiblePart(ctx context.Context, category models.Category) (*PartDB, error) {
	return scanPart(d.db.QueryRow(ctx, SelectFirstEligiblePartQuery, category))
}

// FindLastEligiblePart возвращает последний доступный товар категории.
func (d *Database) FindLastEligiblePart(ctx context.Context, category models.Category) (*PartDB, error) {
	return scanPart(d.db.QueryRow(ctx, SelectLastEligiblePartQuery, category))
}

// FindNextEligiblePart возвращает следующий доступный товар категории после заданного.
func (d *Database) FindNextEligiblePart(ctx context.Context, category models.Category, afterID int64) (*PartDB, error) {
	return scanPart(d.db.QueryRow(ctx, SelectNextEligiblePartQuery, category, afterID))
}

// FindPrevEligiblePart возвращает предыдущий доступный товар категории перед заданным.
func (d *Database) FindPrevEligiblePart(ctx context.Context, category models.Category, beforeID int64) (*PartDB, error) {
	return scanPart(d.db.QueryRow(ctx, SelectPrevEligiblePartQuery, category, beforeID))
}
