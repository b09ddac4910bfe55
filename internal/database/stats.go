package database

import (
	"context"
	"fmt"

	"github.com/zamezamo/partsbot/internal/models"
)

// SelectStatsQuery собирает сводные счетчики панели оператора одним запросом.
const SelectStatsQuery = `
	SELECT
	    (SELECT count(*) FROM confirmed_orders WHERE NOT is_accepted),
	    (SELECT count(*) FROM confirmed_orders WHERE is_accepted),
	    (SELECT count(*) FROM completed_orders),
	    (SELECT count(*) FROM parts WHERE is_available AND available_count > 0)
`

// GetStats возвращает сводные счетчики заказов и каталога.
func (d *Database) GetStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	err := d.db.QueryRow(ctx, SelectStatsQuery).Scan(
		&stats.UnacceptedOrders,
		&stats.AcceptedOrders,
		&stats.CompletedOrders,
		&stats.AvailableParts,
	)
	if err != nil {
		return models.Stats{}, fmt.Errorf("ошибка чтения статистики: %w", err)
	}

	return stats, nil
}
