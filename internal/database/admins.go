package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zamezamo/partsbot/internal/models"
)

// SQL-запросы для работы с операторами.
const (
	SelectAdminQuery = `
		SELECT
		    admin_id,
		    is_notification_enabled
		FROM
		    admins
		WHERE
		    admin_id = $1
	`
	ToggleAdminNotificationsQuery = `
		UPDATE
			admins
		SET
			is_notification_enabled = NOT is_notification_enabled
		WHERE
		    admin_id = $1
		RETURNING
		    admin_id, is_notification_enabled
	`
	SelectNotifiedAdminsQuery = `
		SELECT
		    admin_id,
		    is_notification_enabled
		FROM
		    admins
		WHERE
		    is_notification_enabled
	`
)

// AdminDB представляет запись оператора из базы данных.
type AdminDB struct {
	models.Admin
}

func scanAdmin(row pgx.Row) (*AdminDB, error) {
	admin := &AdminDB{}

	if err := row.Scan(&admin.ID, &admin.IsNotificationEnabled); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска оператора: %w", err)
	}

	return admin, nil
}

// FindAdmin находит оператора по его идентификатору чата.
func (d *Database) FindAdmin(ctx context.Context, adminID int64) (*AdminDB, error) {
	return scanAdmin(d.db.QueryRow(ctx, SelectAdminQuery, adminID))
}

// ToggleAdminNotifications переключает флаг уведомлений оператора.
func (d *Database) ToggleAdminNotifications(ctx context.Context, adminID int64) (*AdminDB, error) {
	return scanAdmin(d.db.QueryRow(ctx, ToggleAdminNotificationsQuery, adminID))
}

// FindNotifiedAdmins возвращает всех операторов с включенными уведомлениями.
func (d *Database) FindNotifiedAdmins(ctx context.Context) ([]AdminDB, error) {
	var result []AdminDB

	rows, err := d.db.Query(ctx, SelectNotifiedAdminsQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска операторов с уведомлениями: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item AdminDB
		if err := rows.Scan(&item.ID, &item.IsNotificationEnabled); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с оператором: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}
