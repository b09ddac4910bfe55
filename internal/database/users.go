package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/zamezamo/partsbot/internal/models"
)

var (
	ErrUnknownProfileField = errors.New("неизвестное поле профиля")
)

// SQL-запросы для работы с пользователями.
const (
	UpsertUserQuery = `
		INSERT INTO
			users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username
		RETURNING
		    user_id, name, phone, address, username
	`
	SelectUserQuery = `
		SELECT
		    user_id,
		    name,
		    phone,
		    address,
		    username
		FROM
		    users
		WHERE
		    user_id = $1
	`
	UpdateUserNameQuery = `
		UPDATE users SET name = $2 WHERE user_id = $1
		RETURNING user_id, name, phone, address, username
	`
	UpdateUserPhoneQuery = `
		UPDATE users SET phone = $2 WHERE user_id = $1
		RETURNING user_id, name, phone, address, username
	`
	UpdateUserAddressQuery = `
		UPDATE users SET address = $2 WHERE user_id = $1
		RETURNING user_id, name, phone, address, username
	`
)

// UserDB представляет запись пользователя из базы данных.
type UserDB struct {
	models.User
}

func scanUser(row pgx.Row) (*UserDB, error) {
	user := &UserDB{}

	err := row.Scan(&user.ID, &user.Name, &user.Phone, &user.Address, &user.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}

	return user, nil
}

// UpsertUser создает пользователя при первом обращении или обновляет его username.
func (d *Database) UpsertUser(ctx context.Context, userID int64, username string) (*UserDB, error) {
	return scanUser(d.db.QueryRow(ctx, UpsertUserQuery, userID, username))
}

// FindUser находит пользователя по его идентификатору чата.
func (d *Database) FindUser(ctx context.Context, userID int64) (*UserDB, error) {
	return scanUser(d.db.QueryRow(ctx, SelectUserQuery, userID))
}

// UpdateUserField обновляет одно поле профиля пользователя.
func (d *Database) UpdateUserField(ctx context.Context, userID int64, field models.ProfileField, value string) (*UserDB, error) {
	var query string

	switch field {
	case models.ProfileFieldName:
		query = UpdateUserNameQuery
	case models.ProfileFieldPhone:
		query = UpdateUserPhoneQuery
	case models.ProfileFieldAddress:
		query = UpdateUserAddressQuery
	default:
		return nil, ErrUnknownProfileField
	}

	return scanUser(d.db.QueryRow(ctx, query, userID, value))
}
