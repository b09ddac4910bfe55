package models

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang-jwt/jwt/v5"
)

// AdminCredentials представляет тело запроса авторизации администратора.
type AdminCredentials struct {
	Password *string `json:"password"`
}

// CartChange описывает результат изменения позиции корзины.
type CartChange struct {
	Order *Order
	// Part содержит живую запись товара после изменения; nil, если товар
	// убран из каталога.
	Part *Part
	// Count содержит итоговое количество товара в корзине.
	Count int
	// NotEnoughCount выставляется, когда запрошенное количество урезано до остатка.
	NotEnoughCount bool
	// PartDeleted выставляется, когда товар убран из каталога, а его позиция — из корзины.
	PartDeleted bool
}

// ConfirmResult описывает исход подтверждения корзины: либо создан заказ,
// либо корзина исправлена по живому каталогу и заказ не создан.
type ConfirmResult struct {
	Confirmed   *ConfirmedOrder
	Cart        *Order
	Corrections []LineCorrection
}

// ProfileField перечисляет редактируемые поля профиля пользователя.
type ProfileField string

const (
	ProfileFieldName    ProfileField = "name"
	ProfileFieldPhone   ProfileField = "phone"
	ProfileFieldAddress ProfileField = "address"
)

//go:generate mockgen -destination=mocks/mock_catalog.go . CatalogService
type CatalogService interface {
	FindPart(ctx context.Context, partID int64) (*Part, error)

	FirstInCategory(ctx context.Context, category Category) (*Part, error)

	NextInCategory(ctx context.Context, category Category, afterID int64) (*Part, error)

	PrevInCategory(ctx context.Context, category Category, beforeID int64) (*Part, error)
}

//go:generate mockgen -destination=mocks/mock_cart.go . CartService
type CartService interface {
	GetOrCreateCart(ctx context.Context, userID int64) (*Order, error)

	AddOne(ctx context.Context, userID, partID int64) (*CartChange, error)

	RemoveOne(ctx context.Context, userID, partID int64) (*CartChange, error)

	SetCount(ctx context.Context, userID, partID int64, count int) (*CartChange, error)
}

//go:generate mockgen -destination=mocks/mock_lifecycle.go . OrderLifecycleService
type OrderLifecycleService interface {
	Confirm(ctx context.Context, userID int64) (*ConfirmResult, error)

	Accept(ctx context.Context, orderID int64) (*ConfirmedOrder, error)

	Cancel(ctx context.Context, orderID int64) (*ConfirmedOrder, error)

	Complete(ctx context.Context, orderID int64) (*CompletedOrder, error)

	FirstConfirmed(ctx context.Context, ownerID *int64) (*ConfirmedOrder, error)

	StepConfirmed(ctx context.Context, ownerID *int64, fromID int64, forward bool) (*ConfirmedOrder, error)

	FirstCompleted(ctx context.Context, ownerID *int64) (*CompletedOrder, error)

	StepCompleted(ctx context.Context, ownerID *int64, fromID int64, forward bool) (*CompletedOrder, error)
}

//go:generate mockgen -destination=mocks/mock_profile.go . ProfileService
type ProfileService interface {
	TouchUser(ctx context.Context, userID int64, username string) (*User, error)

	GetUser(ctx context.Context, userID int64) (*User, error)

	UpdateProfileField(ctx context.Context, userID int64, field ProfileField, value string) (*User, error)
}

//go:generate mockgen -destination=mocks/mock_admin.go . AdminService
type AdminService interface {
	FindAdmin(ctx context.Context, adminID int64) (*Admin, error)

	ToggleNotifications(ctx context.Context, adminID int64) (*Admin, error)
}

//go:generate mockgen -destination=mocks/mock_stats.go . StatsService
type StatsService interface {
	GetStats(ctx context.Context) (Stats, error)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_auth.go . AdminAuthService
type AdminAuthService interface {
	Login(password string) error
}

//go:generate mockgen -destination=mocks/mock_sink.go . UpdateSink
type UpdateSink interface {
	Enqueue(update tgbotapi.Update)
}
