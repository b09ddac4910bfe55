package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/zamezamo/partsbot/internal/database"
	"github.com/zamezamo/partsbot/internal/logger"
	"github.com/zamezamo/partsbot/internal/models"
)

// messageSender доставляет текстовое сообщение в чат. Реализуется транспортом бота.
type messageSender interface {
	SendText(chatID int64, text string) error
}

// Интерфейс хранилища для рассылки уведомлений
type notifierStorage interface {
	FindNotifiedAdmins(ctx context.Context) ([]database.AdminDB, error)
}

// NotifierService рассылает уведомления о событиях жизненного цикла заказа.
//
// Рассылка выполняется по принципу "наилучших усилий": событие публикуется после
// фиксации перехода в хранилище, сбой доставки одному получателю не мешает
// остальным и никогда не откатывает сам переход.
type NotifierService struct {
	sender  messageSender
	storage notifierStorage
}

// NewNotifierService создает новый экземпляр NotifierService.
func NewNotifierService(sender messageSender, storage notifierStorage) *NotifierService {
	return &NotifierService{sender: sender, storage: storage}
}

// Notify доставляет событие владельцу заказа, а для новых заказов — также всем
// операторам с включенными уведомлениями. Ошибки доставки собираются и логируются.
func (n *NotifierService) Notify(ctx context.Context, event models.OrderEvent) {
	var errs *multierror.Error

	if text := ownerText(event); text != "" {
		if err := n.sender.SendText(event.UserID, text); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("владелец %d: %w", event.UserID, err))
		}
	}

	if event.Type == models.OrderEventConfirmed {
		admins, err := n.storage.FindNotifiedAdmins(ctx)
		if err != nil {
			errs = multierror.Append(errs, err)
		}

		text := adminText(event)
		for _, admin := range admins {
			if err := n.sender.SendText(admin.ID, text); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("оператор %d: %w", admin.ID, err))
			}
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		logger.Log.Warn("часть уведомлений не доставлена",
			zap.Int64("order_id", event.OrderID),
			zap.String("event", string(event.Type)),
			zap.Error(err),
		)
	}
}

// renderParts возвращает перечень позиций заказа, по строке на позицию,
// в порядке возрастания идентификаторов товаров.
func renderParts(parts map[string]models.CartLine) string {
	keys := make([]string, 0, len(parts))
	for key := range parts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		line := parts[key]
		fmt.Fprintf(&b, "• %s — %d шт. x %.2f р.\n", line.Name, line.Count, line.Price)
	}
	return b.String()
}

func ownerText(event models.OrderEvent) string {
	switch event.Type {
	case models.OrderEventConfirmed:
		return fmt.Sprintf(
			"✅ заказ №%d оформлен\n\n%s\nитого: %.2f р.\nожидайте подтверждения оператором",
			event.OrderID, renderParts(event.Parts), event.Cost,
		)
	case models.OrderEventAccepted:
		return fmt.Sprintf("🕓 заказ №%d принят в работу", event.OrderID)
	case models.OrderEventCancelled:
		return fmt.Sprintf(
			"❌ заказ №%d отменен\n\nтовары возвращены в каталог:\n%s",
			event.OrderID, renderParts(event.Parts),
		)
	case models.OrderEventCompleted:
		return fmt.Sprintf("🎉 заказ №%d выполнен, спасибо за покупку!", event.OrderID)
	}
	return ""
}

func adminText(event models.OrderEvent) string {
	return fmt.Sprintf(
		"🆕 новый заказ №%d от пользователя %d\n\n%s\nитого: %.2f р.",
		event.OrderID, event.UserID, renderParts(event.Parts), event.Cost,
	)
}
