package bot

import (
	"context"
	"errors"

	"github.com/zamezamo/partsbot/internal/models"
	"github.com/zamezamo/partsbot/internal/services"
)

func (b *Bot) showAdminPanel(ctx context.Context, s *Session) error {
	admin, err := b.admins.FindAdmin(ctx, s.ChatID)
	if err != nil {
		return err
	}
	if admin == nil {
		s.IsAdmin = false
		return b.showStart(ctx, s)
	}

	s.State = StateAdminPanel
	return b.render(s, Screen{
		Photo:   b.imageURL(logoImage),
		Caption: adminPanelCaption(),
		Buttons: adminPanelKeyboard(admin.IsNotificationEnabled),
	})
}

// Списки заказов у администратора и пользователя отличаются только областью
// видимости, их открывают общие обработчики.
func (b *Bot) handleAdminOrders(ctx context.Context, s *Session, category models.Category) error {
	return b.handleMyOrders(ctx, s, category)
}

func (b *Bot) handleAdminArchive(ctx context.Context, s *Session, category models.Category) error {
	return b.handleMyArchive(ctx, s, category)
}

func (b *Bot) handleAdminStats(ctx context.Context, s *Session, _ models.Category) error {
	if !s.IsAdmin {
		return nil
	}

	stats, err := b.stats.GetStats(ctx)
	if err != nil {
		return err
	}

	admin, err := b.admins.FindAdmin(ctx, s.ChatID)
	if err != nil {
		return err
	}
	if admin == nil {
		s.IsAdmin = false
		return b.showStart(ctx, s)
	}

	return b.transport.EditCaption(s.ChatID, s.MsgID, statsCaption(stats), adminPanelKeyboard(admin.IsNotificationEnabled))
}

func (b *Bot) handleToggleNotifications(ctx context.Context, s *Session, _ models.Category) error {
	if !s.IsAdmin {
		return nil
	}

	admin, err := b.admins.ToggleNotifications(ctx, s.ChatID)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			s.IsAdmin = false
			return b.showStart(ctx, s)
		}
		return err
	}

	return b.transport.EditCaption(s.ChatID, s.MsgID, adminPanelCaption(), adminPanelKeyboard(admin.IsNotificationEnabled))
}

func (b *Bot) handleAcceptOrder(ctx context.Context, s *Session, _ models.Category) error {
	if !s.IsAdmin {
		return nil
	}

	order, err := b.lifecycle.Accept(ctx, s.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			// Заказ успели отменить или выполнить, курсор сбрасывается на начало списка.
			return b.refreshConfirmedList(ctx, s)
		}
		return err
	}
	return b.showConfirmedOrder(s, order)
}

func (b *Bot) handleCancelOrder(ctx context.Context, s *Session, _ models.Category) error {
	if !s.IsAdmin {
		return nil
	}

	cancelled, err := b.lifecycle.Cancel(ctx, s.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return b.refreshConfirmedList(ctx, s)
		}
		return err
	}

	return b.showAfterRemoval(ctx, s, cancelled.ID)
}

func (b *Bot) handleCompleteOrder(ctx context.Context, s *Session, _ models.Category) error {
	if !s.IsAdmin {
		return nil
	}

	completed, err := b.lifecycle.Complete(ctx, s.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) || errors.Is(err, services.ErrOrderNotAccepted) {
			return b.refreshConfirmedList(ctx, s)
		}
		return err
	}

	return b.showAfterRemoval(ctx, s, completed.ID)
}

// showAfterRemoval показывает следующий выполняемый заказ после того, как
// текущий покинул список.
func (b *Bot) showAfterRemoval(ctx context.Context, s *Session, removedID int64) error {
	next, err := b.lifecycle.StepConfirmed(ctx, b.ordersOwner(s), removedID, true)
	if err != nil {
		return err
	}
	if next == nil {
		return b.showEmptyConfirmedList(s)
	}
	return b.showConfirmedOrder(s, next)
}

func (b *Bot) refreshConfirmedList(ctx context.Context, s *Session) error {
	order, err := b.lifecycle.FirstConfirmed(ctx, b.ordersOwner(s))
	if err != nil {
		return err
	}
	if order == nil {
		return b.showEmptyConfirmedList(s)
	}
	return b.showConfirmedOrder(s, order)
}
