package bot

import (
	"context"
	"errors"
	"strconv"

	"github.com/zamezamo/partsbot/internal/models"
	"github.com/zamezamo/partsbot/internal/services"
)

// handleStart регистрирует пользователя и открывает стартовый экран.
// Для администратора вместо стартового экрана открывается панель.
func (b *Bot) handleStart(ctx context.Context, s *Session, username string) error {
	if _, err := b.profile.TouchUser(ctx, s.ChatID, username); err != nil {
		return err
	}

	msgID := s.MsgID
	s.reset()
	s.MsgID = msgID

	admin, err := b.admins.FindAdmin(ctx, s.ChatID)
	if err != nil {
		return err
	}
	if admin != nil {
		s.IsAdmin = true
		return b.showAdminPanel(ctx, s)
	}

	return b.showStart(ctx, s)
}

func (b *Bot) handleHome(ctx context.Context, s *Session, _ models.Category) error {
	return b.showHome(ctx, s)
}

// showHome возвращает сессию на домашний экран ее роли.
func (b *Bot) showHome(ctx context.Context, s *Session) error {
	if s.IsAdmin {
		return b.showAdminPanel(ctx, s)
	}
	return b.showStart(ctx, s)
}

func (b *Bot) showStart(ctx context.Context, s *Session) error {
	user, err := b.profile.GetUser(ctx, s.ChatID)
	if err != nil {
		return err
	}

	cart, err := b.cart.GetOrCreateCart(ctx, s.ChatID)
	if err != nil {
		return err
	}

	s.State = StateStart
	return b.render(s, Screen{
		Photo:   b.imageURL(logoImage),
		Caption: startCaption(user, !cart.IsEmpty()),
		Buttons: startKeyboard(),
	})
}

func (b *Bot) handleOpenCatalog(_ context.Context, s *Session, _ models.Category) error {
	s.State = StateChooseCategory
	return b.render(s, Screen{
		Photo:   b.imageURL(catalogImage),
		Caption: chooseCategoryText,
		Buttons: chooseCategoryKeyboard(),
	})
}

func (b *Bot) handleEnterCategory(ctx context.Context, s *Session, category models.Category) error {
	part, err := b.catalog.FirstInCategory(ctx, category)
	if err != nil {
		return err
	}
	if part == nil {
		return b.showEmptyCategory(s, category)
	}

	s.Category = category
	return b.showProductCard(ctx, s, part, "")
}

func (b *Bot) showEmptyCategory(s *Session, category models.Category) error {
	s.State = StateEmptyCategory
	s.Category = category
	return b.render(s, Screen{
		Photo:   b.categoryImage(category),
		Caption: category.Label() + "\n\n" + emptyText,
		Buttons: emptyCategoryKeyboard(),
	})
}

// showProductCard показывает карточку товара с количеством из корзины.
// notice добавляет к подписи текст ошибки сверки, когда она была.
func (b *Bot) showProductCard(ctx context.Context, s *Session, part *models.Part, notice string) error {
	cart, err := b.cart.GetOrCreateCart(ctx, s.ChatID)
	if err != nil {
		return err
	}
	countInCart := cart.Parts[models.PartKey(part.ID)].Count

	s.State = StateProductCards
	s.PartID = part.ID

	photo := b.categoryImage(part.Category)
	if part.Image != "" {
		photo = b.imageURL(part.Image)
	}

	return b.render(s, Screen{
		Photo:   photo,
		Caption: partCaption(part, countInCart, notice),
		Buttons: productCardKeyboard(),
	})
}

func (b *Bot) handleCardPrev(ctx context.Context, s *Session, _ models.Category) error {
	part, err := b.catalog.PrevInCategory(ctx, s.Category, s.PartID)
	if err != nil {
		return err
	}
	if part == nil {
		return b.showEmptyCategory(s, s.Category)
	}
	return b.showProductCard(ctx, s, part, "")
}

func (b *Bot) handleCardNext(ctx context.Context, s *Session, _ models.Category) error {
	part, err := b.catalog.NextInCategory(ctx, s.Category, s.PartID)
	if err != nil {
		return err
	}
	if part == nil {
		return b.showEmptyCategory(s, s.Category)
	}
	return b.showProductCard(ctx, s, part, "")
}

func (b *Bot) handleAddOne(ctx context.Context, s *Session, _ models.Category) error {
	change, err := b.cart.AddOne(ctx, s.ChatID, s.PartID)
	if err != nil {
		return err
	}
	return b.showCartChange(ctx, s, change)
}

func (b *Bot) handleRemoveOne(ctx context.Context, s *Session, _ models.Category) error {
	change, err := b.cart.RemoveOne(ctx, s.ChatID, s.PartID)
	if err != nil {
		return err
	}
	return b.showCartChange(ctx, s, change)
}

// showCartChange перерисовывает карточку после изменения корзины. Если товар
// успел пропасть из каталога, сессия уводится на ближайший доступный товар.
func (b *Bot) showCartChange(ctx context.Context, s *Session, change *models.CartChange) error {
	if change.PartDeleted {
		return b.showPartDeleted(ctx, s)
	}
	return b.showProductCard(ctx, s, change.Part, changeNotice(change))
}

func (b *Bot) showPartDeleted(ctx context.Context, s *Session) error {
	part, err := b.catalog.NextInCategory(ctx, s.Category, s.PartID)
	if err != nil {
		return err
	}
	if part == nil {
		s.State = StateEmptyCategory
		return b.render(s, Screen{
			Photo:   b.categoryImage(s.Category),
			Caption: s.Category.Label() + "\n\n" + emptyText + partDeletedFromCatalogErrorText,
			Buttons: emptyCategoryKeyboard(),
		})
	}
	return b.showProductCard(ctx, s, part, partDeletedFromCatalogErrorText)
}

func (b *Bot) handleEnterCount(_ context.Context, s *Session, _ models.Category) error {
	s.ReturnState = StateProductCards
	s.State = StateAwaitCount
	return b.transport.EditCaption(s.ChatID, s.MsgID, enterPartsCountText, awaitInputKeyboard())
}

func (b *Bot) handleCountInput(ctx context.Context, s *Session, text string) error {
	count, err := strconv.Atoi(text)
	if err != nil {
		return err
	}

	change, err := b.cart.SetCount(ctx, s.ChatID, s.PartID, count)
	if err != nil {
		return err
	}
	return b.showCartChange(ctx, s, change)
}

func (b *Bot) handleOpenCart(ctx context.Context, s *Session, _ models.Category) error {
	return b.showCart(ctx, s, false)
}

func (b *Bot) showCart(ctx context.Context, s *Session, corrected bool) error {
	cart, err := b.cart.GetOrCreateCart(ctx, s.ChatID)
	if err != nil {
		return err
	}

	s.State = StateIntoCart
	return b.render(s, Screen{
		Photo:   b.imageURL(logoImage),
		Caption: cartCaption(cart, corrected),
		Buttons: cartKeyboard(cart.IsEmpty()),
	})
}

// handleConfirmOrder подтверждает корзину. Перед подтверждением профиль должен
// быть заполнен: недостающие поля запрашиваются по цепочке, после чего
// пользователь возвращается в корзину.
func (b *Bot) handleConfirmOrder(ctx context.Context, s *Session, _ models.Category) error {
	user, err := b.profile.GetUser(ctx, s.ChatID)
	if err != nil {
		return err
	}
	if user == nil || !user.HasCompleteProfile() {
		s.ReturnState = StateIntoCart
		return b.promptNextProfileField(ctx, s, user)
	}

	result, err := b.lifecycle.Confirm(ctx, s.ChatID)
	if err != nil {
		if errors.Is(err, services.ErrCartIsEmpty) {
			return b.showCart(ctx, s, false)
		}
		return err
	}

	if result.Confirmed == nil {
		// Корзина исправлена по живому каталогу, заказ не создан.
		return b.showCart(ctx, s, true)
	}

	return b.showHome(ctx, s)
}

// promptNextProfileField запрашивает первое незаполненное поле профиля.
// Когда все поля заполнены, сессия возвращается на исходный экран.
func (b *Bot) promptNextProfileField(ctx context.Context, s *Session, user *models.User) error {
	switch {
	case user == nil || user.Name == "":
		s.State = StateAwaitName
		s.PendingField = models.ProfileFieldName
		return b.transport.EditCaption(s.ChatID, s.MsgID, enterUserNameText, awaitInputKeyboard())
	case user.Phone == "":
		s.State = StateAwaitPhone
		s.PendingField = models.ProfileFieldPhone
		return b.transport.EditCaption(s.ChatID, s.MsgID, enterUserPhoneNumberText, awaitInputKeyboard())
	case user.Address == "":
		s.State = StateAwaitAddress
		s.PendingField = models.ProfileFieldAddress
		return b.transport.EditCaption(s.ChatID, s.MsgID, enterUserDeliveryAddressText, awaitInputKeyboard())
	}

	s.PendingField = ""
	if s.ReturnState == StateIntoCart {
		return b.showCart(ctx, s, false)
	}
	return b.showProfile(ctx, s)
}

func (b *Bot) handleOpenProfile(ctx context.Context, s *Session, _ models.Category) error {
	s.ReturnState = StateUserProfileEdit
	return b.showProfile(ctx, s)
}

func (b *Bot) showProfile(ctx context.Context, s *Session) error {
	user, err := b.profile.GetUser(ctx, s.ChatID)
	if err != nil {
		return err
	}
	if user == nil {
		user = &models.User{ID: s.ChatID}
	}

	s.State = StateUserProfileEdit
	return b.render(s, Screen{
		Photo:   b.imageURL(logoImage),
		Caption: profileCaption(user),
		Buttons: profileKeyboard(),
	})
}

func (b *Bot) handleEditName(_ context.Context, s *Session, _ models.Category) error {
	s.ReturnState = StateUserProfileEdit
	s.State = StateAwaitName
	s.PendingField = models.ProfileFieldName
	return b.transport.EditCaption(s.ChatID, s.MsgID, enterUserNameText, awaitInputKeyboard())
}

func (b *Bot) handleEditPhone(_ context.Context, s *Session, _ models.Category) error {
	s.ReturnState = StateUserProfileEdit
	s.State = StateAwaitPhone
	s.PendingField = models.ProfileFieldPhone
	return b.transport.EditCaption(s.ChatID, s.MsgID, enterUserPhoneNumberText, awaitInputKeyboard())
}

func (b *Bot) handleEditAddress(_ context.Context, s *Session, _ models.Category) error {
	s.ReturnState = StateUserProfileEdit
	s.State = StateAwaitAddress
	s.PendingField = models.ProfileFieldAddress
	return b.transport.EditCaption(s.ChatID, s.MsgID, enterUserDeliveryAddressText, awaitInputKeyboard())
}

// handleProfileInput сохраняет поле профиля. В режиме цепочки перед
// подтверждением заказа дальше запрашивается следующее незаполненное поле.
func (b *Bot) handleProfileInput(ctx context.Context, s *Session, field models.ProfileField, value string) error {
	user, err := b.profile.UpdateProfileField(ctx, s.ChatID, field, value)
	if err != nil {
		return err
	}

	s.PendingField = ""
	if s.ReturnState == StateIntoCart {
		return b.promptNextProfileField(ctx, s, user)
	}
	return b.showProfile(ctx, s)
}

// handleCancelInput прерывает ожидание ввода и возвращает исходный экран.
func (b *Bot) handleCancelInput(ctx context.Context, s *Session, _ models.Category) error {
	s.PendingField = ""

	switch s.ReturnState {
	case StateProductCards:
		part, err := b.catalog.FindPart(ctx, s.PartID)
		if err != nil {
			return err
		}
		if part == nil || !part.IsEligible() {
			return b.showPartDeleted(ctx, s)
		}
		return b.showProductCard(ctx, s, part, "")
	case StateIntoCart:
		return b.showCart(ctx, s, false)
	case StateUserProfileEdit:
		return b.showProfile(ctx, s)
	}
	return b.showHome(ctx, s)
}

// ordersOwner ограничивает списки заказов владельцем. Администратор видит
// заказы всех пользователей.
func (b *Bot) ordersOwner(s *Session) *int64 {
	if s.IsAdmin {
		return nil
	}
	return &s.ChatID
}

func (b *Bot) handleMyOrders(ctx context.Context, s *Session, _ models.Category) error {
	order, err := b.lifecycle.FirstConfirmed(ctx, b.ordersOwner(s))
	if err != nil {
		return err
	}
	if order == nil {
		return b.showEmptyConfirmedList(s)
	}
	return b.showConfirmedOrder(s, order)
}

func (b *Bot) handleOrdersPrev(ctx context.Context, s *Session, _ models.Category) error {
	return b.stepConfirmed(ctx, s, false)
}

func (b *Bot) handleOrdersNext(ctx context.Context, s *Session, _ models.Category) error {
	return b.stepConfirmed(ctx, s, true)
}

func (b *Bot) stepConfirmed(ctx context.Context, s *Session, forward bool) error {
	order, err := b.lifecycle.StepConfirmed(ctx, b.ordersOwner(s), s.OrderID, forward)
	if err != nil {
		return err
	}
	if order == nil {
		return b.showEmptyConfirmedList(s)
	}
	return b.showConfirmedOrder(s, order)
}

func (b *Bot) showConfirmedOrder(s *Session, order *models.ConfirmedOrder) error {
	s.State = StateConfirmedOrderList
	s.OrderID = order.ID
	return b.render(s, Screen{
		Photo:   b.imageURL(logoImage),
		Caption: confirmedOrderCaption(order, s.IsAdmin),
		Buttons: confirmedOrdersKeyboard(s.IsAdmin, order.IsAccepted),
	})
}

func (b *Bot) showEmptyConfirmedList(s *Session) error {
	header := confirmedOrdersText
	if s.IsAdmin {
		header = allConfirmedOrdersText
	}

	s.State = StateConfirmedOrderList
	s.OrderID = 0
	return b.render(s, Screen{
		Photo:   b.imageURL(logoImage),
		Caption: emptyListCaption(header),
		Buttons: emptyOrdersKeyboard(),
	})
}

func (b *Bot) handleMyArchive(ctx context.Context, s *Session, _ models.Category) error {
	order, err := b.lifecycle.FirstCompleted(ctx, b.ordersOwner(s))
	if err != nil {
		return err
	}
	if order == nil {
		return b.showEmptyCompletedList(s)
	}
	return b.showCompletedOrder(s, order)
}

func (b *Bot) handleArchivePrev(ctx context.Context, s *Session, _ models.Category) error {
	return b.stepCompleted(ctx, s, false)
}

func (b *Bot) handleArchiveNext(ctx context.Context, s *Session, _ models.Category) error {
	return b.stepCompleted(ctx, s, true)
}

func (b *Bot) stepCompleted(ctx context.Context, s *Session, forward bool) error {
	order, err := b.lifecycle.StepCompleted(ctx, b.ordersOwner(s), s.OrderID, forward)
	if err != nil {
		return err
	}
	if order == nil {
		return b.showEmptyCompletedList(s)
	}
	return b.showCompletedOrder(s, order)
}

func (b *Bot) showCompletedOrder(s *Session, order *models.CompletedOrder) error {
	s.State = StateCompletedOrderList
	s.OrderID = order.ID
	return b.render(s, Screen{
		Photo:   b.imageURL(logoImage),
		Caption: completedOrderCaption(order, s.IsAdmin),
		Buttons: completedOrdersKeyboard(),
	})
}

func (b *Bot) showEmptyCompletedList(s *Session) error {
	s.State = StateCompletedOrderList
	s.OrderID = 0
	return b.render(s, Screen{
		Photo:   b.imageURL(logoImage),
		Caption: emptyListCaption(completedOrdersText),
		Buttons: emptyArchiveKeyboard(),
	})
}

// handleClose убирает экран бота из чата и завершает сессию.
func (b *Bot) handleClose(_ context.Context, s *Session, _ models.Category) error {
	if s.MsgID != 0 {
		_ = b.transport.DeleteMessage(s.ChatID, s.MsgID)
	}
	s.reset()
	s.State = StateEnd
	return nil
}
