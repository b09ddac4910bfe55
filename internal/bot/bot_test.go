package bot

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamezamo/partsbot/internal/models"
	mock_models "github.com/zamezamo/partsbot/internal/models/mocks"
)

// fakeTransport записывает вызовы к мессенджеру вместо их отправки.
type fakeTransport struct {
	screens   []Screen
	edits     []Screen
	captions  []string
	texts     []string
	deleted   []int
	answered  []string
	nextMsgID int
}

func (f *fakeTransport) SendScreen(_ int64, screen Screen) (int, error) {
	f.screens = append(f.screens, screen)
	f.nextMsgID++
	return f.nextMsgID, nil
}

func (f *fakeTransport) EditScreen(_ int64, _ int, screen Screen) error {
	f.edits = append(f.edits, screen)
	return nil
}

func (f *fakeTransport) EditCaption(_ int64, _ int, caption string, _ [][]Button) error {
	f.captions = append(f.captions, caption)
	return nil
}

func (f *fakeTransport) SendText(_ int64, text string) error {
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeTransport) DeleteMessage(_ int64, msgID int) error {
	f.deleted = append(f.deleted, msgID)
	return nil
}

func (f *fakeTransport) AnswerCallback(callbackID string) error {
	f.answered = append(f.answered, callbackID)
	return nil
}

// lastScreen возвращает последний отправленный либо отредактированный экран.
func (f *fakeTransport) lastScreen(t *testing.T) Screen {
	t.Helper()
	if len(f.edits) > 0 {
		return f.edits[len(f.edits)-1]
	}
	require.NotEmpty(t, f.screens)
	return f.screens[len(f.screens)-1]
}

type testBot struct {
	bot       *Bot
	transport *fakeTransport
	catalog   *mock_models.MockCatalogService
	cart      *mock_models.MockCartService
	lifecycle *mock_models.MockOrderLifecycleService
	profile   *mock_models.MockProfileService
	admins    *mock_models.MockAdminService
	stats     *mock_models.MockStatsService
}

func newTestBot(t *testing.T) *testBot {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tb := &testBot{
		transport: &fakeTransport{},
		catalog:   mock_models.NewMockCatalogService(ctrl),
		cart:      mock_models.NewMockCartService(ctrl),
		lifecycle: mock_models.NewMockOrderLifecycleService(ctrl),
		profile:   mock_models.NewMockProfileService(ctrl),
		admins:    mock_models.NewMockAdminService(ctrl),
		stats:     mock_models.NewMockStatsService(ctrl),
	}

	tb.bot = New(
		tb.transport, "https://assets.test",
		tb.catalog, tb.cart, tb.lifecycle, tb.profile, tb.admins, tb.stats,
	)
	return tb
}

func callbackUpdate(chatID int64, payload string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb",
		Data:    payload,
		Message: &tgbotapi.Message{MessageID: 1, Chat: &tgbotapi.Chat{ID: chatID}},
	}}
}

func textUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 5,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: chatID},
	}}
}

func emptyCart(userID int64) *models.Order {
	return &models.Order{ID: 1, UserID: userID, Parts: map[string]models.CartLine{}}
}

func TestHandleStart(t *testing.T) {
	ctx := context.Background()
	chatID := int64(100)

	t.Run("Пользователь попадает на стартовый экран", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)

		tb.profile.EXPECT().TouchUser(gomock.Any(), chatID, "user").Return(&models.User{ID: chatID, Name: "Ян"}, nil)
		tb.admins.EXPECT().FindAdmin(gomock.Any(), chatID).Return(nil, nil)
		tb.profile.EXPECT().GetUser(gomock.Any(), chatID).Return(&models.User{ID: chatID, Name: "Ян"}, nil)
		tb.cart.EXPECT().GetOrCreateCart(gomock.Any(), chatID).Return(emptyCart(chatID), nil)

		require.NoError(t, tb.bot.handleStart(ctx, s, "user"))

		assert.Equal(t, StateStart, s.State)
		assert.False(t, s.IsAdmin)
		assert.NotZero(t, s.MsgID)
		assert.Contains(t, tb.transport.lastScreen(t).Caption, "Ян")
	})

	t.Run("Администратор попадает на панель", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)

		tb.profile.EXPECT().TouchUser(gomock.Any(), chatID, "boss").Return(&models.User{ID: chatID}, nil)
		tb.admins.EXPECT().FindAdmin(gomock.Any(), chatID).Return(&models.Admin{ID: chatID}, nil).Times(2)

		require.NoError(t, tb.bot.handleStart(ctx, s, "boss"))

		assert.Equal(t, StateAdminPanel, s.State)
		assert.True(t, s.IsAdmin)
	})
}

func TestCategoryBrowsing(t *testing.T) {
	ctx := context.Background()
	chatID := int64(100)
	part := &models.Part{ID: 7, IsAvailable: true, Category: models.CategoryAbrasives, Name: "круг", Price: 5, AvailableCount: 10}

	t.Run("Выбор категории открывает первый товар", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateChooseCategory
		s.MsgID = 1

		tb.catalog.EXPECT().FirstInCategory(gomock.Any(), models.CategoryAbrasives).Return(part, nil)
		tb.cart.EXPECT().GetOrCreateCart(gomock.Any(), chatID).Return(emptyCart(chatID), nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeCategoryAction(actChooseCategoryPick, models.CategoryAbrasives)))

		assert.Equal(t, StateProductCards, s.State)
		assert.Equal(t, int64(7), s.PartID)
		assert.Contains(t, tb.transport.lastScreen(t).Caption, "круг")
	})

	t.Run("Пустая категория показывает заглушку", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateChooseCategory
		s.MsgID = 1

		tb.catalog.EXPECT().FirstInCategory(gomock.Any(), models.CategoryOther).Return(nil, nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeCategoryAction(actChooseCategoryPick, models.CategoryOther)))

		assert.Equal(t, StateEmptyCategory, s.State)
		assert.Contains(t, tb.transport.lastScreen(t).Caption, emptyText)
	})

	t.Run("Листание за последний товар возвращает первый", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateProductCards
		s.Category = models.CategoryAbrasives
		s.PartID = 9
		s.MsgID = 1

		tb.catalog.EXPECT().NextInCategory(gomock.Any(), models.CategoryAbrasives, int64(9)).Return(part, nil)
		tb.cart.EXPECT().GetOrCreateCart(gomock.Any(), chatID).Return(emptyCart(chatID), nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actCardNext)))

		assert.Equal(t, int64(7), s.PartID)
	})
}

func TestCartActions(t *testing.T) {
	ctx := context.Background()
	chatID := int64(100)
	part := &models.Part{ID: 7, IsAvailable: true, Category: models.CategoryAbrasives, Name: "круг", Price: 5, AvailableCount: 3}

	t.Run("Добавление сверх остатка показывает предупреждение", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateProductCards
		s.Category = models.CategoryAbrasives
		s.PartID = 7
		s.MsgID = 1

		cart := emptyCart(chatID)
		cart.Parts["7"] = models.NewCartLine(part, 3)

		tb.cart.EXPECT().AddOne(gomock.Any(), chatID, int64(7)).Return(&models.CartChange{
			Order: cart, Part: part, Count: 3, NotEnoughCount: true,
		}, nil)
		tb.cart.EXPECT().GetOrCreateCart(gomock.Any(), chatID).Return(cart, nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actCardAdd)))

		caption := tb.transport.lastScreen(t).Caption
		assert.Contains(t, caption, "в корзине: 3 шт.")
		assert.Contains(t, caption, strings.TrimSpace(partNotEnoughAvailableCountErrorText))
	})

	t.Run("Удаленный товар уводит на следующую карточку", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateProductCards
		s.Category = models.CategoryAbrasives
		s.PartID = 7
		s.MsgID = 1

		next := &models.Part{ID: 8, IsAvailable: true, Category: models.CategoryAbrasives, Name: "лента", Price: 3, AvailableCount: 1}

		tb.cart.EXPECT().AddOne(gomock.Any(), chatID, int64(7)).Return(&models.CartChange{
			Order: emptyCart(chatID), PartDeleted: true,
		}, nil)
		tb.catalog.EXPECT().NextInCategory(gomock.Any(), models.CategoryAbrasives, int64(7)).Return(next, nil)
		tb.cart.EXPECT().GetOrCreateCart(gomock.Any(), chatID).Return(emptyCart(chatID), nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actCardAdd)))

		assert.Equal(t, int64(8), s.PartID)
		assert.Contains(t, tb.transport.lastScreen(t).Caption, strings.TrimSpace(partDeletedFromCatalogErrorText))
	})

	t.Run("Ввод количества через текстовое состояние", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateProductCards
		s.Category = models.CategoryAbrasives
		s.PartID = 7
		s.MsgID = 1

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actCardEnterCount)))
		assert.Equal(t, StateAwaitCount, s.State)
		assert.Contains(t, tb.transport.captions, enterPartsCountText)

		cart := emptyCart(chatID)
		cart.Parts["7"] = models.NewCartLine(part, 2)

		tb.cart.EXPECT().SetCount(gomock.Any(), chatID, int64(7), 2).Return(&models.CartChange{
			Order: cart, Part: part, Count: 2,
		}, nil)
		tb.cart.EXPECT().GetOrCreateCart(gomock.Any(), chatID).Return(cart, nil)

		tb.bot.handleUpdate(ctx, textUpdate(chatID, "2"))

		assert.Equal(t, StateProductCards, s.State)
		// Сообщение пользователя убирается из чата.
		assert.Contains(t, tb.transport.deleted, 5)
	})

	t.Run("Невалидный ввод количества удаляется без смены состояния", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateAwaitCount
		s.ReturnState = StateProductCards
		s.MsgID = 1

		tb.bot.handleUpdate(ctx, textUpdate(chatID, "много"))

		assert.Equal(t, StateAwaitCount, s.State)
		assert.Contains(t, tb.transport.deleted, 5)
	})
}

func TestConfirmOrder(t *testing.T) {
	ctx := context.Background()
	chatID := int64(100)
	completeUser := &models.User{ID: chatID, Name: "Ян", Phone: "291234567", Address: "Минск"}

	t.Run("Неполный профиль запрашивается до подтверждения", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateIntoCart
		s.MsgID = 1

		tb.profile.EXPECT().GetUser(gomock.Any(), chatID).Return(&models.User{ID: chatID, Name: "Ян"}, nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actCartConfirm)))

		assert.Equal(t, StateAwaitPhone, s.State)
		assert.Equal(t, StateIntoCart, s.ReturnState)
		assert.Contains(t, tb.transport.captions, enterUserPhoneNumberText)
	})

	t.Run("Исправленная корзина показывается заново", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateIntoCart
		s.MsgID = 1

		cart := emptyCart(chatID)
		cart.Parts["7"] = models.CartLine{Name: "круг", Price: 5, Count: 2}

		tb.profile.EXPECT().GetUser(gomock.Any(), chatID).Return(completeUser, nil)
		tb.lifecycle.EXPECT().Confirm(gomock.Any(), chatID).Return(&models.ConfirmResult{
			Cart:        cart,
			Corrections: []models.LineCorrection{{PartID: 7, NotEnoughCount: true}},
		}, nil)
		tb.cart.EXPECT().GetOrCreateCart(gomock.Any(), chatID).Return(cart, nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actCartConfirm)))

		assert.Equal(t, StateIntoCart, s.State)
		assert.Contains(t, tb.transport.lastScreen(t).Caption, strings.TrimSpace(orderConfirmationErrorText))
	})

	t.Run("Успешное подтверждение возвращает на стартовый экран", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateIntoCart
		s.MsgID = 1

		tb.profile.EXPECT().GetUser(gomock.Any(), chatID).Return(completeUser, nil).Times(2)
		tb.lifecycle.EXPECT().Confirm(gomock.Any(), chatID).Return(&models.ConfirmResult{
			Confirmed: &models.ConfirmedOrder{ID: 1, UserID: chatID, Cost: 10},
		}, nil)
		tb.cart.EXPECT().GetOrCreateCart(gomock.Any(), chatID).Return(emptyCart(chatID), nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actCartConfirm)))

		assert.Equal(t, StateStart, s.State)
	})
}

func TestAdminOrderActions(t *testing.T) {
	ctx := context.Background()
	chatID := int64(500)

	t.Run("Принятие заказа перерисовывает карточку", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateConfirmedOrderList
		s.IsAdmin = true
		s.OrderID = 3
		s.MsgID = 1

		tb.lifecycle.EXPECT().Accept(gomock.Any(), int64(3)).Return(&models.ConfirmedOrder{
			ID: 3, UserID: 100, IsAccepted: true,
		}, nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actOrdersAccept)))

		assert.Equal(t, int64(3), s.OrderID)
		assert.Contains(t, tb.transport.lastScreen(t).Caption, "принят")
	})

	t.Run("Отмена показывает следующий заказ", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateConfirmedOrderList
		s.IsAdmin = true
		s.OrderID = 3
		s.MsgID = 1

		tb.lifecycle.EXPECT().Cancel(gomock.Any(), int64(3)).Return(&models.ConfirmedOrder{ID: 3, UserID: 100}, nil)
		tb.lifecycle.EXPECT().StepConfirmed(gomock.Any(), gomock.Nil(), int64(3), true).Return(&models.ConfirmedOrder{ID: 5, UserID: 200}, nil)

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actOrdersCancel)))

		assert.Equal(t, int64(5), s.OrderID)
	})

	t.Run("Кнопки управления заказом игнорируются без роли администратора", func(t *testing.T) {
		tb := newTestBot(t)
		s := tb.bot.sessions.get(chatID)
		s.State = StateConfirmedOrderList
		s.IsAdmin = false
		s.OrderID = 3
		s.MsgID = 1

		tb.bot.handleUpdate(ctx, callbackUpdate(chatID, encodeAction(actOrdersAccept)))

		assert.Empty(t, tb.transport.screens)
		assert.Empty(t, tb.transport.edits)
	})
}
