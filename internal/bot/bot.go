package bot

import (
	"context"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/zamezamo/partsbot/internal/logger"
	"github.com/zamezamo/partsbot/internal/models"
)

// Изображения экранов относительно базового адреса статики.
const (
	logoImage    = "img/bot/logo.jpg"
	catalogImage = "img/bot/in_catalog.jpg"
)

// handlerFunc обрабатывает действие кнопки в текущем состоянии сессии.
type handlerFunc func(ctx context.Context, s *Session, category models.Category) error

// transition описывает один допустимый переход: код действия и его обработчик.
// needsCategory требует, чтобы payload нес ключ категории.
type transition struct {
	code          int
	needsCategory bool
	handle        handlerFunc
}

// textHandler описывает текстовое состояние: валидатор ввода и обработчик.
type textHandler struct {
	pattern *regexp.Regexp
	handle  func(ctx context.Context, s *Session, text string) error
}

// Bot связывает транспорт мессенджера, сессии чатов и доменные сервисы.
// Таблицы переходов строятся один раз при создании.
type Bot struct {
	transport Transport
	assetsURL string

	catalog   models.CatalogService
	cart      models.CartService
	lifecycle models.OrderLifecycleService
	profile   models.ProfileService
	admins    models.AdminService
	stats     models.StatsService

	sessions    *sessionStore
	routing     map[State][]transition
	textRouting map[State]textHandler

	updates chan tgbotapi.Update
}

// New создает бота с заданным транспортом и сервисами.
func New(
	transport Transport,
	assetsURL string,
	catalog models.CatalogService,
	cart models.CartService,
	lifecycle models.OrderLifecycleService,
	profile models.ProfileService,
	admins models.AdminService,
	stats models.StatsService,
) *Bot {
	b := &Bot{
		transport: transport,
		assetsURL: strings.TrimRight(assetsURL, "/"),
		catalog:   catalog,
		cart:      cart,
		lifecycle: lifecycle,
		profile:   profile,
		admins:    admins,
		stats:     stats,
		sessions:  newSessionStore(),
		updates:   make(chan tgbotapi.Update, 128),
	}

	b.routing = b.newRouting()
	b.textRouting = b.newTextRouting()

	return b
}

// newRouting строит таблицу переходов: состояние x код действия -> обработчик.
func (b *Bot) newRouting() map[State][]transition {
	return map[State][]transition{
		StateStart: {
			{code: actStartCatalog, handle: b.handleOpenCatalog},
			{code: actStartCart, handle: b.handleOpenCart},
			{code: actStartOrders, handle: b.handleMyOrders},
			{code: actStartArchive, handle: b.handleMyArchive},
			{code: actStartProfile, handle: b.handleOpenProfile},
			{code: actStartClose, handle: b.handleClose},
		},
		StateAdminPanel: {
			{code: actAdminOrders, handle: b.handleAdminOrders},
			{code: actAdminArchive, handle: b.handleAdminArchive},
			{code: actAdminStats, handle: b.handleAdminStats},
			{code: actAdminNotifications, handle: b.handleToggleNotifications},
		},
		StateChooseCategory: {
			{code: actChooseCategoryPick, needsCategory: true, handle: b.handleEnterCategory},
			{code: actChooseCategoryBack, handle: b.handleHome},
		},
		StateEmptyCategory: {
			{code: actEmptyCategoryBack, handle: b.handleOpenCatalog},
		},
		StateProductCards: {
			{code: actCardPrev, handle: b.handleCardPrev},
			{code: actCardNext, handle: b.handleCardNext},
			{code: actCardAdd, handle: b.handleAddOne},
			{code: actCardEnterCount, handle: b.handleEnterCount},
			{code: actCardRemove, handle: b.handleRemoveOne},
			{code: actCardIntoCart, handle: b.handleOpenCart},
			{code: actCardBack, handle: b.handleOpenCatalog},
		},
		StateIntoCart: {
			{code: actCartConfirm, handle: b.handleConfirmOrder},
			{code: actCartBack, handle: b.handleOpenCatalog},
		},
		StateUserProfileEdit: {
			{code: actProfileEditName, handle: b.handleEditName},
			{code: actProfileEditPhone, handle: b.handleEditPhone},
			{code: actProfileEditAddress, handle: b.handleEditAddress},
			{code: actProfileBack, handle: b.handleHome},
		},
		StateConfirmedOrderList: {
			{code: actOrdersPrev, handle: b.handleOrdersPrev},
			{code: actOrdersNext, handle: b.handleOrdersNext},
			{code: actOrdersAccept, handle: b.handleAcceptOrder},
			{code: actOrdersCancel, handle: b.handleCancelOrder},
			{code: actOrdersComplete, handle: b.handleCompleteOrder},
			{code: actOrdersBack, handle: b.handleHome},
		},
		StateCompletedOrderList: {
			{code: actArchivePrev, handle: b.handleArchivePrev},
			{code: actArchiveNext, handle: b.handleArchiveNext},
			{code: actArchiveBack, handle: b.handleHome},
		},
		StateAwaitName: {
			{code: actAwaitCancel, handle: b.handleCancelInput},
		},
		StateAwaitPhone: {
			{code: actAwaitCancel, handle: b.handleCancelInput},
		},
		StateAwaitAddress: {
			{code: actAwaitCancel, handle: b.handleCancelInput},
		},
		StateAwaitCount: {
			{code: actAwaitCancel, handle: b.handleCancelInput},
		},
	}
}

// newTextRouting строит таблицу текстовых состояний: состояние -> валидатор и обработчик.
func (b *Bot) newTextRouting() map[State]textHandler {
	return map[State]textHandler{
		StateAwaitName: {
			pattern: nameRe,
			handle: func(ctx context.Context, s *Session, text string) error {
				return b.handleProfileInput(ctx, s, models.ProfileFieldName, text)
			},
		},
		StateAwaitPhone: {
			pattern: phoneRe,
			handle: func(ctx context.Context, s *Session, text string) error {
				return b.handleProfileInput(ctx, s, models.ProfileFieldPhone, text)
			},
		},
		StateAwaitAddress: {
			pattern: addressRe,
			handle: func(ctx context.Context, s *Session, text string) error {
				return b.handleProfileInput(ctx, s, models.ProfileFieldAddress, text)
			},
		},
		StateAwaitCount: {
			pattern: countRe,
			handle:  b.handleCountInput,
		},
	}
}

// Enqueue ставит входящее обновление в очередь обработки.
// Используется вебхуком и циклом опроса.
func (b *Bot) Enqueue(update tgbotapi.Update) {
	b.updates <- update
}

// Run обрабатывает очередь обновлений до отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	for {
		select {
		case update := <-b.updates:
			b.handleUpdate(ctx, update)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

// handleUpdate направляет обновление в сессию чата. Сессия обрабатывает события
// строго последовательно: у одного пользователя не бывает двух действий в полете.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	chatID := updateChatID(update)
	if chatID == 0 {
		return
	}

	s := b.sessions.get(chatID)
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error

	switch {
	case update.Message != nil && update.Message.IsCommand():
		err = b.handleCommand(ctx, s, update.Message)
	case update.Message != nil:
		err = b.handleText(ctx, s, update.Message)
	case update.CallbackQuery != nil:
		err = b.handleCallback(ctx, s, update.CallbackQuery)
	}

	if err != nil {
		logger.Log.Error("ошибка обработки обновления",
			zap.Int64("chat_id", chatID),
			zap.Int("state", int(s.State)),
			zap.Error(err),
		)
	}
}

// handleCommand обрабатывает команды. Команда /start принимается в любом
// состоянии и сбрасывает контекст сессии.
func (b *Bot) handleCommand(ctx context.Context, s *Session, msg *tgbotapi.Message) error {
	if msg.Command() != "start" {
		// Неизвестные команды убираются из чата без смены состояния.
		_ = b.transport.DeleteMessage(s.ChatID, msg.MessageID)
		return nil
	}

	var username string
	if msg.From != nil {
		username = msg.From.UserName
	}
	return b.handleStart(ctx, s, username)
}

// handleText обрабатывает свободный текст. Вне текстовых состояний и при
// невалидном вводе сообщение удаляется, состояние сессии не меняется.
func (b *Bot) handleText(ctx context.Context, s *Session, msg *tgbotapi.Message) error {
	// Экран бота остается единственным сообщением диалога.
	_ = b.transport.DeleteMessage(s.ChatID, msg.MessageID)

	h, ok := b.textRouting[s.State]
	if !ok || !h.pattern.MatchString(msg.Text) {
		return nil
	}

	return h.handle(ctx, s, msg.Text)
}

// handleCallback сопоставляет payload кнопки с таблицей переходов текущего
// состояния. Событие без перехода игнорируется.
func (b *Bot) handleCallback(ctx context.Context, s *Session, query *tgbotapi.CallbackQuery) error {
	defer func() {
		_ = b.transport.AnswerCallback(query.ID)
	}()

	code, category, ok := decodeAction(query.Data)
	if !ok {
		return nil
	}

	for _, tr := range b.routing[s.State] {
		if tr.code != code {
			continue
		}
		if tr.needsCategory && category == "" {
			continue
		}
		return tr.handle(ctx, s, category)
	}

	return nil
}

// render отправляет экран новым сообщением либо правит существующее.
func (b *Bot) render(s *Session, screen Screen) error {
	if s.MsgID == 0 {
		msgID, err := b.transport.SendScreen(s.ChatID, screen)
		if err != nil {
			return err
		}
		s.MsgID = msgID
		return nil
	}
	return b.transport.EditScreen(s.ChatID, s.MsgID, screen)
}

// imageURL возвращает абсолютный адрес изображения статики.
func (b *Bot) imageURL(path string) string {
	return b.assetsURL + "/" + strings.TrimLeft(path, "/")
}

func (b *Bot) categoryImage(category models.Category) string {
	return b.imageURL("img/categories/" + string(category) + ".jpg")
}
