package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Button представляет кнопку на экране бота.
type Button struct {
	Label   string
	Payload string
}

// Screen представляет экран бота: изображение с подписью и сеткой кнопок.
type Screen struct {
	Photo   string
	Caption string
	Buttons [][]Button
}

// Transport определяет контракт с мессенджером: отправка, правка и удаление
// сообщений с опциональной сеткой кнопок. Больше машине состояний от
// транспорта ничего не требуется.
type Transport interface {
	SendScreen(chatID int64, screen Screen) (int, error)

	EditScreen(chatID int64, msgID int, screen Screen) error

	EditCaption(chatID int64, msgID int, caption string, buttons [][]Button) error

	SendText(chatID int64, text string) error

	DeleteMessage(chatID int64, msgID int) error

	AnswerCallback(callbackID string) error
}

// Telegram реализует Transport поверх Bot API.
type Telegram struct {
	api *tgbotapi.BotAPI
}

// NewTelegram создает транспорт поверх подключенного клиента Bot API.
func NewTelegram(api *tgbotapi.BotAPI) *Telegram {
	return &Telegram{api: api}
}

func markup(buttons [][]Button) *tgbotapi.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, row := range buttons {
		keyboardRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Payload))
		}
		rows = append(rows, keyboardRow)
	}

	m := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &m
}

// isNotModified распознает ответ мессенджера на правку, не изменившую сообщение.
// Такие ошибки избыточного рендера подавляются безусловно.
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// SendScreen отправляет новый экран и возвращает идентификатор сообщения.
func (t *Telegram) SendScreen(chatID int64, screen Screen) (int, error) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(screen.Photo))
	photo.Caption = screen.Caption
	if m := markup(screen.Buttons); m != nil {
		photo.ReplyMarkup = m
	}

	sent, err := t.api.Send(photo)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// EditScreen заменяет изображение, подпись и кнопки существующего сообщения.
func (t *Telegram) EditScreen(chatID int64, msgID int, screen Screen) error {
	media := tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(screen.Photo))
	media.Caption = screen.Caption

	edit := tgbotapi.EditMessageMediaConfig{
		BaseEdit: tgbotapi.BaseEdit{
			ChatID:      chatID,
			MessageID:   msgID,
			ReplyMarkup: markup(screen.Buttons),
		},
		Media: media,
	}

	if _, err := t.api.Request(edit); err != nil && !isNotModified(err) {
		return err
	}
	return nil
}

// EditCaption заменяет подпись и кнопки существующего сообщения, не трогая изображение.
func (t *Telegram) EditCaption(chatID int64, msgID int, caption string, buttons [][]Button) error {
	edit := tgbotapi.EditMessageCaptionConfig{
		BaseEdit: tgbotapi.BaseEdit{
			ChatID:      chatID,
			MessageID:   msgID,
			ReplyMarkup: markup(buttons),
		},
		Caption: caption,
	}

	if _, err := t.api.Request(edit); err != nil && !isNotModified(err) {
		return err
	}
	return nil
}

// SendText отправляет простое текстовое сообщение.
func (t *Telegram) SendText(chatID int64, text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// DeleteMessage удаляет сообщение из чата.
func (t *Telegram) DeleteMessage(chatID int64, msgID int) error {
	_, err := t.api.Request(tgbotapi.NewDeleteMessage(chatID, msgID))
	return err
}

// AnswerCallback подтверждает мессенджеру обработку нажатия кнопки.
func (t *Telegram) AnswerCallback(callbackID string) error {
	_, err := t.api.Request(tgbotapi.NewCallback(callbackID, ""))
	return err
}
