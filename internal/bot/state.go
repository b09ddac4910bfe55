package bot

import (
	"strconv"
	"strings"
	"sync"

	"github.com/zamezamo/partsbot/internal/models"
)

// State представляет экран, на котором находится сессия пользователя.
type State int

const (
	StateStart State = iota
	StateAdminPanel
	StateUserProfileEdit
	StateChooseCategory
	StateEmptyCategory
	StateProductCards
	StateIntoCart
	StateConfirmedOrderList
	StateCompletedOrderList
	StateEnd

	// Текстовые подсостояния: достигаются только явным приглашением к вводу
	// и покидаются валидным вводом либо отменой.
	StateAwaitName
	StateAwaitPhone
	StateAwaitAddress
	StateAwaitCount
)

// Session хранит контекст диалога одного чата. Поля заполняются по мере
// навигации; команда /start сбрасывает контекст целиком.
type Session struct {
	mu sync.Mutex

	ChatID  int64
	State   State
	IsAdmin bool

	// Category и PartID — курсор витрины товаров.
	Category models.Category
	PartID   int64

	// OrderID — курсор листания списков заказов.
	OrderID int64

	// MsgID — идентификатор сообщения с текущим экраном бота.
	MsgID int

	// PendingField — поле профиля, ожидающее текстового ввода.
	PendingField models.ProfileField

	// ReturnState — экран, на который вернется сессия после текстового ввода.
	ReturnState State
}

// reset очищает контекст сессии, сохраняя идентификатор чата.
func (s *Session) reset() {
	s.State = StateStart
	s.IsAdmin = false
	s.Category = ""
	s.PartID = 0
	s.OrderID = 0
	s.MsgID = 0
	s.PendingField = ""
	s.ReturnState = StateStart
}

// sessionStore выдает сессию по идентификатору чата, создавая ее при первом
// обращении. Сессии живут в памяти процесса: весь межсессионный контекст
// хранится в базе данных.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*Session)}
}

func (st *sessionStore) get(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok {
		s = &Session{ChatID: chatID, State: StateEnd}
		st.sessions[chatID] = s
	}
	return s
}

// payloadSep разделяет код действия и ключ категории в callback payload.
const payloadSep = ":"

// encodeAction кодирует payload кнопки без категории.
func encodeAction(code int) string {
	return strconv.Itoa(code)
}

// encodeCategoryAction кодирует payload кнопки с ключом категории.
func encodeCategoryAction(code int, category models.Category) string {
	return strconv.Itoa(code) + payloadSep + string(category)
}

// decodeAction разбирает payload кнопки. Категория проверяется по каталогу:
// payload с неизвестным ключом отбрасывается.
func decodeAction(payload string) (int, models.Category, bool) {
	head, tail, found := strings.Cut(payload, payloadSep)

	code, err := strconv.Atoi(head)
	if err != nil {
		return 0, "", false
	}

	if !found {
		return code, "", true
	}

	category := models.Category(tail)
	if !category.IsValid() {
		return 0, "", false
	}
	return code, category, true
}
