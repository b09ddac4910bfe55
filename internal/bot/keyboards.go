package bot

import "github.com/zamezamo/partsbot/internal/models"

// Коды действий кнопок. Код уникален в пределах своего состояния: таблица
// переходов сопоставляет payload с обработчиком по текущему состоянию сессии.
const (
	actStartCatalog = iota
	actStartCart
	actStartOrders
	actStartArchive
	actStartProfile
	actStartClose
)

const (
	actAdminOrders = iota
	actAdminArchive
	actAdminStats
	actAdminNotifications
)

const (
	actChooseCategoryPick = iota
	actChooseCategoryBack
)

const actEmptyCategoryBack = 0

const (
	actCardPrev = iota
	actCardNext
	actCardAdd
	actCardEnterCount
	actCardRemove
	actCardIntoCart
	actCardBack
)

const (
	actCartConfirm = iota
	actCartBack
)

const (
	actProfileEditName = iota
	actProfileEditPhone
	actProfileEditAddress
	actProfileBack
)

const (
	actOrdersPrev = iota
	actOrdersNext
	actOrdersAccept
	actOrdersCancel
	actOrdersComplete
	actOrdersBack
)

const (
	actArchivePrev = iota
	actArchiveNext
	actArchiveBack
)

const actAwaitCancel = 0

func startKeyboard() [][]Button {
	return [][]Button{
		{{Label: "🛍 перейти в каталог", Payload: encodeAction(actStartCatalog)}},
		{{Label: "🛒 корзина", Payload: encodeAction(actStartCart)}},
		{
			{Label: "🕓 мои заказы", Payload: encodeAction(actStartOrders)},
			{Label: "✅ архив", Payload: encodeAction(actStartArchive)},
		},
		{{Label: "👤 профиль", Payload: encodeAction(actStartProfile)}},
		{{Label: "🚪 закрыть", Payload: encodeAction(actStartClose)}},
	}
}

func adminPanelKeyboard(notificationsEnabled bool) [][]Button {
	notifications := "🔕 уведомления выключены"
	if notificationsEnabled {
		notifications = "🔔 уведомления включены"
	}
	return [][]Button{
		{{Label: "🕓 выполняемые заказы", Payload: encodeAction(actAdminOrders)}},
		{{Label: "✅ архив заказов", Payload: encodeAction(actAdminArchive)}},
		{{Label: "📊 статистика", Payload: encodeAction(actAdminStats)}},
		{{Label: notifications, Payload: encodeAction(actAdminNotifications)}},
	}
}

func chooseCategoryKeyboard() [][]Button {
	rows := make([][]Button, 0, len(models.Categories)+1)
	for _, category := range models.Categories {
		rows = append(rows, []Button{{
			Label:   category.Label(),
			Payload: encodeCategoryAction(actChooseCategoryPick, category),
		}})
	}
	rows = append(rows, []Button{{Label: "🔙 назад", Payload: encodeAction(actChooseCategoryBack)}})
	return rows
}

func emptyCategoryKeyboard() [][]Button {
	return [][]Button{
		{{Label: "🔙 назад", Payload: encodeAction(actEmptyCategoryBack)}},
	}
}

func productCardKeyboard() [][]Button {
	return [][]Button{
		{
			{Label: "⬅️", Payload: encodeAction(actCardPrev)},
			{Label: "➡️", Payload: encodeAction(actCardNext)},
		},
		{
			{Label: "➕", Payload: encodeAction(actCardAdd)},
			{Label: "ввести кол-во", Payload: encodeAction(actCardEnterCount)},
			{Label: "➖", Payload: encodeAction(actCardRemove)},
		},
		{{Label: "🛒 в корзину", Payload: encodeAction(actCardIntoCart)}},
		{{Label: "🔙 назад", Payload: encodeAction(actCardBack)}},
	}
}

func cartKeyboard(isEmpty bool) [][]Button {
	if isEmpty {
		return [][]Button{
			{{Label: "🔙 назад в каталог", Payload: encodeAction(actCartBack)}},
		}
	}
	return [][]Button{
		{{Label: "✅ подтвердить заказ", Payload: encodeAction(actCartConfirm)}},
		{{Label: "🔙 назад в каталог", Payload: encodeAction(actCartBack)}},
	}
}

func profileKeyboard() [][]Button {
	return [][]Button{
		{{Label: "✏️ имя", Payload: encodeAction(actProfileEditName)}},
		{{Label: "✏️ телефон", Payload: encodeAction(actProfileEditPhone)}},
		{{Label: "✏️ адрес доставки", Payload: encodeAction(actProfileEditAddress)}},
		{{Label: "🔙 назад", Payload: encodeAction(actProfileBack)}},
	}
}

func confirmedOrdersKeyboard(isAdmin, isAccepted bool) [][]Button {
	rows := [][]Button{
		{
			{Label: "⬅️", Payload: encodeAction(actOrdersPrev)},
			{Label: "➡️", Payload: encodeAction(actOrdersNext)},
		},
	}

	if isAdmin {
		if isAccepted {
			rows = append(rows, []Button{
				{Label: "🎉 выполнен", Payload: encodeAction(actOrdersComplete)},
				{Label: "❌ отменить", Payload: encodeAction(actOrdersCancel)},
			})
		} else {
			rows = append(rows, []Button{
				{Label: "✅ принять", Payload: encodeAction(actOrdersAccept)},
				{Label: "❌ отменить", Payload: encodeAction(actOrdersCancel)},
			})
		}
	}

	rows = append(rows, []Button{{Label: "🔙 назад", Payload: encodeAction(actOrdersBack)}})
	return rows
}

func emptyOrdersKeyboard() [][]Button {
	return [][]Button{
		{{Label: "🔙 назад", Payload: encodeAction(actOrdersBack)}},
	}
}

func emptyArchiveKeyboard() [][]Button {
	return [][]Button{
		{{Label: "🔙 назад", Payload: encodeAction(actArchiveBack)}},
	}
}

func completedOrdersKeyboard() [][]Button {
	return [][]Button{
		{
			{Label: "⬅️", Payload: encodeAction(actArchivePrev)},
			{Label: "➡️", Payload: encodeAction(actArchiveNext)},
		},
		{{Label: "🔙 назад", Payload: encodeAction(actArchiveBack)}},
	}
}

func awaitInputKeyboard() [][]Button {
	return [][]Button{
		{{Label: "🚫 отмена", Payload: encodeAction(actAwaitCancel)}},
	}
}
