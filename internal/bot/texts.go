package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zamezamo/partsbot/internal/models"
)

// Тексты экранов. Подписи собираются из этих фрагментов в зависимости от
// состояния сессии и флагов сверки корзины с каталогом.
const (
	titleText = "AutoCosmeticsStore"

	startText = "добро пожаловать в магазин автокосметики и материалов для кузовного ремонта!"

	partsInCartStartText = "\n\nв корзине присутствуют товары"

	adminPanelText = "[admin панель]\nуспешно авторизовано"

	chooseCategoryText = "выберите категорию товара ниже:"

	emptyText = "здесь пусто.."

	enterPartsCountText = "введите количество товара, которое хотите добавить в корзину\n\n0 - удалить из корзины"

	enterUserNameText = "как к вам обращаться? (2-64 симв.)"

	enterUserPhoneNumberText = "ваш телефон?\nв следующем формате: (25, 29, 33, 44)xxxxxxx (9 цифр после +375)"

	enterUserDeliveryAddressText = "адрес доставки? (2-128 симв.)"

	partDeletedFromCatalogErrorText = "\n\n⚠️ произошла ошибка\n" +
		"вот так совпадение, товар только что был убран из каталога\n" +
		"чтобы продолжить, выберите другой товар"

	partNotEnoughAvailableCountErrorText = "\n\n⚠️ произошла ошибка\n" +
		"выставлено максимально доступное количество товара, либо товар убран из корзины"

	intoCartText = "[ 🛒 корзина ]"

	orderConfirmationText = "\n\n❔ подтверждение заказа. вы уверены?"

	orderConfirmationErrorText = "\n\n⚠️ произошла ошибка\n" +
		"внимание, в корзине проведены изменения, продолжить?"

	confirmedOrdersText = "[🕓 ваши заказы]"

	allConfirmedOrdersText = "[🕓 выполняемые заказы]"

	completedOrdersText = "[✅ архив заказов]"
)

// renderOrderLines возвращает перечень позиций заказа в порядке возрастания
// идентификаторов товаров.
func renderOrderLines(parts map[string]models.CartLine) string {
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

func startCaption(user *models.User, cartNotEmpty bool) string {
	caption := titleText + "\n\n" + startText
	if user != nil && user.Name != "" {
		caption = titleText + "\n\n" + user.Name + ", " + startText
	}
	if cartNotEmpty {
		caption += partsInCartStartText
	}
	return caption
}

func adminPanelCaption() string {
	return titleText + "\n" + adminPanelText
}

func statsCaption(stats models.Stats) string {
	return fmt.Sprintf(
		"%s\n%s\n\n📊 статистика\n\nновые заказы: %d\nзаказы в работе: %d\nвыполненные заказы: %d\nтоваров в каталоге: %d",
		titleText, adminPanelText,
		stats.UnacceptedOrders, stats.AcceptedOrders, stats.CompletedOrders, stats.AvailableParts,
	)
}

func partCaption(part *models.Part, countInCart int, notice string) string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\nцена: %.2f р.\nв наличии: %d шт.\nв корзине: %d шт.",
		part.Category.Label(), part.Name, part.Description, part.Price, part.AvailableCount, countInCart,
	) + notice
}

// changeNotice возвращает текст ошибки сверки корзины с каталогом для экрана товара.
func changeNotice(change *models.CartChange) string {
	switch {
	case change == nil:
		return ""
	case change.PartDeleted:
		return partDeletedFromCatalogErrorText
	case change.NotEnoughCount:
		return partNotEnoughAvailableCountErrorText
	}
	return ""
}

func cartCaption(order *models.Order, corrected bool) string {
	caption := intoCartText + "\n\n"

	if order.IsEmpty() {
		return caption + emptyText
	}

	caption += "ваши товары в корзине:\n\n" + renderOrderLines(order.Parts)
	caption += fmt.Sprintf("\nитого: %.2f р.", order.Cost())

	if corrected {
		caption += orderConfirmationErrorText
	} else {
		caption += orderConfirmationText
	}
	return caption
}

func profileCaption(user *models.User) string {
	name, phone, address := user.Name, user.Phone, user.Address
	if name == "" {
		name = "—"
	}
	if phone == "" {
		phone = "—"
	}
	if address == "" {
		address = "—"
	}
	return fmt.Sprintf("[👤 профиль]\n\nимя: %s\nтелефон: %s\nадрес доставки: %s", name, phone, address)
}

func confirmedOrderCaption(order *models.ConfirmedOrder, isAdmin bool) string {
	header := confirmedOrdersText
	if isAdmin {
		header = allConfirmedOrdersText
	}

	status := "🕓 ожидает принятия"
	if order.IsAccepted {
		status = fmt.Sprintf("✅ принят %s", order.AcceptedTime.Format("02.01.2006 15:04"))
	}

	caption := fmt.Sprintf(
		"%s\n\nзаказ №%d\nоформлен: %s\nстатус: %s\n\n%s\nитого: %.2f р.",
		header, order.ID, order.OrderedTime.Format("02.01.2006 15:04"), status,
		renderOrderLines(order.Parts), order.Cost,
	)
	if isAdmin {
		caption += fmt.Sprintf("\nпользователь: %d", order.UserID)
	}
	return caption
}

func completedOrderCaption(order *models.CompletedOrder, isAdmin bool) string {
	caption := fmt.Sprintf(
		"%s\n\nзаказ №%d\nоформлен: %s\nвыполнен: %s\n\n%s\nитого: %.2f р.",
		completedOrdersText, order.ID,
		order.OrderedTime.Format("02.01.2006 15:04"),
		order.CompletedTime.Format("02.01.2006 15:04"),
		renderOrderLines(order.Parts), order.Cost,
	)
	if isAdmin {
		caption += fmt.Sprintf("\nпользователь: %d", order.UserID)
	}
	return caption
}

func emptyListCaption(header string) string {
	return header + "\n\n" + emptyText
}
