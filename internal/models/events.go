package models

// OrderEventType перечисляет события жизненного цикла заказа.
type OrderEventType string

const (
	OrderEventConfirmed OrderEventType = "CONFIRMED"
	OrderEventAccepted  OrderEventType = "ACCEPTED"
	OrderEventCancelled OrderEventType = "CANCELLED"
	OrderEventCompleted OrderEventType = "COMPLETED"
)

// OrderEvent публикуется после того, как переход жизненного цикла заказа
// зафиксирован в хранилище. Доставка уведомлений по событию выполняется
// по принципу "наилучших усилий" и не влияет на сам переход.
type OrderEvent struct {
	Type    OrderEventType
	OrderID int64
	UserID  int64
	Parts   map[string]CartLine
	Cost    float64
}
