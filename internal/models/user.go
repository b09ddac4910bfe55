package models

// User представляет покупателя. Создается при первом обращении к боту,
// никогда не удаляется.
type User struct {
	ID       int64
	Name     string
	Phone    string
	Address  string
	Username string
}

// HasCompleteProfile сообщает, заполнены ли поля, обязательные для оформления заказа.
func (u *User) HasCompleteProfile() bool {
	return u != nil && u.Name != "" && u.Phone != "" && u.Address != ""
}

// Admin представляет оператора магазина.
type Admin struct {
	ID                    int64
	IsNotificationEnabled bool
}
