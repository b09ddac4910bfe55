package models

// Part представляет товар каталога.
// IsAvailable=false означает мягкое удаление: товар скрыт из каталога
// и недоступен для корзины, даже если остаток положительный.
type Part struct {
	ID             int64
	IsAvailable    bool
	Category       Category
	Name           string
	Description    string
	Price          float64
	AvailableCount int
	Image          string
}

// IsEligible сообщает, может ли товар показываться в каталоге и попадать в корзину.
func (p *Part) IsEligible() bool {
	return p != nil && p.IsAvailable && p.AvailableCount > 0
}
