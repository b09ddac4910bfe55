package models

import (
	"strconv"
	"time"
)

// CartLine представляет позицию корзины: денормализованный снимок полей товара,
// снятый в момент добавления и сверяемый с живой записью Part при каждом изменении
// и обязательно при подтверждении заказа.
type CartLine struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Count       int      `json:"count"`
	Image       string   `json:"image"`
}

// NewCartLine снимает снимок товара для позиции корзины с заданным количеством.
func NewCartLine(part *Part, count int) CartLine {
	return CartLine{
		Name:        part.Name,
		Category:    part.Category,
		Description: part.Description,
		Price:       part.Price,
		Count:       count,
		Image:       part.Image,
	}
}

// Order представляет открытую корзину пользователя. У пользователя может быть
// не более одной открытой корзины одновременно.
type Order struct {
	ID     int64
	UserID int64
	Parts  map[string]CartLine
}

// Cost возвращает стоимость корзины. Значение всегда пересчитывается по позициям,
// между изменениями оно не хранится как инвариант.
func (o *Order) Cost() float64 {
	var cost float64
	for _, line := range o.Parts {
		cost += line.Price * float64(line.Count)
	}
	return cost
}

// IsEmpty сообщает, пуста ли корзина.
func (o *Order) IsEmpty() bool {
	return o == nil || len(o.Parts) == 0
}

// ConfirmedOrder представляет подтвержденный заказ: неизменяемый снимок корзины,
// сохранивший ее идентификатор. Ожидает принятия и выполнения оператором.
type ConfirmedOrder struct {
	ID           int64
	UserID       int64
	Parts        map[string]CartLine
	Cost         float64
	OrderedTime  time.Time
	IsAccepted   bool
	AcceptedTime time.Time
}

// CompletedOrder представляет выполненный заказ, терминальную запись архива.
type CompletedOrder struct {
	ID            int64
	UserID        int64
	Parts         map[string]CartLine
	Cost          float64
	OrderedTime   time.Time
	AcceptedTime  time.Time
	CompletedTime time.Time
}

// LineCorrection описывает исправление позиции корзины при сверке с каталогом.
type LineCorrection struct {
	PartID int64
	Name   string
	// PartDeleted выставляется, когда товар убран из каталога и позиция удалена.
	PartDeleted bool
	// NotEnoughCount выставляется, когда запрошенное количество урезано до остатка
	// (или позиция удалена при нулевом остатке).
	NotEnoughCount bool
}

// PartKey возвращает ключ позиции корзины для товара.
func PartKey(partID int64) string {
	return strconv.FormatInt(partID, 10)
}

// ReconcileLine сверяет позицию корзины с живой записью товара и возвращает
// исправленную позицию. Если товар убран из каталога или остаток нулевой,
// позиция удаляется (ok=false). Запрошенное количество урезается до остатка.
func ReconcileLine(key string, line CartLine, part *Part) (CartLine, *LineCorrection, bool) {
	partID, _ := strconv.ParseInt(key, 10, 64)

	if part == nil || !part.IsAvailable {
		return CartLine{}, &LineCorrection{PartID: partID, Name: line.Name, PartDeleted: true}, false
	}

	if part.AvailableCount == 0 {
		return CartLine{}, &LineCorrection{PartID: partID, Name: part.Name, NotEnoughCount: true}, false
	}

	count := line.Count
	var correction *LineCorrection
	if count > part.AvailableCount {
		count = part.AvailableCount
		correction = &LineCorrection{PartID: partID, Name: part.Name, NotEnoughCount: true}
	}

	// Снимок обновляется по живым данным: цена или описание могли измениться
	// после добавления в корзину.
	return NewCartLine(part, count), correction, true
}

// ReconcileParts сверяет все позиции корзины с живыми записями каталога.
// Возвращает исправленный набор позиций и список исправлений; пустой список
// означает, что корзина не изменилась и заказ может быть подтвержден.
func ReconcileParts(parts map[string]CartLine, live map[string]*Part) (map[string]CartLine, []LineCorrection) {
	result := make(map[string]CartLine, len(parts))
	var corrections []LineCorrection

	for key, line := range parts {
		fixed, correction, ok := ReconcileLine(key, line, live[key])
		if correction != nil {
			corrections = append(corrections, *correction)
		}
		if ok {
			result[key] = fixed
		}
	}

	return result, corrections
}
