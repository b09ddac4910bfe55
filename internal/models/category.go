package models

// Category представляет категорию товара в каталоге.
type Category string

const (
	CategoryAbrasives    Category = "ABRSMATS"
	CategoryPolishWheels Category = "POLWHEEL"
	CategoryPaintTapes   Category = "PNTTAPES"
	CategoryPlanes       Category = "PLANES"
	CategoryPolishPastes Category = "POLPASTS"
	CategorySprayGuns    Category = "SPRAYGUN"
	CategorySupplies     Category = "SUPPLIES"
	CategoryOther        Category = "OTHER"
)

// Categories перечисляет все категории в порядке отображения в каталоге.
var Categories = []Category{
	CategoryAbrasives,
	CategoryPolishWheels,
	CategoryPaintTapes,
	CategoryPlanes,
	CategoryPolishPastes,
	CategorySprayGuns,
	CategorySupplies,
	CategoryOther,
}

// CategoryLabels содержит отображаемые названия категорий.
var CategoryLabels = map[Category]string{
	CategoryAbrasives:    "🛠 абразивные материалы",
	CategoryPolishWheels: "🛠 полировальные круги",
	CategoryPaintTapes:   "🛠 малярные ленты",
	CategoryPlanes:       "🛠 рубанки",
	CategoryPolishPastes: "🛠 полировальные пасты",
	CategorySprayGuns:    "🛠 краскопульты",
	CategorySupplies:     "🛠 расходные материалы",
	CategoryOther:        "🛠 другое",
}

// IsValid проверяет, что категория присутствует в каталоге.
func (c Category) IsValid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// Label возвращает отображаемое название категории.
func (c Category) Label() string {
	return CategoryLabels[c]
}
