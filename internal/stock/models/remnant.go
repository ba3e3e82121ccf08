package models

// Remnant -- строка остатков из файла поставщика.
// Цена и количество остаются сырым текстом: "16'590.00 руб.", ">10".
type Remnant struct {
	Code     string
	Name     string
	Price    string
	Quantity string
}
