package request

// ProductListFilter -- фильтр листинга товаров. Берем все видимости.
type ProductListFilter struct {
	Visibility string `json:"visibility"`
}

type ProductList struct {
	Filter ProductListFilter `json:"filter"`
	LastID string            `json:"last_id"`
	Limit  int               `json:"limit"`
}
