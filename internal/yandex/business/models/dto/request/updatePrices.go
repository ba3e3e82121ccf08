package request

type PriceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

type PriceItem struct {
	ID    string     `json:"id"`
	Price PriceValue `json:"price"`
}

// UpdatePrices -- тело POST campaigns/{id}/offer-prices/updates.
type UpdatePrices struct {
	Offers []PriceItem `json:"offers"`
}
