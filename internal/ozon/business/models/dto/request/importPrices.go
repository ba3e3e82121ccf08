package request

// PriceItem -- цена одного артикула для POST /v1/product/import/prices.
// Цены передаются строками, как того требует API.
type PriceItem struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

type ImportPrices struct {
	Prices []PriceItem `json:"prices"`
}
