package request

// StockItem -- остаток одного артикула для POST /v1/product/import/stocks.
type StockItem struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

type ImportStocks struct {
	Stocks []StockItem `json:"stocks"`
}
