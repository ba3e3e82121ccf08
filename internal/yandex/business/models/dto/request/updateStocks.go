package request

// StockCount -- остаток одного типа на складе. Тип всегда FIT.
type StockCount struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"` // ISO 8601 со смещением относительно UTC
}

type StockItem struct {
	Sku         string       `json:"sku"`
	WarehouseID int64        `json:"warehouseId"`
	Items       []StockCount `json:"items"`
}

// UpdateStocks -- тело PUT campaigns/{id}/offers/stocks.
type UpdateStocks struct {
	Skus []StockItem `json:"skus"`
}
