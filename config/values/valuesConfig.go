package values

type Config interface {
}

// SyncValues -- настраиваемые значения синхронизации остатков.
type SyncValues struct {
	PlentyStock      int `yaml:"plenty-stock"`
	OzonStockBatch   int `yaml:"ozon-stock-batch"`
	OzonPriceBatch   int `yaml:"ozon-price-batch"`
	MarketStockBatch int `yaml:"market-stock-batch"`
	MarketPriceBatch int `yaml:"market-price-batch"`
}

// DefaultSyncValues -- лимиты батчей по документации маркетплейсов.
func DefaultSyncValues() SyncValues {
	return SyncValues{
		PlentyStock:      100,
		OzonStockBatch:   100,
		OzonPriceBatch:   1000,
		MarketStockBatch: 2000,
		MarketPriceBatch: 500,
	}
}
