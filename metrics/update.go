package metrics

import "sync/atomic"

// SyncMetrics -- счетчики одного прогона синхронизации.
type SyncMetrics struct {
	StocksPushed    atomic.Int32
	PricesPushed    atomic.Int32
	BatchesSent     atomic.Int32
	BadQuantityRows atomic.Int32
}
