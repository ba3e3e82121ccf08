package update

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"gomarketsync_api/internal/journal"
	"gomarketsync_api/internal/ozon/business/models/dto/request"
	"gomarketsync_api/internal/ozon/business/models/dto/response"
	"gomarketsync_api/internal/ozon/business/services"
	stockfeed "gomarketsync_api/internal/stock"
	stockmodels "gomarketsync_api/internal/stock/models"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/business/service"
	"gomarketsync_api/pkg/logger"
)

const importStocksEndpoint = "/v1/product/import/stocks"

// StockUpdateService собирает остатки по файлу поставщика и толкает их
// в Ozon батчами. Батчи уходят строго последовательно, первый отказ
// останавливает остальные.
type StockUpdateService struct {
	client      *services.BaseClient
	limiter     *rate.Limiter
	batchSize   int
	plentyStock int
	syncMetrics *metrics.SyncMetrics
	log         logger.Logger
}

func NewStockUpdateService(client *services.BaseClient, limiter *rate.Limiter, batchSize, plentyStock int, syncMetrics *metrics.SyncMetrics, writer io.Writer) *StockUpdateService {
	return &StockUpdateService{
		client:      client,
		limiter:     limiter,
		batchSize:   batchSize,
		plentyStock: plentyStock,
		syncMetrics: syncMetrics,
		log:         logger.NewLogger(writer, "[OzonStocks]"),
	}
}

// BuildStocks сопоставляет остатки поставщика с листингом магазина.
// Каждый артикул листинга, которого нет в файле, обнуляется.
func (s *StockUpdateService) BuildStocks(remnants []stockmodels.Remnant, offerIDs []string) []request.StockItem {
	listed := make(map[string]struct{}, len(offerIDs))
	for _, offerID := range offerIDs {
		listed[offerID] = struct{}{}
	}

	stocks := make([]request.StockItem, 0, len(offerIDs))
	for _, remnant := range remnants {
		if _, ok := listed[remnant.Code]; !ok {
			continue
		}
		count, parsed := stockfeed.NormalizeQuantity(remnant.Quantity, s.plentyStock)
		if !parsed {
			s.syncMetrics.BadQuantityRows.Add(1)
		}
		stocks = append(stocks, request.StockItem{OfferID: remnant.Code, Stock: count})
		delete(listed, remnant.Code)
	}

	// Добавим недостающее из загруженного
	for _, offerID := range offerIDs {
		if _, ok := listed[offerID]; ok {
			stocks = append(stocks, request.StockItem{OfferID: offerID, Stock: 0})
		}
	}
	return stocks
}

// Push отправляет остатки батчами. Возвращает записи для журнала,
// включая батчи, отправленные до первой ошибки.
func (s *StockUpdateService) Push(ctx context.Context, stocks []request.StockItem) ([]journal.BatchRecord, error) {
	var records []journal.BatchRecord

	for _, batch := range service.Divide(stocks, s.batchSize) {
		if err := s.limiter.Wait(ctx); err != nil {
			return records, fmt.Errorf("rate limiter: %w", err)
		}

		var result response.ImportResult
		statusCode, err := s.client.DoJSON(ctx, http.MethodPost, importStocksEndpoint, request.ImportStocks{Stocks: batch}, &result)
		records = append(records, journal.BatchRecord{Kind: "stocks", ItemCount: len(batch), StatusCode: statusCode})
		if err != nil {
			return records, fmt.Errorf("import stocks batch failed: %w", err)
		}

		s.syncMetrics.BatchesSent.Add(1)
		s.syncMetrics.StocksPushed.Add(int32(len(batch)))
		metrics.RecordItemsPushed(services.Marketplace, "stocks", len(batch))
		s.log.Log("Pushed stocks batch: %d items", len(batch))
	}
	return records, nil
}
