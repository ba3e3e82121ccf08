package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"gomarketsync_api/internal/journal"
	stockfeed "gomarketsync_api/internal/stock"
	stockmodels "gomarketsync_api/internal/stock/models"
	"gomarketsync_api/internal/yandex/business/models/dto/request"
	"gomarketsync_api/internal/yandex/business/models/dto/response"
	"gomarketsync_api/internal/yandex/business/services"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/business/service"
	"gomarketsync_api/pkg/logger"
)

const stockType = "FIT"

// StockUpdateService передает остатки на витрину кампании.
type StockUpdateService struct {
	client      *services.BaseClient
	limiter     *rate.Limiter
	batchSize   int
	plentyStock int
	syncMetrics *metrics.SyncMetrics
	log         logger.Logger
	now         func() time.Time
}

func NewStockUpdateService(client *services.BaseClient, limiter *rate.Limiter, batchSize, plentyStock int, syncMetrics *metrics.SyncMetrics, writer io.Writer) *StockUpdateService {
	return &StockUpdateService{
		client:      client,
		limiter:     limiter,
		batchSize:   batchSize,
		plentyStock: plentyStock,
		syncMetrics: syncMetrics,
		log:         logger.NewLogger(writer, "[MarketStocks]"),
		now:         time.Now,
	}
}

// BuildStocks сопоставляет остатки поставщика с каталогом кампании.
// Каждый артикул каталога, которого нет в файле, обнуляется.
func (s *StockUpdateService) BuildStocks(remnants []stockmodels.Remnant, offerIDs []string, warehouseID int64) []request.StockItem {
	listed := make(map[string]struct{}, len(offerIDs))
	for _, offerID := range offerIDs {
		listed[offerID] = struct{}{}
	}

	updatedAt := s.now().UTC().Truncate(time.Second).Format(time.RFC3339)
	stocks := make([]request.StockItem, 0, len(offerIDs))

	appendStock := func(sku string, count int) {
		stocks = append(stocks, request.StockItem{
			Sku:         sku,
			WarehouseID: warehouseID,
			Items: []request.StockCount{
				{Count: count, Type: stockType, UpdatedAt: updatedAt},
			},
		})
	}

	for _, remnant := range remnants {
		if _, ok := listed[remnant.Code]; !ok {
			continue
		}
		count, parsed := stockfeed.NormalizeQuantity(remnant.Quantity, s.plentyStock)
		if !parsed {
			s.syncMetrics.BadQuantityRows.Add(1)
		}
		appendStock(remnant.Code, count)
		delete(listed, remnant.Code)
	}

	// Добавим недостающее из загруженного
	for _, offerID := range offerIDs {
		if _, ok := listed[offerID]; ok {
			appendStock(offerID, 0)
		}
	}
	return stocks
}

// Push отправляет остатки батчами. Возвращает записи для журнала,
// включая батчи, отправленные до первой ошибки.
func (s *StockUpdateService) Push(ctx context.Context, campaignID string, stocks []request.StockItem) ([]journal.BatchRecord, error) {
	endpoint := fmt.Sprintf("/campaigns/%s/offers/stocks", campaignID)
	var records []journal.BatchRecord

	for _, batch := range service.Divide(stocks, s.batchSize) {
		if err := s.limiter.Wait(ctx); err != nil {
			return records, fmt.Errorf("rate limiter: %w", err)
		}

		var result response.UpdateResult
		statusCode, err := s.client.DoJSON(ctx, http.MethodPut, endpoint, nil, request.UpdateStocks{Skus: batch}, &result)
		records = append(records, journal.BatchRecord{Kind: "stocks", ItemCount: len(batch), StatusCode: statusCode})
		if err != nil {
			return records, fmt.Errorf("update stocks batch failed: %w", err)
		}

		s.syncMetrics.BatchesSent.Add(1)
		s.syncMetrics.StocksPushed.Add(int32(len(batch)))
		metrics.RecordItemsPushed(services.Marketplace, "stocks", len(batch))
		s.log.Log("Pushed stocks batch to campaign %s: %d items", campaignID, len(batch))
	}
	return records, nil
}
