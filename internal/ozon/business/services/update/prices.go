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
	stockmodels "gomarketsync_api/internal/stock/models"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/business/service"
	"gomarketsync_api/pkg/logger"
)

const importPricesEndpoint = "/v1/product/import/prices"

// PriceUpdateService выставляет цены по прайсу поставщика.
type PriceUpdateService struct {
	client       *services.BaseClient
	priceService service.IPriceService
	limiter      *rate.Limiter
	batchSize    int
	syncMetrics  *metrics.SyncMetrics
	log          logger.Logger
}

func NewPriceUpdateService(client *services.BaseClient, priceService service.IPriceService, limiter *rate.Limiter, batchSize int, syncMetrics *metrics.SyncMetrics, writer io.Writer) *PriceUpdateService {
	return &PriceUpdateService{
		client:       client,
		priceService: priceService,
		limiter:      limiter,
		batchSize:    batchSize,
		syncMetrics:  syncMetrics,
		log:          logger.NewLogger(writer, "[OzonPrices]"),
	}
}

// BuildPrices собирает позиции цен для артикулов, которые есть и в файле
// поставщика, и в листинге магазина. Строки с нечитаемой ценой пропускаются.
func (s *PriceUpdateService) BuildPrices(remnants []stockmodels.Remnant, offerIDs []string) []request.PriceItem {
	listed := make(map[string]struct{}, len(offerIDs))
	for _, offerID := range offerIDs {
		listed[offerID] = struct{}{}
	}

	prices := make([]request.PriceItem, 0, len(remnants))
	for _, remnant := range remnants {
		if _, ok := listed[remnant.Code]; !ok {
			continue
		}
		converted := s.priceService.ConvertPrice(remnant.Price)
		if converted == "" {
			s.log.Log("Skipping %s: unreadable price %q", remnant.Code, remnant.Price)
			continue
		}
		prices = append(prices, request.PriceItem{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      "RUB",
			OfferID:           remnant.Code,
			OldPrice:          "0",
			Price:             converted,
		})
	}
	return prices
}

// Push отправляет цены батчами, последовательно, до первой ошибки.
func (s *PriceUpdateService) Push(ctx context.Context, prices []request.PriceItem) ([]journal.BatchRecord, error) {
	var records []journal.BatchRecord

	for _, batch := range service.Divide(prices, s.batchSize) {
		if err := s.limiter.Wait(ctx); err != nil {
			return records, fmt.Errorf("rate limiter: %w", err)
		}

		var result response.ImportResult
		statusCode, err := s.client.DoJSON(ctx, http.MethodPost, importPricesEndpoint, request.ImportPrices{Prices: batch}, &result)
		records = append(records, journal.BatchRecord{Kind: "prices", ItemCount: len(batch), StatusCode: statusCode})
		if err != nil {
			return records, fmt.Errorf("import prices batch failed: %w", err)
		}

		s.syncMetrics.BatchesSent.Add(1)
		s.syncMetrics.PricesPushed.Add(int32(len(batch)))
		metrics.RecordItemsPushed(services.Marketplace, "prices", len(batch))
		s.log.Log("Pushed prices batch: %d items", len(batch))
	}
	return records, nil
}
