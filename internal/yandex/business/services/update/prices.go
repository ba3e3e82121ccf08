package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"gomarketsync_api/internal/journal"
	stockmodels "gomarketsync_api/internal/stock/models"
	"gomarketsync_api/internal/yandex/business/models/dto/request"
	"gomarketsync_api/internal/yandex/business/models/dto/response"
	"gomarketsync_api/internal/yandex/business/services"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/business/service"
	"gomarketsync_api/pkg/logger"
)

const currencyID = "RUR"

// PriceUpdateService выставляет цены кампании по прайсу поставщика.
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
		log:          logger.NewLogger(writer, "[MarketPrices]"),
	}
}

// BuildPrices собирает позиции цен для артикулов, которые есть и в файле
// поставщика, и в каталоге кампании. Маркет принимает цену целым числом.
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
		value, err := strconv.Atoi(s.priceService.ConvertPrice(remnant.Price))
		if err != nil {
			s.log.Log("Skipping %s: unreadable price %q", remnant.Code, remnant.Price)
			continue
		}
		prices = append(prices, request.PriceItem{
			ID:    remnant.Code,
			Price: request.PriceValue{Value: value, CurrencyID: currencyID},
		})
	}
	return prices
}

// Push отправляет цены батчами, последовательно, до первой ошибки.
func (s *PriceUpdateService) Push(ctx context.Context, campaignID string, prices []request.PriceItem) ([]journal.BatchRecord, error) {
	endpoint := fmt.Sprintf("/campaigns/%s/offer-prices/updates", campaignID)
	var records []journal.BatchRecord

	for _, batch := range service.Divide(prices, s.batchSize) {
		if err := s.limiter.Wait(ctx); err != nil {
			return records, fmt.Errorf("rate limiter: %w", err)
		}

		var result response.UpdateResult
		statusCode, err := s.client.DoJSON(ctx, http.MethodPost, endpoint, nil, request.UpdatePrices{Offers: batch}, &result)
		records = append(records, journal.BatchRecord{Kind: "prices", ItemCount: len(batch), StatusCode: statusCode})
		if err != nil {
			return records, fmt.Errorf("update prices batch failed: %w", err)
		}

		s.syncMetrics.BatchesSent.Add(1)
		s.syncMetrics.PricesPushed.Add(int32(len(batch)))
		metrics.RecordItemsPushed(services.Marketplace, "prices", len(batch))
		s.log.Log("Pushed prices batch to campaign %s: %d items", campaignID, len(batch))
	}
	return records, nil
}
