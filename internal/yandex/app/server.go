package app

import (
	"context"
	"io"
	"time"

	"golang.org/x/time/rate"

	"gomarketsync_api/config"
	"gomarketsync_api/config/values"
	"gomarketsync_api/internal/journal"
	"gomarketsync_api/internal/stock"
	"gomarketsync_api/internal/stock/models"
	"gomarketsync_api/internal/yandex/business/services"
	"gomarketsync_api/internal/yandex/business/services/get"
	"gomarketsync_api/internal/yandex/business/services/update"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/business/service"
	"gomarketsync_api/pkg/logger"
)

const requestRateLimit = 50 // запросов в минуту к Partner API

// campaign -- одна витрина Маркета со своим складом.
type campaign struct {
	name        string
	campaignID  string
	warehouseID int64
}

// MarketServer гонит полный цикл синхронизации Яндекс Маркета:
// для каждой из кампаний FBS и DBS -- каталог, остатки, цены.
type MarketServer struct {
	cfg          config.MarketConfig
	creds        *config.MarketCredentials
	values       values.SyncValues
	stockService *stock.StockService
	journal      journal.Journal
	syncMetrics  *metrics.SyncMetrics
	log          logger.Logger
	writer       io.Writer
}

func NewMarketServer(cfg *config.AppConfig, creds *config.MarketCredentials, stockService *stock.StockService, journalRepo journal.Journal, writer io.Writer) *MarketServer {
	return &MarketServer{
		cfg:          cfg.Market,
		creds:        creds,
		values:       cfg.Values,
		stockService: stockService,
		journal:      journalRepo,
		syncMetrics:  &metrics.SyncMetrics{},
		log:          logger.NewLogger(writer, "[MarketServer]"),
		writer:       writer,
	}
}

func (s *MarketServer) Run(ctx context.Context) {
	campaigns := []campaign{
		{name: "FBS", campaignID: s.creds.FBSCampaignID, warehouseID: s.creds.FBSWarehouseID},
		{name: "DBS", campaignID: s.creds.DBSCampaignID, warehouseID: s.creds.DBSWarehouseID},
	}

	remnants, err := s.stockService.DownloadStock(ctx)
	if err != nil {
		s.report(err)
		return
	}

	for _, c := range campaigns {
		runID, err := s.journal.StartRun(services.Marketplace, c.campaignID)
		if err != nil {
			s.log.Log("Journal unavailable: %s", err)
		}

		syncErr := s.syncCampaign(ctx, runID, c, remnants)
		if err := s.journal.FinishRun(runID, syncErr); err != nil {
			s.log.Log("Journal unavailable: %s", err)
		}

		if syncErr != nil {
			s.report(syncErr)
			return
		}
		s.log.Log("Campaign %s synced", c.name)
	}

	s.log.Log("Sync finished: %d stocks, %d prices in %d batches (bad quantity rows: %d)",
		s.syncMetrics.StocksPushed.Load(), s.syncMetrics.PricesPushed.Load(),
		s.syncMetrics.BatchesSent.Load(), s.syncMetrics.BadQuantityRows.Load())
}

func (s *MarketServer) syncCampaign(ctx context.Context, runID int64, c campaign, remnants []models.Remnant) error {
	auth := services.NewBearerAuth(s.creds.Token)
	client := services.NewBaseClient(s.cfg.APIURL, auth, s.writer, "[MarketClient]")
	offerService := get.NewOfferService(client)

	limiter := rate.NewLimiter(rate.Every(time.Minute/requestRateLimit), requestRateLimit)
	stockUpdater := update.NewStockUpdateService(client, limiter,
		s.values.MarketStockBatch, s.values.PlentyStock, s.syncMetrics, s.writer)
	priceUpdater := update.NewPriceUpdateService(client, service.NewPriceService(), limiter,
		s.values.MarketPriceBatch, s.syncMetrics, s.writer)

	offerIDs, err := offerService.OfferIDs(ctx, c.campaignID)
	if err != nil {
		return err
	}
	s.log.Log("Campaign %s: fetched %d listed offer ids", c.name, len(offerIDs))

	// Обновить остатки
	stocks := stockUpdater.BuildStocks(remnants, offerIDs, c.warehouseID)
	records, err := stockUpdater.Push(ctx, c.campaignID, stocks)
	if journalErr := s.journal.RecordBatches(runID, records); journalErr != nil {
		s.log.Log("Journal unavailable: %s", journalErr)
	}
	if err != nil {
		return err
	}

	// Поменять цены
	prices := priceUpdater.BuildPrices(remnants, offerIDs)
	records, err = priceUpdater.Push(ctx, c.campaignID, prices)
	if journalErr := s.journal.RecordBatches(runID, records); journalErr != nil {
		s.log.Log("Journal unavailable: %s", journalErr)
	}
	return err
}

func (s *MarketServer) report(err error) {
	switch service.ClassifyError(err) {
	case service.ErrorTimeout:
		s.log.Log("Превышено время ожидания...")
	case service.ErrorConnection:
		s.log.Log("%s Ошибка соединения", err)
	default:
		s.log.Log("%s ERROR_2", err)
	}
}
