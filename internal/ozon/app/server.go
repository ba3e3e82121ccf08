package app

import (
	"context"
	"io"
	"time"

	"golang.org/x/time/rate"

	"gomarketsync_api/config"
	"gomarketsync_api/config/values"
	"gomarketsync_api/internal/journal"
	"gomarketsync_api/internal/ozon/business/services"
	"gomarketsync_api/internal/ozon/business/services/get"
	"gomarketsync_api/internal/ozon/business/services/update"
	"gomarketsync_api/internal/stock"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/business/service"
	"gomarketsync_api/pkg/logger"
)

const requestRateLimit = 50 // запросов в минуту к Seller API

// OzonServer гонит полный цикл синхронизации магазина Ozon:
// листинг -> остатки поставщика -> батчи остатков -> батчи цен.
type OzonServer struct {
	cfg          config.OzonConfig
	creds        *config.OzonCredentials
	values       values.SyncValues
	stockService *stock.StockService
	journal      journal.Journal
	syncMetrics  *metrics.SyncMetrics
	log          logger.Logger
	writer       io.Writer
}

func NewOzonServer(cfg *config.AppConfig, creds *config.OzonCredentials, stockService *stock.StockService, journalRepo journal.Journal, writer io.Writer) *OzonServer {
	return &OzonServer{
		cfg:          cfg.Ozon,
		creds:        creds,
		values:       cfg.Values,
		stockService: stockService,
		journal:      journalRepo,
		syncMetrics:  &metrics.SyncMetrics{},
		log:          logger.NewLogger(writer, "[OzonServer]"),
		writer:       writer,
	}
}

func (s *OzonServer) Run(ctx context.Context) {
	runID, err := s.journal.StartRun(services.Marketplace, s.creds.ClientID)
	if err != nil {
		s.log.Log("Journal unavailable: %s", err)
	}

	syncErr := s.sync(ctx, runID)
	if err := s.journal.FinishRun(runID, syncErr); err != nil {
		s.log.Log("Journal unavailable: %s", err)
	}

	if syncErr != nil {
		s.report(syncErr)
		return
	}
	s.log.Log("Sync finished: %d stocks, %d prices in %d batches (bad quantity rows: %d)",
		s.syncMetrics.StocksPushed.Load(), s.syncMetrics.PricesPushed.Load(),
		s.syncMetrics.BatchesSent.Load(), s.syncMetrics.BadQuantityRows.Load())
}

func (s *OzonServer) sync(ctx context.Context, runID int64) error {
	auth := services.NewApiKeyAuth(s.creds.ClientID, s.creds.SellerToken)
	client := services.NewBaseClient(s.cfg.APIURL, auth, s.writer, "[OzonClient]")
	productService := get.NewProductService(client)

	limiter := rate.NewLimiter(rate.Every(time.Minute/requestRateLimit), requestRateLimit)
	stockUpdater := update.NewStockUpdateService(client, limiter,
		s.values.OzonStockBatch, s.values.PlentyStock, s.syncMetrics, s.writer)
	priceUpdater := update.NewPriceUpdateService(client, service.NewPriceService(), limiter,
		s.values.OzonPriceBatch, s.syncMetrics, s.writer)

	offerIDs, err := productService.OfferIDs(ctx)
	if err != nil {
		return err
	}
	s.log.Log("Fetched %d listed offer ids", len(offerIDs))

	remnants, err := s.stockService.DownloadStock(ctx)
	if err != nil {
		return err
	}

	// Обновить остатки
	stocks := stockUpdater.BuildStocks(remnants, offerIDs)
	records, err := stockUpdater.Push(ctx, stocks)
	if journalErr := s.journal.RecordBatches(runID, records); journalErr != nil {
		s.log.Log("Journal unavailable: %s", journalErr)
	}
	if err != nil {
		return err
	}

	// Поменять цены
	prices := priceUpdater.BuildPrices(remnants, offerIDs)
	records, err = priceUpdater.Push(ctx, prices)
	if journalErr := s.journal.RecordBatches(runID, records); journalErr != nil {
		s.log.Log("Journal unavailable: %s", journalErr)
	}
	return err
}

func (s *OzonServer) report(err error) {
	switch service.ClassifyError(err) {
	case service.ErrorTimeout:
		s.log.Log("Превышено время ожидания...")
	case service.ErrorConnection:
		s.log.Log("%s Ошибка соединения", err)
	default:
		s.log.Log("%s ERROR_2", err)
	}
}
