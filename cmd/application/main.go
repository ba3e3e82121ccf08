package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"sync"

	"gomarketsync_api/config"
	"gomarketsync_api/internal/journal"
	ozonapp "gomarketsync_api/internal/ozon/app"
	"gomarketsync_api/internal/stock"
	marketapp "gomarketsync_api/internal/yandex/app"
	"gomarketsync_api/metrics"
	"gomarketsync_api/migrations/infrastructure"
	journalmigrations "gomarketsync_api/migrations/marketplaces/journal"
	"gomarketsync_api/pkg/dbconnect"
	"gomarketsync_api/pkg/dbconnect/migration"
	"gomarketsync_api/pkg/dbconnect/postgres"
	"gomarketsync_api/pkg/middleware"
)

func main() {
	log.Printf("\nStarted app\n")

	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	ozonCreds, err := config.GetOzonCredentials()
	if err != nil {
		log.Fatalf("Ozon credentials: %s", err)
	}
	marketCreds, err := config.GetMarketCredentials()
	if err != nil {
		log.Fatalf("Market credentials: %s", err)
	}

	var journalRepo journal.Journal = journal.Noop{}
	if cfg.Journal.Enabled {
		var connector dbconnect.Database = postgres.NewPgConnector(&cfg.Postgres)
		db, err := connector.Connect()
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %s", err)
		}
		defer db.Close()

		migrationApply := []migration.MigrationInterface{
			&infrastructure.MigrationsTable{},
			&journalmigrations.CreateSyncSchema{},
			&journalmigrations.SyncRunsTable{},
			&journalmigrations.SyncBatchesTable{},
		}
		for _, _migration := range migrationApply {
			if err := _migration.UpMigration(db); err != nil {
				log.Fatalf("Migration failed: %v", err)
			}
		}
		log.Printf("Journal migrations applied successfully!")
		journalRepo = journal.NewPgJournal(db)
	}

	go serveOps(cfg.Ops.ListenAddr)

	writer := os.Stdout
	ctx := context.Background()
	wg := sync.WaitGroup{}

	wg.Add(2)
	go func() {
		defer wg.Done()
		stockService := stock.NewStockService(stock.NewHTTPFetcher(), cfg.Stock.FeedURL, writer)
		server := ozonapp.NewOzonServer(cfg, ozonCreds, stockService, journalRepo, writer)
		server.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		stockService := stock.NewStockService(stock.NewHTTPFetcher(), cfg.Stock.FeedURL, writer)
		server := marketapp.NewMarketServer(cfg, marketCreds, stockService, journalRepo, writer)
		server.Run(ctx)
	}()
	wg.Wait()
}

// serveOps поднимает служебный эндпоинт на время прогона.
func serveOps(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.MetricsHandler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if err := http.ListenAndServe(addr, middleware.PrometheusMiddleware(mux)); err != nil {
		log.Printf("Ops endpoint stopped: %v", err)
	}
}

func getConfigPath() string {
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}
