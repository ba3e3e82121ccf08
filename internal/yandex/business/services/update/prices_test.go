package update_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"

	"gomarketsync_api/internal/stock/models"
	"gomarketsync_api/internal/yandex/business/services"
	"gomarketsync_api/internal/yandex/business/services/update"
	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/business/service"
)

func newPriceService(t *testing.T, apiURL string, batchSize int) *update.PriceUpdateService {
	t.Helper()
	client := services.NewBaseClient(apiURL, services.NewBearerAuth("t"), io.Discard, "[MarketClient]")
	return update.NewPriceUpdateService(client, service.NewPriceService(), rate.NewLimiter(rate.Inf, 0), batchSize, &metrics.SyncMetrics{}, io.Discard)
}

func TestBuildPrices(t *testing.T) {
	svc := newPriceService(t, "http://unused", 500)

	remnants := []models.Remnant{
		{Code: "A", Price: "16'590.00 руб."},
		{Code: "B", Price: "руб."}, // нечитаемая цена
		{Code: "X", Price: "990 руб."},
	}
	offerIDs := []string{"A", "B"}

	prices := svc.BuildPrices(remnants, offerIDs)
	if len(prices) != 1 {
		t.Fatalf("want 1 price item, got %d: %+v", len(prices), prices)
	}
	item := prices[0]
	if item.ID != "A" || item.Price.Value != 16590 || item.Price.CurrencyID != "RUR" {
		t.Fatalf("bad price item: %+v", item)
	}
}

func TestPushPrices_Batches(t *testing.T) {
	var batchSizes []int

	mux := http.NewServeMux()
	mux.HandleFunc("/campaigns/222/offer-prices/updates", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("bad method: %s", r.Method)
		}
		var body struct {
			Offers []struct {
				ID string `json:"id"`
			} `json:"offers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %s", err)
		}
		batchSizes = append(batchSizes, len(body.Offers))
		fmt.Fprint(w, `{"status":"OK"}`)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	svc := newPriceService(t, server.URL, 2)

	remnants := []models.Remnant{
		{Code: "A", Price: "100 руб."},
		{Code: "B", Price: "200 руб."},
		{Code: "C", Price: "300 руб."},
	}
	offerIDs := []string{"A", "B", "C"}

	records, err := svc.Push(context.Background(), "222", svc.BuildPrices(remnants, offerIDs))
	if err != nil {
		t.Fatalf("Push: %s", err)
	}
	if len(batchSizes) != 2 || batchSizes[0] != 2 || batchSizes[1] != 1 {
		t.Fatalf("bad batch sizes: %v", batchSizes)
	}
	if len(records) != 2 || records[0].Kind != "prices" {
		t.Fatalf("bad journal records: %+v", records)
	}
}
