package stock_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gomarketsync_api/internal/stock"
)

func TestDownloadStock(t *testing.T) {
	archive := buildZip(t, map[string][]byte{
		"ostatki.csv": buildCSV(t),
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer server.Close()

	svc := stock.NewStockService(stock.NewHTTPFetcher(), server.URL, io.Discard)
	remnants, err := svc.DownloadStock(context.Background())
	if err != nil {
		t.Fatalf("DownloadStock: %s", err)
	}
	if len(remnants) != 2 {
		t.Fatalf("want 2 remnants, got %d", len(remnants))
	}
	if remnants[0].Code != "68122" {
		t.Fatalf("bad first remnant: %+v", remnants[0])
	}
}

func TestDownloadStock_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := stock.NewStockService(stock.NewHTTPFetcher(), server.URL, io.Discard)
	if _, err := svc.DownloadStock(context.Background()); err == nil {
		t.Fatal("want error for 503 from feed")
	}
}
