package get_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gomarketsync_api/internal/ozon/business/services"
	"gomarketsync_api/internal/ozon/business/services/get"
)

func TestOfferIDs_Pagination(t *testing.T) {
	var requests int

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/product/list", func(w http.ResponseWriter, r *http.Request) {
		requests++
		if got := r.Header.Get("Client-Id"); got != "client-1" {
			t.Fatalf("bad Client-Id header: %q", got)
		}
		if got := r.Header.Get("Api-Key"); got != "key-1" {
			t.Fatalf("bad Api-Key header: %q", got)
		}

		var body struct {
			LastID string `json:"last_id"`
			Limit  int    `json:"limit"`
			Filter struct {
				Visibility string `json:"visibility"`
			} `json:"filter"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %s", err)
		}
		if body.Limit != 1000 || body.Filter.Visibility != "ALL" {
			t.Fatalf("bad request body: %+v", body)
		}

		switch body.LastID {
		case "":
			fmt.Fprint(w, `{"result":{"items":[{"product_id":1,"offer_id":"A"},{"product_id":2,"offer_id":"B"}],"total":3,"last_id":"cursor-1"}}`)
		case "cursor-1":
			fmt.Fprint(w, `{"result":{"items":[{"product_id":3,"offer_id":"C"}],"total":3,"last_id":"cursor-2"}}`)
		default:
			t.Fatalf("unexpected last_id %q", body.LastID)
		}
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	auth := services.NewApiKeyAuth("client-1", "key-1")
	client := services.NewBaseClient(server.URL, auth, io.Discard, "[OzonClient]")
	svc := get.NewProductService(client)

	offerIDs, err := svc.OfferIDs(context.Background())
	if err != nil {
		t.Fatalf("OfferIDs: %s", err)
	}
	if requests != 2 {
		t.Fatalf("want 2 requests, got %d", requests)
	}
	if len(offerIDs) != 3 || offerIDs[0] != "A" || offerIDs[2] != "C" {
		t.Fatalf("bad offer ids: %v", offerIDs)
	}
}

func TestOfferIDs_EmptyListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"items":[],"total":0,"last_id":""}}`)
	}))
	defer server.Close()

	client := services.NewBaseClient(server.URL, services.NewApiKeyAuth("c", "k"), io.Discard, "[OzonClient]")
	offerIDs, err := get.NewProductService(client).OfferIDs(context.Background())
	if err != nil {
		t.Fatalf("OfferIDs: %s", err)
	}
	if len(offerIDs) != 0 {
		t.Fatalf("want empty listing, got %v", offerIDs)
	}
}

func TestOfferIDs_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":16,"message":"Client-Id and Api-Key headers are required"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := services.NewBaseClient(server.URL, services.NewApiKeyAuth("c", "k"), io.Discard, "[OzonClient]")
	if _, err := get.NewProductService(client).OfferIDs(context.Background()); err == nil {
		t.Fatal("want error for 401 from listing")
	}
}
