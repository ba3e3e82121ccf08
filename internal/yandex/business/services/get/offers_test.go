package get_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gomarketsync_api/internal/yandex/business/services"
	"gomarketsync_api/internal/yandex/business/services/get"
)

func TestOfferIDs_PageTokens(t *testing.T) {
	var requests int

	mux := http.NewServeMux()
	mux.HandleFunc("/campaigns/111/offer-mapping-entries", func(w http.ResponseWriter, r *http.Request) {
		requests++
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Fatalf("bad Authorization header: %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "200" {
			t.Fatalf("bad limit: %q", got)
		}

		switch r.URL.Query().Get("page_token") {
		case "":
			fmt.Fprint(w, `{"result":{"paging":{"nextPageToken":"page-2"},"offerMappingEntries":[{"offer":{"shopSku":"A"}},{"offer":{"shopSku":"B"}}]}}`)
		case "page-2":
			fmt.Fprint(w, `{"result":{"paging":{"nextPageToken":""},"offerMappingEntries":[{"offer":{"shopSku":"C"}}]}}`)
		default:
			t.Fatalf("unexpected page_token %q", r.URL.Query().Get("page_token"))
		}
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := services.NewBaseClient(server.URL, services.NewBearerAuth("token-1"), io.Discard, "[MarketClient]")
	offerIDs, err := get.NewOfferService(client).OfferIDs(context.Background(), "111")
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

func TestOfferIDs_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"code":"FORBIDDEN"}]}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := services.NewBaseClient(server.URL, services.NewBearerAuth("t"), io.Discard, "[MarketClient]")
	if _, err := get.NewOfferService(client).OfferIDs(context.Background(), "111"); err == nil {
		t.Fatal("want error for 403 from catalog")
	}
}
