package get

import (
	"context"
	"fmt"
	"net/http"

	"gomarketsync_api/internal/ozon/business/models/dto/request"
	"gomarketsync_api/internal/ozon/business/models/dto/response"
	"gomarketsync_api/internal/ozon/business/services"
)

const productListEndpoint = "/v2/product/list"
const productListLimit = 1000

// ProductService читает листинг товаров магазина через курсорную пагинацию.
type ProductService struct {
	client *services.BaseClient
}

func NewProductService(client *services.BaseClient) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) ProductList(ctx context.Context, lastID string) (*response.ProductListResult, error) {
	body := request.ProductList{
		Filter: request.ProductListFilter{Visibility: "ALL"},
		LastID: lastID,
		Limit:  productListLimit,
	}

	var listResponse response.ProductList
	if _, err := s.client.DoJSON(ctx, http.MethodPost, productListEndpoint, body, &listResponse); err != nil {
		return nil, fmt.Errorf("product list request failed: %w", err)
	}
	return &listResponse.Result, nil
}

// OfferIDs собирает все артикулы магазина. Курсор last_id двигается до тех
// пор, пока не наберется total позиций.
func (s *ProductService) OfferIDs(ctx context.Context) ([]string, error) {
	var offerIDs []string
	lastID := ""

	for {
		result, err := s.ProductList(ctx, lastID)
		if err != nil {
			return nil, err
		}
		for _, item := range result.Items {
			offerIDs = append(offerIDs, item.OfferID)
		}
		lastID = result.LastID
		if len(offerIDs) >= result.Total || len(result.Items) == 0 {
			break
		}
	}
	return offerIDs, nil
}
