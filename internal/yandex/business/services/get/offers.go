package get

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"gomarketsync_api/internal/yandex/business/models/dto/response"
	"gomarketsync_api/internal/yandex/business/services"
)

const offerMappingsLimit = 200

// OfferService читает каталог кампании постранично через page_token.
type OfferService struct {
	client *services.BaseClient
}

func NewOfferService(client *services.BaseClient) *OfferService {
	return &OfferService{client: client}
}

func (s *OfferService) OfferMappings(ctx context.Context, campaignID, pageToken string) (*response.OfferMappingResult, error) {
	endpoint := fmt.Sprintf("/campaigns/%s/offer-mapping-entries", campaignID)
	query := url.Values{
		"limit": []string{strconv.Itoa(offerMappingsLimit)},
	}
	if pageToken != "" {
		query.Set("page_token", pageToken)
	}

	var mappings response.OfferMappings
	if _, err := s.client.DoJSON(ctx, http.MethodGet, endpoint, query, nil, &mappings); err != nil {
		return nil, fmt.Errorf("offer mappings request failed: %w", err)
	}
	return &mappings.Result, nil
}

// OfferIDs собирает все артикулы кампании. Пустой nextPageToken
// означает последнюю страницу.
func (s *OfferService) OfferIDs(ctx context.Context, campaignID string) ([]string, error) {
	var offerIDs []string
	pageToken := ""

	for {
		result, err := s.OfferMappings(ctx, campaignID, pageToken)
		if err != nil {
			return nil, err
		}
		for _, entry := range result.OfferMappingEntries {
			offerIDs = append(offerIDs, entry.Offer.ShopSku)
		}
		pageToken = result.Paging.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return offerIDs, nil
}
