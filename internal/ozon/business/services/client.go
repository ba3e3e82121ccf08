package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gomarketsync_api/metrics"
	"gomarketsync_api/pkg/logger"
)

const Marketplace = "ozon"

type BaseClient struct {
	ApiURL string
	auth   AuthEngine
	log    logger.Logger
	client *http.Client
}

func NewBaseClient(apiURL string, auth AuthEngine, writer io.Writer, logPrefix string) *BaseClient {
	return &BaseClient{
		ApiURL: apiURL,
		auth:   auth,
		log:    logger.NewLogger(writer, logPrefix),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// DoJSON выполняет запрос к Ozon Seller API и декодирует ответ.
// Возвращает HTTP-статус для журнала батчей.
func (c *BaseClient) DoJSON(ctx context.Context, method, endpoint string, requestBody interface{}, response interface{}) (int, error) {
	var bodyBytes []byte
	if requestBody != nil {
		var err error
		bodyBytes, err = json.Marshal(requestBody)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.ApiURL+endpoint, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.auth.SetApiKey(req)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("request was cancelled: %w", ctx.Err())
		default:
			return 0, fmt.Errorf("failed to execute request: %w", err)
		}
	}
	defer resp.Body.Close()
	metrics.RecordMarketplaceRequest(Marketplace, endpoint, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("non-OK status %d from %s: %s", resp.StatusCode, endpoint, snippet(body))
	}

	if response != nil {
		if err := json.Unmarshal(body, response); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func snippet(body []byte) string {
	const limit = 512
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
