package stock

import (
	"context"
	"fmt"
	"io"
	"os"

	"gomarketsync_api/internal/stock/models"
	"gomarketsync_api/pkg/logger"
)

// StockService скачивает архив остатков поставщика и разбирает его в список
// Remnant. Распакованный файл живет только на время разбора.
type StockService struct {
	fetcher   Fetcher
	processor *Processor
	feedURL   string
	log       logger.Logger
}

func NewStockService(fetcher Fetcher, feedURL string, writer io.Writer) *StockService {
	return &StockService{
		fetcher:   fetcher,
		processor: NewProcessor(),
		feedURL:   feedURL,
		log:       logger.NewLogger(writer, "[StockService]"),
	}
}

func (s *StockService) DownloadStock(ctx context.Context) ([]models.Remnant, error) {
	s.log.Log("Downloading remnants archive from %s", s.feedURL)

	body, err := s.fetcher.Fetch(ctx, s.feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download remnants archive: %w", err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read remnants archive: %w", err)
	}

	tempDir, err := os.MkdirTemp("", "ostatki")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir) // файл остатков не храним

	extracted, err := ExtractArchive(data, tempDir)
	if err != nil {
		return nil, err
	}

	remnants, err := s.processor.ParseFile(extracted[0])
	if err != nil {
		return nil, err
	}

	s.log.Log("Parsed %d remnant rows", len(remnants))
	return remnants, nil
}
