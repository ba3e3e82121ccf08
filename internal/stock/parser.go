package stock

import (
	"fmt"
	"path/filepath"
	"strings"

	"gomarketsync_api/internal/stock/models"
)

// HeaderRow -- номер строки заголовка в файле остатков (нумерация с нуля).
// Выше заголовка поставщик держит шапку документа фиксированной высоты.
const HeaderRow = 17

const (
	columnCode     = "Код"
	columnName     = "Наименование товара"
	columnPrice    = "Цена"
	columnQuantity = "Количество"
)

// Processor отвечает за разбор табличных остатков в список Remnant.
type Processor struct {
	headerRow int
}

func NewProcessor() *Processor {
	return &Processor{headerRow: HeaderRow}
}

// SetHeaderRow переопределяет номер строки заголовка.
func (p *Processor) SetHeaderRow(row int) *Processor {
	if row >= 0 {
		p.headerRow = row
	}
	return p
}

// ParseFile разбирает файл остатков. Формат определяется расширением:
// .xls, .xlsx или .csv (Windows-1251, разделитель ';').
func (p *Processor) ParseFile(path string) ([]models.Remnant, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		rows, err = readXLS(path)
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("unsupported remnants file format: %s", filepath.Base(path))
	}
	if err != nil {
		return nil, err
	}

	return p.processRows(rows)
}

func (p *Processor) processRows(rows [][]string) ([]models.Remnant, error) {
	if len(rows) <= p.headerRow {
		return nil, fmt.Errorf("remnants file has %d rows, header expected at row %d", len(rows), p.headerRow)
	}

	header := rows[p.headerRow]
	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.TrimSpace(col)] = i
	}
	for _, required := range []string{columnCode, columnPrice, columnQuantity} {
		if _, ok := columnMap[required]; !ok {
			return nil, fmt.Errorf("remnants header misses column %q", required)
		}
	}

	remnants := make([]models.Remnant, 0, len(rows)-p.headerRow-1)
	for _, row := range rows[p.headerRow+1:] {
		code := cell(row, columnMap, columnCode)
		if code == "" {
			continue // итоговые и пустые строки в хвосте файла
		}
		remnants = append(remnants, models.Remnant{
			Code:     code,
			Name:     cell(row, columnMap, columnName),
			Price:    cell(row, columnMap, columnPrice),
			Quantity: cell(row, columnMap, columnQuantity),
		})
	}
	return remnants, nil
}

func cell(row []string, columnMap map[string]int, column string) string {
	idx, ok := columnMap[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
