package stock

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX читает современный .xlsx вариант выгрузки.
func readXLSX(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("xlsx open error: %w", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx read error: %w", err)
	}
	return rows, nil
}
