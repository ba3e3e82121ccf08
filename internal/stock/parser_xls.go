package stock

import (
	"fmt"

	"github.com/extrame/xls"
)

// readXLS читает бинарный .xls (формат, в котором поставщик шлет ostatki).
func readXLS(path string) ([][]string, error) {
	workbook, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("xls open error: %w", err)
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("xls file has no sheets")
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.FirstCol(); j++ {
			cells = append(cells, "")
		}
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
