package stock

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV читает csv-вариант выгрузки, декодируя из Windows-1251.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := transform.NewReader(file, charmap.Windows1251.NewDecoder())
	csvReader := csv.NewReader(decoder)
	csvReader.Comma = ';'
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	return rows, nil
}
