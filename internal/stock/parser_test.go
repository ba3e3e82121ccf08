package stock_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"gomarketsync_api/internal/stock"
)

// buildCSV собирает csv-выгрузку в Windows-1251: шапка документа
// фиксированной высоты, заголовок, строки остатков.
func buildCSV(t *testing.T) []byte {
	t.Helper()

	var lines []string
	for i := 0; i < stock.HeaderRow; i++ {
		lines = append(lines, "Остатки часов;;;")
	}
	lines = append(lines,
		"Код;Наименование товара;Изображение;Цена;Количество;Заказ",
		"68122;BA-110-4A1;Показать;16'590.00 руб.;>10;",
		"68124;BA-110-4A2;Показать;5'990.00 руб.;2;",
		";;;;;",
	)

	var buf bytes.Buffer
	writer := transform.NewWriter(&buf, charmap.Windows1251.NewEncoder())
	if _, err := writer.Write([]byte(strings.Join(lines, "\n"))); err != nil {
		t.Fatalf("encode csv: %s", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close encoder: %s", err)
	}
	return buf.Bytes()
}

func TestParseFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ostatki.csv")
	if err := os.WriteFile(path, buildCSV(t), 0o644); err != nil {
		t.Fatalf("write csv: %s", err)
	}

	remnants, err := stock.NewProcessor().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %s", err)
	}
	if len(remnants) != 2 {
		t.Fatalf("want 2 remnants, got %d: %+v", len(remnants), remnants)
	}
	first := remnants[0]
	if first.Code != "68122" || first.Name != "BA-110-4A1" || first.Price != "16'590.00 руб." || first.Quantity != ">10" {
		t.Fatalf("bad first remnant: %+v", first)
	}
	if remnants[1].Quantity != "2" {
		t.Fatalf("bad second remnant: %+v", remnants[1])
	}
}

func TestParseFile_XLSX(t *testing.T) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	file.SetCellValue(sheet, "A1", "Остатки часов")
	header := []interface{}{"Код", "Наименование товара", "Изображение", "Цена", "Количество", "Заказ"}
	// строка 18 таблицы -- это строка заголовка с индексом 17
	file.SetSheetRow(sheet, "A18", &header)
	row1 := []interface{}{"68122", "BA-110-4A1", "Показать", "16'590.00 руб.", ">10", ""}
	file.SetSheetRow(sheet, "A19", &row1)
	row2 := []interface{}{"68124", "BA-110-4A2", "Показать", "5'990.00 руб.", "1", ""}
	file.SetSheetRow(sheet, "A20", &row2)

	path := filepath.Join(t.TempDir(), "ostatki.xlsx")
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %s", err)
	}
	file.Close()

	remnants, err := stock.NewProcessor().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %s", err)
	}
	if len(remnants) != 2 {
		t.Fatalf("want 2 remnants, got %d: %+v", len(remnants), remnants)
	}
	if remnants[0].Code != "68122" || remnants[0].Quantity != ">10" {
		t.Fatalf("bad first remnant: %+v", remnants[0])
	}
	if remnants[1].Code != "68124" || remnants[1].Price != "5'990.00 руб." {
		t.Fatalf("bad second remnant: %+v", remnants[1])
	}
}

func TestParseFile_MissesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ostatki.csv")
	if err := os.WriteFile(path, []byte("a;b\nc;d\n"), 0o644); err != nil {
		t.Fatalf("write csv: %s", err)
	}

	if _, err := stock.NewProcessor().ParseFile(path); err == nil {
		t.Fatal("want error for file without header")
	}
}

func TestParseFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ostatki.txt")
	if err := os.WriteFile(path, []byte("whatever"), 0o644); err != nil {
		t.Fatalf("write file: %s", err)
	}

	if _, err := stock.NewProcessor().ParseFile(path); err == nil {
		t.Fatal("want error for unsupported format")
	}
}
