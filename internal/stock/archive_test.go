package stock_test

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gomarketsync_api/internal/stock"
)

func buildZip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range files {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %q: %s", name, err)
		}
		if _, err := entry.Write(content); err != nil {
			t.Fatalf("write zip entry %q: %s", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close zip: %s", err)
	}
	return buf.Bytes()
}

func TestExtractArchive(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"ostatki.csv": []byte("a;b;c"),
	})
	dir := t.TempDir()

	extracted, err := stock.ExtractArchive(data, dir)
	if err != nil {
		t.Fatalf("ExtractArchive: %s", err)
	}
	if len(extracted) != 1 {
		t.Fatalf("want 1 file, got %d: %v", len(extracted), extracted)
	}
	if filepath.Base(extracted[0]) != "ostatki.csv" {
		t.Fatalf("bad extracted name: %s", extracted[0])
	}
	content, err := os.ReadFile(extracted[0])
	if err != nil {
		t.Fatalf("read extracted: %s", err)
	}
	if string(content) != "a;b;c" {
		t.Fatalf("bad extracted content: %q", content)
	}
}

func TestExtractArchive_Empty(t *testing.T) {
	data := buildZip(t, nil)

	if _, err := stock.ExtractArchive(data, t.TempDir()); err == nil {
		t.Fatal("want error for archive without files")
	}
}

func TestExtractArchive_NotZip(t *testing.T) {
	if _, err := stock.ExtractArchive([]byte("not a zip"), t.TempDir()); err == nil {
		t.Fatal("want error for broken archive")
	}
}
