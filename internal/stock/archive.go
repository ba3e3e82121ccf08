package stock

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractArchive распаковывает zip-архив в destDir и возвращает пути файлов.
// Вложенные каталоги в архиве поставщика не встречаются и пропускаются.
func ExtractArchive(data []byte, destDir string) ([]string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	var extracted []string
	for _, file := range reader.File {
		if file.FileInfo().IsDir() || strings.Contains(file.Name, "..") {
			continue
		}
		path := filepath.Join(destDir, filepath.Base(file.Name))

		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in archive: %w", file.Name, err)
		}
		dst, err := os.Create(path)
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			src.Close()
			dst.Close()
			return nil, fmt.Errorf("failed to extract %s: %w", file.Name, err)
		}
		src.Close()
		dst.Close()
		extracted = append(extracted, path)
	}

	if len(extracted) == 0 {
		return nil, fmt.Errorf("archive contains no files")
	}
	return extracted, nil
}
