// Package extractor turns an uploaded report file into the raw text blob
// the parser consumes. The POS backoffice emits the same report as CSV,
// XLSX or PDF, and the CSV exports come out of the terminals in
// Windows-1252 more often than UTF-8.
package extractor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// Read consumes one report file and returns its text content. The
// filename is only used to pick the decoder by extension; unknown
// extensions are treated as plain text.
func Read(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", filename, err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(data)
	case ".xlsx":
		return fromXLSX(data)
	default:
		return decodeText(data), nil
	}
}

// ReadFile reads a report from disk.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()
	return Read(f, path)
}

// decodeText strips a UTF-8 BOM and transcodes legacy terminal exports.
// Valid UTF-8 passes through; anything else is assumed Windows-1252,
// which covers the accented characters ("Período", "Operação") the
// terminals produce.
func decodeText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

// fromPDF extracts plain text from a PDF report, page by page. The
// library panics on some malformed files, so the whole extraction is
// guarded.
func fromPDF(data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("PDF extraction crashed: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font, len(fontNames))
		for _, name := range fontNames {
			f := page.Font(name)
			fonts[name] = &f
		}
		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if pageText = strings.TrimSpace(pageText); pageText != "" {
			pages = append(pages, pageText)
		}
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("no readable text in PDF; the file may be image-based or scanned")
	}
	return strings.Join(pages, "\n"), nil
}

// fromXLSX flattens the first sheet of a spreadsheet export into CSV
// lines, so downstream parsing sees the same shape as the native CSV
// report.
func fromXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return "", fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteCell(cell))
		}
	}
	return b.String(), nil
}

// quoteCell applies CSV quoting so cell values survive the round trip
// through the comma-delimited intermediate form.
func quoteCell(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
