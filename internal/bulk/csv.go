// Package bulk parses CSV uploads into dispatcher inputs for batch QR
// generation. The first row must be a header; column names are matched
// case-insensitively against a fixed set of synonyms (url/link, title/name,
// description, type, text/content) so spreadsheets exported from different
// tools keep working without renaming columns.
package bulk

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ebelikov/go-qr-studio/models"
)

var (
	// ErrEmptyFile is returned when the reader contains no header row.
	ErrEmptyFile = errors.New("csv file is empty")

	// ErrNoContentColumn is returned when the header has neither a URL nor
	// a text column, leaving nothing to encode.
	ErrNoContentColumn = errors.New("csv header has no url or text column")
)

// column indices resolved from the header; -1 means absent.
type columns struct {
	url         int
	title       int
	description int
	typ         int
	text        int
}

// Parse reads the CSV and resolves each data row into a BulkRow. Rows that
// are entirely empty are skipped. Malformed records (wrong field count) stop
// parsing with an error since the remaining offsets would be unreliable.
//
// The content type of a row is taken from its "type" column when present;
// otherwise a row with a URL value is a url code and anything else is plain
// text. The raw payload prefers the text column and falls back to the URL
// column.
func Parse(r io.Reader) ([]models.BulkRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	cols := resolveColumns(header)
	if cols.url < 0 && cols.text < 0 {
		return nil, ErrNoContentColumn
	}

	var rows []models.BulkRow
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %w", line+1, err)
		}

		line++
		if emptyRecord(record) {
			continue
		}

		rows = append(rows, resolveRow(line, record, cols))
	}

	return rows, nil
}

func resolveColumns(header []string) columns {
	cols := columns{url: -1, title: -1, description: -1, typ: -1, text: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "url", "link":
			cols.url = i
		case "title", "name":
			cols.title = i
		case "description":
			cols.description = i
		case "type":
			cols.typ = i
		case "text", "content":
			cols.text = i
		}
	}

	return cols
}

func resolveRow(line int, record []string, cols columns) models.BulkRow {
	urlValue := field(record, cols.url)
	textValue := field(record, cols.text)

	raw := textValue
	if raw == "" {
		raw = urlValue
	}

	contentType := models.ContentType(strings.ToLower(field(record, cols.typ)))
	if contentType == "" {
		if urlValue != "" {
			contentType = models.TypeURL
			raw = urlValue
		} else {
			contentType = models.TypeText
		}
	}
	if contentType == models.TypeURL && urlValue != "" {
		raw = urlValue
	}

	return models.BulkRow{
		Line:        line,
		Title:       field(record, cols.title),
		Description: field(record, cols.description),
		Content:     models.QRContent{Type: contentType, Raw: raw},
	}
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}

func emptyRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
