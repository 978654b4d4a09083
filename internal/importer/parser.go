package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"product-console/internal/console"

	"github.com/jszwec/csvutil"
)

// Row is one CSV line. Fields stay as text so each row goes through the same
// validation as the form.
type Row struct {
	Line     int    `csv:"-"`
	ID       string `csv:"ID"`
	Name     string `csv:"Name"`
	Category string `csv:"Category"`
	Price    string `csv:"Price"`
	Stock    string `csv:"Stock"`
}

// Form converts the row to form input
func (r Row) Form() console.Form {
	return console.Form{ID: r.ID, Name: r.Name, Category: r.Category, Price: r.Price, Stock: r.Stock}
}

// ErrMissingIDColumn is returned when the header has no ID column
var ErrMissingIDColumn = errors.New("CSV header has no ID column")

var canonicalColumns = map[string]string{
	"id":       "ID",
	"name":     "Name",
	"category": "Category",
	"price":    "Price",
	"stock":    "Stock",
}

// ParseFile reads every row from a CSV file
func ParseFile(filename string) ([]Row, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads every row. Header names are matched case-insensitively and
// unknown columns are ignored.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingIDColumn
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	header, hasID := normalizeHeader(header)
	if !hasID {
		return nil, ErrMissingIDColumn
	}

	decoder, err := csvutil.NewDecoder(reader, header...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var rows []Row
	// line 1 is the header
	for line := 2; ; line++ {
		var row Row
		if err := decoder.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode CSV line %d: %w", line, err)
		}
		row.Line = line
		rows = append(rows, row)
	}

	return rows, nil
}

func normalizeHeader(header []string) ([]string, bool) {
	out := make([]string, len(header))
	hasID := false
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if canonical, ok := canonicalColumns[key]; ok {
			out[i] = canonical
			hasID = hasID || canonical == "ID"
			continue
		}
		out[i] = h
	}
	return out, hasID
}
