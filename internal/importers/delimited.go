package importers

import (
	"encoding/csv"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Row is a single header-keyed record from a delimited file. Lookups
// are by lowercased header name.
type Row map[string]string

// Get returns the first non-empty value among the named columns.
func (r Row) Get(names ...string) string {
	for _, n := range names {
		if v, ok := r[strings.ToLower(n)]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Has reports whether the named column existed in the header.
func (r Row) Has(name string) bool {
	_, ok := r[strings.ToLower(name)]
	return ok
}

// readRows parses raw delimited text into records without header
// treatment. Row-level errors (quote problems, truncated records) are
// logged and skipped rather than aborting the file. Returns nil when
// zero usable rows resulted, signaling the caller to fail the import
// with a format error.
func (b *base) readRows(raw string) [][]string {
	reader := newCSVReader(raw)

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			b.logger().Warn("skipping malformed row", zap.Error(err))
			continue
		}
		rows = append(rows, record)
	}
	if len(rows) == 0 {
		return nil
	}
	return rows
}

// readHeaderRows parses raw delimited text treating the first record as
// column headers and returns one Row per data record. Returns nil when
// there is no header or no usable data rows.
func (b *base) readHeaderRows(raw string) []Row {
	records := b.readRows(raw)
	if len(records) < 2 {
		return nil
	}

	header := records[0]
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(keys))
		for i, key := range keys {
			if i < len(record) {
				row[key] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}
	return rows
}

func newCSVReader(raw string) *csv.Reader {
	reader := csv.NewReader(strings.NewReader(normalizeNewlines(raw)))
	reader.FieldsPerRecord = -1 // exports disagree on column counts even within one file
	reader.LazyQuotes = true
	return reader
}

// normalizeNewlines folds Windows and legacy Mac line endings to \n
// before parsing.
func normalizeNewlines(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.ReplaceAll(raw, "\r", "\n")
}
