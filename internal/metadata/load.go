package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"corhoh/internal/failure"
	"corhoh/internal/textutil"
)

// Load reads and parses the metadata file at path.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failure.Wrap(failure.ErrNotFound, "metadata", "load", path, err)
		}
		return nil, failure.Wrap(failure.ErrIO, "metadata", "load", path, err)
	}
	table, err := ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse reads a delimited table from r.
func Parse(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, "metadata", "read", "", err)
	}
	return ParseBytes(raw)
}

// ParseBytes decodes and parses a delimited table.
func ParseBytes(raw []byte) (*Table, error) {
	text := textutil.Decode(raw)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = SniffDelimiter(text)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, failure.Wrap(failure.ErrConfiguration, "metadata", "parse", "file has no header row", nil)
	}
	if err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "metadata", "parse", "malformed header", err)
	}

	columns := uniqueColumns(header)
	if !slices.Contains(columns, IDColumn) {
		return nil, failure.Wrap(failure.ErrConfiguration, "metadata", "parse",
			fmt.Sprintf("metadata file must contain a %q column", IDColumn), nil)
	}

	table := &Table{Columns: columns}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, failure.Wrap(failure.ErrConfiguration, "metadata", "parse", "malformed row", err)
		}
		if isBlankRow(row) {
			continue
		}
		values := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(row) {
				values[column] = cellValue(row[i])
			} else {
				values[column] = ""
			}
		}
		table.Records = append(table.Records, Record{values: values})
	}
	return table, nil
}

// uniqueColumns trims header names and suffixes repeats as Name.1, Name.2, ...
func uniqueColumns(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		candidate := name
		for {
			n, dup := seen[candidate]
			if !dup {
				break
			}
			seen[candidate] = n + 1
			candidate = fmt.Sprintf("%s.%d", name, n+1)
		}
		seen[candidate] = 0
		columns[i] = candidate
	}
	return columns
}

// isBlankRow reports a line holding nothing but whitespace. Rows made of
// empty delimited cells are kept.
func isBlankRow(row []string) bool {
	return len(row) == 1 && strings.TrimSpace(row[0]) == ""
}
