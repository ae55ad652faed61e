package metadata

import "strings"

// IDColumn is the mandatory column joining a row to its transcript.
const IDColumn = "Documents ID"

// Record is one metadata row. Lookups never fail: absent columns and missing
// cells read as "".
type Record struct {
	values map[string]string
}

// NewRecord builds a record from column/value pairs. Tests and callers that
// assemble rows by hand use it; Load builds records directly.
func NewRecord(values map[string]string) Record {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return Record{values: cp}
}

// Get returns the raw cell for column, or "" when absent.
func (r Record) Get(column string) string {
	return r.values[column]
}

// Has reports whether the row carries the column at all.
func (r Record) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

// ID returns the trimmed Documents ID.
func (r Record) ID() string {
	return strings.TrimSpace(r.Get(IDColumn))
}

// Table is the parsed metadata file.
type Table struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}
