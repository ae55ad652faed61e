// Package metadata reads the corpus metadata table.
//
// The table is delimited text with a header row; the delimiter (comma,
// semicolon, tab, pipe or colon) is detected from the first lines. Every cell
// is kept as a string exactly as written so dates and identifiers are never
// reformatted. Absent cells and the usual missing-value markers ("NA",
// "N/A", "None", "NULL", "nan" and friends) read as the empty string. The "Documents ID"
// column is mandatory: it names each record's transcript file and becomes
// the record's identifier in the corpus.
package metadata
