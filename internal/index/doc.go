// Package index exports a built corpus into a SQLite database so the records,
// their metadata cells, and every parsed turn can be queried without
// re-parsing the XML.
//
// The database is derived data. Each build writes through one Batch: the
// previous records are cleared and the new ones added in a single
// transaction that is committed only once the XML output is on disk, so the
// file always mirrors the last successful build. Schema changes
// bump the version in schema.go; users delete the database to adopt them.
package index
