// Package textutil decodes the text files the corpus is built from.
//
// Inputs arrive either as UTF-8 (sometimes with a byte-order mark written by
// spreadsheet exports) or as legacy Windows-1252. Decode picks the right
// reading without ever failing so one stray byte cannot abort a build.
package textutil
