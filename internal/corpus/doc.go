// Package corpus drives a full build: it loads the metadata table, pairs every
// row with its transcript, renders the TEI records, and writes the assembled
// document.
//
// Builds run on a single goroutine and are deterministic: identical inputs
// produce byte-identical output. A missing transcript is never fatal; the
// record is still emitted with an empty interview and the omission is logged.
// The output file is replaced atomically while an advisory lock next to it
// keeps concurrent builds from interleaving.
package corpus
