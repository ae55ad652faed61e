// Package failure defines the error markers shared by the corpus pipeline.
//
// Components tag failures with one of the sentinel errors through Wrap so the
// CLI can classify them (fatal input problems, I/O errors, validation) without
// parsing messages. Markers survive wrapping and are matched with errors.Is.
package failure
