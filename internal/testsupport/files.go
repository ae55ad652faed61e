package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"corhoh/internal/config"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteTranscript stores text as <texts_dir>/<id>.txt.
func WriteTranscript(t testing.TB, cfg *config.Config, id, text string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.TextsDir, id+".txt")
	WriteFile(t, path, []byte(text))
	return path
}

// Row is one metadata line for WriteCorpus.
type Row map[string]string

// WriteCorpus writes a comma-separated metadata file with the given columns
// and rows, plus one transcript per entry of transcripts keyed by
// Documents ID. Cells must not contain commas or quotes.
func WriteCorpus(t testing.TB, cfg *config.Config, columns []string, rows []Row, transcripts map[string]string) {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))
	b.WriteByte('\n')
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = row[col]
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}
	WriteFile(t, cfg.Paths.Metadata, []byte(b.String()))

	for id, text := range transcripts {
		WriteTranscript(t, cfg, id, text)
	}
}
