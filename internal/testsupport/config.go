package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"corhoh/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test. The
// texts directory is created; the metadata file is not.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Metadata = filepath.Join(base, "Cor_META_updated.csv")
	cfgVal.Paths.TextsDir = filepath.Join(base, "500_numbered")
	cfgVal.Paths.Output = filepath.Join(base, "CORHOH.xml")
	cfgVal.Paths.Index = ""
	cfgVal.Logging.File = ""

	if err := os.MkdirAll(cfgVal.Paths.TextsDir, 0o755); err != nil {
		t.Fatalf("mkdir texts dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithIndex enables the SQLite index export inside the temp directory.
func WithIndex() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.Index = filepath.Join(b.baseDir, "corpus.db")
	}
}

// WithProgressInterval overrides the progress cadence.
func WithProgressInterval(every int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Corpus.ProgressInterval = every
	}
}

// WithMetadata writes the given CSV content to the metadata path.
func WithMetadata(content string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Paths.Metadata, []byte(content))
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.Output)
}
