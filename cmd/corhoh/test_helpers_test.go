package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"corhoh/internal/config"
	"corhoh/internal/testsupport"
)

// isolateCLI points HOME and the working directory at temp dirs so no user or
// project configuration leaks into a test.
func isolateCLI(t *testing.T) {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	work := filepath.Join(base, "work")
	for _, dir := range []string{home, work} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", home)
	t.Setenv("CORHOH_METADATA", "")
	t.Setenv("CORHOH_TEXTS_DIR", "")
	t.Setenv("CORHOH_OUTPUT", "")
	t.Chdir(work)
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func pathArgs(cfg *config.Config) []string {
	return []string{
		"--metadata", cfg.Paths.Metadata,
		"--texts-dir", cfg.Paths.TextsDir,
		"--output", cfg.Paths.Output,
	}
}

func sampleCorpus(t *testing.T, opts ...testsupport.ConfigOption) *config.Config {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	testsupport.WriteCorpus(t, cfg, []string{"Documents ID", "Name"},
		[]testsupport.Row{
			{"Documents ID": "1", "Name": "Anna"},
			{"Documents ID": "2", "Name": "Ben"},
		},
		map[string]string{"1": "Q1: Where were you born?\nA1: In Lodz.\n"},
	)
	return cfg
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
