package corpus_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"corhoh/internal/config"
	"corhoh/internal/corpus"
	"corhoh/internal/failure"
	"corhoh/internal/index"
	"corhoh/internal/logging"
	"corhoh/internal/metadata"
	"corhoh/internal/tei"
	"corhoh/internal/testsupport"
	"corhoh/internal/transcript"
)

var columns = []string{"Documents ID", "Name", "Camp"}

func newLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return logger, &buf
}

func optionsFor(cfg *config.Config) corpus.Options {
	return corpus.Options{
		MetadataPath:     cfg.Paths.Metadata,
		TextsDir:         cfg.Paths.TextsDir,
		OutputPath:       cfg.Paths.Output,
		ProgressInterval: cfg.Corpus.ProgressInterval,
	}
}

func TestBuildWritesCorpus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCorpus(t, cfg, columns,
		[]testsupport.Row{
			{"Documents ID": "1", "Name": "Anna", "Camp": "Auschwitz"},
			{"Documents ID": "2", "Name": "Ben"},
		},
		map[string]string{"1": "Q1: Hello\nA1: Hi\n"},
	)
	logger, logs := newLogger(t)

	result, err := corpus.Build(context.Background(), optionsFor(cfg), logger)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if result.Records != 2 || result.Questions != 1 || result.Answers != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Missing) != 1 || result.Missing[0] != "2" {
		t.Fatalf("expected missing [2], got %v", result.Missing)
	}

	got, err := os.ReadFile(cfg.Paths.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	first := tei.RenderRecord(metadata.NewRecord(map[string]string{"Documents ID": "1", "Name": "Anna", "Camp": "Auschwitz"}),
		[]transcript.Turn{
			{Kind: transcript.Question, Label: "Q1", Text: "Hello"},
			{Kind: transcript.Answer, Label: "A1", Text: "Hi"},
		})
	second := tei.RenderRecord(metadata.NewRecord(map[string]string{"Documents ID": "2", "Name": "Ben", "Camp": ""}), nil)
	want := tei.Document([]string{first.XML, second.XML}, 1, 1)
	if string(got) != want {
		t.Fatalf("output mismatch:\n%s\nwant:\n%s", got, want)
	}
	if result.Bytes != len(want) || len(result.SHA256) != 64 {
		t.Fatalf("unexpected size/checksum: %d %q", result.Bytes, result.SHA256)
	}

	text := logs.String()
	for _, needle := range []string{
		"Missing transcript for Documents ID '2'",
		"Total questions: 1 | Total answers: 1",
		"Missing transcripts: 1 (records were still created with empty text)",
		"Wrote output: " + cfg.Paths.Output,
	} {
		if !strings.Contains(text, needle) {
			t.Fatalf("expected log %q in:\n%s", needle, text)
		}
	}

	next := flock.New(corpus.LockPath(cfg.Paths.Output))
	ok, err := next.TryLock()
	if err != nil || !ok {
		t.Fatalf("expected lock to be released after build: ok=%v err=%v", ok, err)
	}
	_ = next.Unlock()
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCorpus(t, cfg, columns,
		[]testsupport.Row{{"Documents ID": "7", "Name": "Chaim & Sons"}},
		map[string]string{"7": "preamble\nQ1: a <b>\ncontinued\nA1: c\n"},
	)

	first, err := corpus.Build(context.Background(), optionsFor(cfg), logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	firstBytes, err := os.ReadFile(cfg.Paths.Output)
	if err != nil {
		t.Fatal(err)
	}
	second, err := corpus.Build(context.Background(), optionsFor(cfg), logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	secondBytes, err := os.ReadFile(cfg.Paths.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(firstBytes, secondBytes) || first.SHA256 != second.SHA256 {
		t.Fatal("expected byte-identical output across runs")
	}
	if !bytes.Contains(firstBytes, []byte("<u>a &lt;b&gt;\ncontinued</u>")) {
		t.Fatalf("expected continuation text in utterance:\n%s", firstBytes)
	}
}

func TestBuildMissingMetadata(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_, err := corpus.Build(context.Background(), optionsFor(cfg), logging.NewNop())
	if !errors.Is(err, failure.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if _, statErr := os.Stat(cfg.Paths.Output); !os.IsNotExist(statErr) {
		t.Fatal("expected no output on failure")
	}
}

func TestBuildMissingTextsDir(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMetadata("Documents ID\n1\n"))
	if err := os.RemoveAll(cfg.Paths.TextsDir); err != nil {
		t.Fatal(err)
	}

	_, err := corpus.Build(context.Background(), optionsFor(cfg), logging.NewNop())
	if !errors.Is(err, failure.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if !strings.Contains(err.Error(), "texts directory not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildMissingIDColumn(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMetadata("ID,Name\n1,Anna\n"))
	_, err := corpus.Build(context.Background(), optionsFor(cfg), logging.NewNop())
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestBuildRefusesConcurrentWriter(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMetadata("Documents ID\n1\n"))
	held := flock.New(corpus.LockPath(cfg.Paths.Output))
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("could not take lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	_, err = corpus.Build(context.Background(), optionsFor(cfg), logging.NewNop())
	if !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected lock contention error, got %v", err)
	}
}

func TestBuildHonoursCancellation(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMetadata("Documents ID\n1\n2\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := corpus.Build(ctx, optionsFor(cfg), logging.NewNop())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, statErr := os.Stat(cfg.Paths.Output); !os.IsNotExist(statErr) {
		t.Fatal("expected no output after cancellation")
	}
}

func TestBuildLogsProgress(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithProgressInterval(2),
		testsupport.WithMetadata("Documents ID\n1\n2\n3\n4\n5\n"),
	)
	logger, logs := newLogger(t)

	if _, err := corpus.Build(context.Background(), optionsFor(cfg), logger); err != nil {
		t.Fatal(err)
	}
	text := logs.String()
	if !strings.Contains(text, "Processed 2/5 records...") || !strings.Contains(text, "Processed 4/5 records...") {
		t.Fatalf("expected progress notices in:\n%s", text)
	}
	if strings.Contains(text, "Processed 5/5 records...") {
		t.Fatal("expected no notice off the cadence")
	}
}

func indexedCorpus(t *testing.T) (*config.Config, *index.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithIndex())
	testsupport.WriteCorpus(t, cfg, columns,
		[]testsupport.Row{
			{"Documents ID": "1", "Name": "Anna"},
			{"Documents ID": "2", "Name": "Ben"},
			{"Documents ID": "3", "Name": "Cara"},
		},
		map[string]string{
			"1": "Q1: a\nA1: b\nQ2: c\n",
			"3": "A1: only answer\n",
		},
	)
	store, err := index.Open(context.Background(), cfg.Paths.Index)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return cfg, store
}

func indexStats(t *testing.T, store *index.Store) index.Stats {
	t.Helper()
	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return stats
}

func TestBuildFeedsIndex(t *testing.T) {
	cfg, store := indexedCorpus(t)
	ctx := context.Background()

	opts := optionsFor(cfg)
	opts.Index = store
	opts.RunID = "run-1"
	result, err := corpus.Build(ctx, opts, logging.NewNop())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := index.Stats{
		Records:   result.Records,
		Questions: result.Questions,
		Answers:   result.Answers,
		Missing:   len(result.Missing),
	}
	if stats := indexStats(t, store); stats != want {
		t.Fatalf("index stats %+v, want %+v", stats, want)
	}
	if want != (index.Stats{Records: 3, Questions: 2, Answers: 2, Missing: 1}) {
		t.Fatalf("unexpected build totals: %+v", want)
	}
	builds, err := store.BuildCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if builds != 1 {
		t.Fatalf("expected one build row, got %d", builds)
	}
}

func TestBuildKeepsIndexWhenLockHeld(t *testing.T) {
	cfg, store := indexedCorpus(t)
	opts := optionsFor(cfg)
	opts.Index = store
	if _, err := corpus.Build(context.Background(), opts, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	before := indexStats(t, store)

	held := flock.New(corpus.LockPath(cfg.Paths.Output))
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("could not take lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	if _, err := corpus.Build(context.Background(), opts, logging.NewNop()); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected lock contention error, got %v", err)
	}
	if after := indexStats(t, store); after != before {
		t.Fatalf("index changed by refused build: %+v, want %+v", after, before)
	}
}

func TestBuildKeepsIndexOnMetadataError(t *testing.T) {
	cfg, store := indexedCorpus(t)
	opts := optionsFor(cfg)
	opts.Index = store
	if _, err := corpus.Build(context.Background(), opts, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	before := indexStats(t, store)

	testsupport.WriteFile(t, cfg.Paths.Metadata, []byte("ID,Name\n1,Anna\n"))
	if _, err := corpus.Build(context.Background(), opts, logging.NewNop()); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if after := indexStats(t, store); after != before {
		t.Fatalf("index changed by failed build: %+v, want %+v", after, before)
	}
	builds, err := store.BuildCount(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if builds != 1 {
		t.Fatalf("expected only the successful build in history, got %d", builds)
	}
}

func TestBuildKeepsIndexOnCancellation(t *testing.T) {
	cfg, store := indexedCorpus(t)
	opts := optionsFor(cfg)
	opts.Index = store
	if _, err := corpus.Build(context.Background(), opts, logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	before := indexStats(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := corpus.Build(ctx, opts, logging.NewNop()); err == nil {
		t.Fatal("expected cancelled build to fail")
	}
	if after := indexStats(t, store); after != before {
		t.Fatalf("index changed by cancelled build: %+v, want %+v", after, before)
	}
}

func TestBuildLogsAbsentColumns(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMetadata("Documents ID,Name\n1,Anna\n"))
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := corpus.Build(context.Background(), optionsFor(cfg), logger); err != nil {
		t.Fatal(err)
	}
	text := buf.String()
	if !strings.Contains(text, "metadata lacks rendered columns") {
		t.Fatalf("expected absent column notice in:\n%s", text)
	}
	for _, column := range []string{"Rec_Date", "Imm_Destination"} {
		if !strings.Contains(text, column) {
			t.Fatalf("expected %q among absent columns:\n%s", column, text)
		}
	}
}

func TestBuildRepairsLegacyEncoding(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithMetadata("Documents ID\n9\n"))
	// Windows-1252 bytes: "Q1: It" 0xD5 "s cold" -> Õ repaired to an apostrophe.
	raw := append([]byte("Q1: It"), 0xD5)
	raw = append(raw, []byte("s cold\n")...)
	testsupport.WriteFile(t, corpus.TranscriptPath(cfg.Paths.TextsDir, "9"), raw)

	if _, err := corpus.Build(context.Background(), optionsFor(cfg), logging.NewNop()); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(cfg.Paths.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(got, []byte("<u>It's cold</u>")) {
		t.Fatalf("expected repaired apostrophe:\n%s", got)
	}
}
