package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"corhoh/internal/failure"
	"corhoh/internal/fileutil"
	"corhoh/internal/index"
	"corhoh/internal/logging"
	"corhoh/internal/metadata"
	"corhoh/internal/tei"
)

// Options configures one corpus build.
type Options struct {
	MetadataPath string
	TextsDir     string
	OutputPath   string
	// ProgressInterval emits a progress notice every N records; 0 disables.
	ProgressInterval int
	// Index optionally mirrors the corpus into SQLite. Its contents are
	// replaced only when the output file has been written.
	Index *index.Store
	// RunID tags the build history row written to Index.
	RunID string
}

// Result summarises a finished build.
type Result struct {
	Records   int
	Questions int
	Answers   int
	Missing   []string
	Output    string
	SHA256    string
	Bytes     int
}

// Build loads the metadata, assembles the corpus and writes it to
// opts.OutputPath. Missing transcripts are reported in the result and logged.
// Metadata problems, a missing texts directory, lock contention and write
// failures are fatal and leave both the previous output and the previous
// index in place.
func Build(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger = logging.NewComponentLogger(logger, "corpus")
	started := time.Now()

	table, err := metadata.Load(opts.MetadataPath)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("loaded metadata",
		logging.String("path", opts.MetadataPath),
		logging.Int("records", table.Len()),
		logging.Int("columns", len(table.Columns)),
	)
	if absent := absentColumns(table); len(absent) > 0 {
		logger.Debug("metadata lacks rendered columns; their elements will be empty",
			logging.Any("columns", absent),
		)
	}

	if err := checkTextsDir(opts.TextsDir); err != nil {
		return Result{}, err
	}

	lock, err := acquireOutputLock(opts.OutputPath)
	if err != nil {
		return Result{}, err
	}
	defer lock.release()

	var batch *index.Batch
	var sink Sink
	if opts.Index != nil {
		batch, err = opts.Index.Begin(ctx)
		if err != nil {
			return Result{}, failure.Wrap(failure.ErrIO, "corpus", "begin index", opts.Index.Path(), err)
		}
		defer batch.Rollback()
		sink = batch
	}

	assembled, err := Assemble(ctx, table, opts.TextsDir, opts.ProgressInterval, sink, logger)
	if err != nil {
		return Result{}, err
	}

	logger.Info(fmt.Sprintf("Total questions: %d | Total answers: %d", assembled.Questions, assembled.Answers),
		logging.Int("questions", assembled.Questions),
		logging.Int("answers", assembled.Answers),
	)
	if n := len(assembled.Missing); n > 0 {
		logging.WarnWithContext(logger,
			fmt.Sprintf("Missing transcripts: %d (records were still created with empty text)", n),
			"transcripts_missing_summary",
			logging.Int("missing", n),
		)
	}

	data := []byte(assembled.XML)
	if err := fileutil.WriteFileAtomic(opts.OutputPath, data, 0o644); err != nil {
		return Result{}, failure.Wrap(failure.ErrIO, "corpus", "write output", opts.OutputPath, err)
	}
	sum := fileutil.SumBytes(data)
	if err := verifyOutput(opts.OutputPath, sum, len(data)); err != nil {
		return Result{}, err
	}
	logger.Info(fmt.Sprintf("Wrote output: %s", opts.OutputPath),
		logging.String("path", opts.OutputPath),
		logging.Int("bytes", len(data)),
	)

	result := Result{
		Records:   assembled.Records,
		Questions: assembled.Questions,
		Answers:   assembled.Answers,
		Missing:   assembled.Missing,
		Output:    opts.OutputPath,
		SHA256:    sum,
		Bytes:     len(data),
	}

	if batch != nil {
		if err := batch.RecordBuild(ctx, index.Build{
			RunID:        opts.RunID,
			BuiltAt:      started,
			OutputPath:   result.Output,
			OutputSHA256: result.SHA256,
			Records:      result.Records,
			Questions:    result.Questions,
			Answers:      result.Answers,
			Missing:      len(result.Missing),
		}); err != nil {
			return Result{}, failure.Wrap(failure.ErrIO, "corpus", "record build", opts.Index.Path(), err)
		}
		if err := batch.Commit(); err != nil {
			return Result{}, failure.Wrap(failure.ErrIO, "corpus", "commit index", opts.Index.Path(), err)
		}
		logger.Debug("index updated", logging.String("path", opts.Index.Path()))
	}
	return result, nil
}

// verifyOutput re-reads the written file and compares it with what was
// rendered.
func verifyOutput(path, wantSum string, wantSize int) error {
	sum, size, err := fileutil.Checksum(path)
	if err != nil {
		return failure.Wrap(failure.ErrIO, "corpus", "verify output", path, err)
	}
	if sum != wantSum || size != int64(wantSize) {
		return failure.Wrap(failure.ErrIO, "corpus", "verify output",
			fmt.Sprintf("%s: wrote %d bytes (sha256 %s), read back %d bytes (sha256 %s)", path, wantSize, wantSum, size, sum), nil)
	}
	return nil
}

// absentColumns returns the rendered columns the metadata header lacks.
func absentColumns(table *metadata.Table) []string {
	var absent []string
	for _, column := range tei.Columns() {
		if !slices.Contains(table.Columns, column) {
			absent = append(absent, column)
		}
	}
	return absent
}

func checkTextsDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return failure.Wrap(failure.ErrNotFound, "corpus", "open texts directory",
				fmt.Sprintf("texts directory not found: %s", dir), nil)
		}
		return failure.Wrap(failure.ErrIO, "corpus", "open texts directory", dir, err)
	}
	if !info.IsDir() {
		return failure.Wrap(failure.ErrNotFound, "corpus", "open texts directory",
			fmt.Sprintf("not a directory: %s", dir), nil)
	}
	return nil
}
