package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"corhoh/internal/failure"
	"corhoh/internal/index"
	"corhoh/internal/logging"
	"corhoh/internal/metadata"
	"corhoh/internal/tei"
	"corhoh/internal/transcript"
)

// Sink receives every record as it is rendered. *index.Batch satisfies it.
type Sink interface {
	Add(ctx context.Context, entry index.Entry) error
}

// Assembled is an in-memory corpus ready to be written.
type Assembled struct {
	XML       string
	Records   int
	Questions int
	Answers   int
	// Missing lists the Documents IDs whose transcript file was absent, in
	// metadata order.
	Missing []string
}

// TranscriptPath returns the transcript file expected for a Documents ID.
func TranscriptPath(textsDir, documentID string) string {
	return filepath.Join(textsDir, documentID+".txt")
}

// Assemble renders every row of table in order and concatenates the TEI
// document. sink may be nil. progressInterval <= 0 disables progress notices.
func Assemble(ctx context.Context, table *metadata.Table, textsDir string, progressInterval int, sink Sink, logger *slog.Logger) (Assembled, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	total := table.Len()
	sampler := logging.NewProgressSampler(progressInterval)

	out := Assembled{Records: total}
	fragments := make([]string, 0, total)

	for i, rec := range table.Records {
		if err := ctx.Err(); err != nil {
			return Assembled{}, err
		}

		id := rec.ID()
		path := TranscriptPath(textsDir, id)
		turns, found, err := loadTurns(path)
		if err != nil {
			return Assembled{}, err
		}
		if !found {
			out.Missing = append(out.Missing, id)
			logging.WarnWithContext(logger,
				fmt.Sprintf("Missing transcript for Documents ID '%s' (%s)", id, path),
				"transcript_missing",
				logging.DocumentID(id),
				logging.String("path", path),
				logging.String(logging.FieldImpact, "record emitted with empty interview"),
				logging.String(logging.FieldErrorHint, "add the transcript file or fix the Documents ID"),
			)
		} else {
			logger.Debug("parsed transcript",
				logging.DocumentID(id),
				logging.Int("turns", len(turns)),
			)
		}

		rendered := tei.RenderRecord(rec, turns)
		fragments = append(fragments, rendered.XML)
		out.Questions += rendered.Questions
		out.Answers += rendered.Answers

		if sink != nil {
			entry := index.Entry{
				Ordinal:       i + 1,
				Record:        rec,
				Columns:       table.Columns,
				Turns:         turns,
				HasTranscript: found,
			}
			if err := sink.Add(ctx, entry); err != nil {
				return Assembled{}, failure.Wrap(failure.ErrIO, "corpus", "index record", id, err)
			}
		}

		if sampler.ShouldLog(i + 1) {
			logger.Info(fmt.Sprintf("Processed %d/%d records...", i+1, total),
				logging.Int("processed", i+1),
				logging.Int("total", total),
			)
		}
	}

	out.XML = tei.Document(fragments, out.Questions, out.Answers)
	return out, nil
}

func loadTurns(path string) ([]transcript.Turn, bool, error) {
	text, err := transcript.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, failure.Wrap(failure.ErrIO, "corpus", "read transcript", path, err)
	}
	return transcript.Parse(text), true, nil
}
