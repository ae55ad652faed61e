package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"corhoh/internal/metadata"
	"corhoh/internal/transcript"
)

// Entry is one corpus record as handed to the index.
type Entry struct {
	// Ordinal is the record's 1-based position in the metadata file.
	Ordinal       int
	Record        metadata.Record
	Columns       []string
	Turns         []transcript.Turn
	HasTranscript bool
}

// Build summarises a finished corpus run.
type Build struct {
	RunID        string
	BuiltAt      time.Time
	OutputPath   string
	OutputSHA256 string
	Records      int
	Questions    int
	Answers      int
	Missing      int
}

// Stats reports aggregate row counts.
type Stats struct {
	Records   int
	Questions int
	Answers   int
	Missing   int
}

// Batch is one build's worth of index writes. Begin clears the previous
// records inside the transaction, so a build that fails or is rolled back
// leaves the last committed index untouched.
type Batch struct {
	tx   *sql.Tx
	done bool
}

// Begin opens a write transaction and clears every record in it. Build
// history is kept.
func (s *Store) Begin(ctx context.Context) (*Batch, error) {
	ctx = ensureContext(ctx)
	var tx *sql.Tx
	err := retryOnBusy(ctx, func() error {
		var beginErr error
		tx, beginErr = s.db.BeginTx(ctx, nil)
		if beginErr != nil {
			return beginErr
		}
		if _, execErr := tx.ExecContext(ctx, "DELETE FROM records"); execErr != nil {
			_ = tx.Rollback()
			return execErr
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("begin index batch: %w", err)
	}
	return &Batch{tx: tx}, nil
}

// Add stores one record with its metadata cells and turns.
func (b *Batch) Add(ctx context.Context, entry Entry) error {
	ctx = ensureContext(ctx)
	questions, answers := transcript.Count(entry.Turns)

	if _, err := b.tx.ExecContext(ctx,
		`INSERT INTO records (ordinal, document_id, has_transcript, questions, answers)
         VALUES (?, ?, ?, ?, ?)`,
		entry.Ordinal, entry.Record.ID(), boolToInt(entry.HasTranscript), questions, answers,
	); err != nil {
		return fmt.Errorf("insert record %d: %w", entry.Ordinal, err)
	}

	for _, column := range entry.Columns {
		if !entry.Record.Has(column) {
			continue
		}
		if _, err := b.tx.ExecContext(ctx,
			"INSERT INTO record_fields (ordinal, column_name, value) VALUES (?, ?, ?)",
			entry.Ordinal, column, entry.Record.Get(column),
		); err != nil {
			return fmt.Errorf("insert field %q: %w", column, err)
		}
	}

	for i, turn := range entry.Turns {
		if _, err := b.tx.ExecContext(ctx,
			"INSERT INTO turns (ordinal, position, kind, label, text) VALUES (?, ?, ?, ?, ?)",
			entry.Ordinal, i, turn.Kind.String(), turn.Label, turn.Text,
		); err != nil {
			return fmt.Errorf("insert turn %s: %w", turn.Label, err)
		}
	}
	return nil
}

// RecordBuild appends a build summary to the history table.
func (b *Batch) RecordBuild(ctx context.Context, build Build) error {
	ctx = ensureContext(ctx)
	builtAt := build.BuiltAt
	if builtAt.IsZero() {
		builtAt = time.Now()
	}
	_, err := b.tx.ExecContext(ctx,
		`INSERT INTO builds (run_id, built_at, output_path, output_sha256, records, questions, answers, missing)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		build.RunID, builtAt.UTC().Format(time.RFC3339Nano), build.OutputPath, build.OutputSHA256,
		build.Records, build.Questions, build.Answers, build.Missing,
	)
	if err != nil {
		return fmt.Errorf("record build: %w", err)
	}
	return nil
}

// Commit publishes the batch.
func (b *Batch) Commit() error {
	if b.done {
		return errors.New("index batch already finished")
	}
	b.done = true
	if err := b.tx.Commit(); err != nil {
		return fmt.Errorf("commit index batch: %w", err)
	}
	return nil
}

// Rollback discards the batch. It is a no-op after Commit.
func (b *Batch) Rollback() error {
	if b == nil || b.done {
		return nil
	}
	b.done = true
	return b.tx.Rollback()
}

// Stats returns record and turn totals for the current index contents.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
                COALESCE(SUM(questions), 0),
                COALESCE(SUM(answers), 0),
                COALESCE(SUM(CASE WHEN has_transcript = 0 THEN 1 ELSE 0 END), 0)
         FROM records`,
	).Scan(&st.Records, &st.Questions, &st.Answers, &st.Missing)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return st, nil
}

// Turns returns the stored turns of the record at ordinal, in source order.
func (s *Store) Turns(ctx context.Context, ordinal int) ([]transcript.Turn, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT kind, label, text FROM turns WHERE ordinal = ? ORDER BY position",
		ordinal,
	)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var turns []transcript.Turn
	for rows.Next() {
		var kind string
		var turn transcript.Turn
		if err := rows.Scan(&kind, &turn.Label, &turn.Text); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turn.Kind = parseKind(kind)
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

// BuildCount returns the number of recorded builds.
func (s *Store) BuildCount(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM builds").Scan(&n); err != nil {
		return 0, fmt.Errorf("count builds: %w", err)
	}
	return n, nil
}

func parseKind(kind string) transcript.Kind {
	switch kind {
	case transcript.Question.String():
		return transcript.Question
	case transcript.Answer.String():
		return transcript.Answer
	default:
		return 0
	}
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
