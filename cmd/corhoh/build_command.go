package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"corhoh/internal/config"
	"corhoh/internal/corpus"
	"corhoh/internal/failure"
	"corhoh/internal/index"
	"corhoh/internal/logging"
	"corhoh/internal/preflight"
)

func runBuild(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	if err := preflight.Err(preflight.RunAll(cfg)); err != nil {
		return &exitError{code: 2, err: err}
	}

	logger, runID, err := ctx.logger(cfg)
	if err != nil {
		return err
	}

	opts := corpus.Options{
		MetadataPath:     cfg.Paths.Metadata,
		TextsDir:         cfg.Paths.TextsDir,
		OutputPath:       cfg.Paths.Output,
		ProgressInterval: cfg.Corpus.ProgressInterval,
		RunID:            runID,
	}

	var store *index.Store
	if cfg.IndexEnabled() {
		store, err = openIndex(cmd, cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Index = store
	}

	started := time.Now()
	result, err := corpus.Build(cmd.Context(), opts, logger)
	if err != nil {
		if failure.IsInputProblem(err) {
			return &exitError{code: 2, err: err}
		}
		return err
	}

	logger.Debug("build finished",
		logging.Duration("elapsed", time.Since(started)),
		logging.String("sha256", result.SHA256),
	)

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprintln(out, renderBuildSummary(result, store))
	}
	return nil
}

func openIndex(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*index.Store, error) {
	store, err := index.Open(cmd.Context(), cfg.Paths.Index)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, "index", "open", cfg.Paths.Index, err)
	}
	logger.Info("exporting corpus index", logging.String("path", cfg.Paths.Index))
	return store, nil
}

func renderBuildSummary(result corpus.Result, store *index.Store) string {
	rows := [][]string{
		{"Records", strconv.Itoa(result.Records)},
		{"Questions", strconv.Itoa(result.Questions)},
		{"Answers", strconv.Itoa(result.Answers)},
		{"Missing transcripts", strconv.Itoa(len(result.Missing))},
		{"Output", result.Output},
	}
	if store != nil {
		rows = append(rows, []string{"Index", store.Path()})
	}
	return renderTable([]string{"Item", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

// writeLines prints each line to w.
func writeLines(w io.Writer, lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
