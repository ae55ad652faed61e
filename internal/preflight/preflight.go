package preflight

import (
	"strings"

	"corhoh/internal/config"
	"corhoh/internal/failure"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every input and output check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckFileReadable("Metadata file", cfg.Paths.Metadata),
		CheckDirectoryReadable("Texts directory", cfg.Paths.TextsDir),
		CheckOutputLocation("Output file", cfg.Paths.Output),
	}
	if cfg.IndexEnabled() {
		results = append(results, CheckOutputLocation("Index database", cfg.Paths.Index))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}

// Err folds failed results into one not-found error, or nil when all passed.
func Err(results []Result) error {
	failed := Failed(results)
	if len(failed) == 0 {
		return nil
	}
	details := make([]string, 0, len(failed))
	for _, r := range failed {
		details = append(details, r.Name+": "+r.Detail)
	}
	return failure.Wrap(failure.ErrNotFound, "preflight", "check inputs", strings.Join(details, "; "), nil)
}
