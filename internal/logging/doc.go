// Package logging assembles structured slog loggers and formatting helpers used
// across the corpus build.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so components tag log lines with
// document identifiers, run identifiers, and component names in a uniform
// shape. The package also provides a no-op logger for tests and wiring code
// that cannot fail, plus a sampler that paces progress notices.
//
// Prefer these constructors over hand-rolled slog setup so every command emits
// data with the same shape and routing guarantees.
package logging
