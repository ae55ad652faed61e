package logging

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

const consoleTimeLayout = "2006-01-02 15:04:05"

// consoleHandler writes one line per record for people reading a terminal:
//
//	2026-01-19 10:04:05 WARN [corpus] – Missing transcript document_id=12 (corpus/assemble.go:88)
//
// The component attribute moves into the bracketed header. Later attributes
// replace earlier ones with the same key. The caller is appended only when
// the handler was built with withCaller.
type consoleHandler struct {
	out        *syncWriter
	level      slog.Leveler
	withCaller bool
	component  string
	prefix     string
	preset     []field
}

type field struct {
	key   string
	value string
}

// syncWriter serializes line writes shared by every derived handler.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) writeLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line)
	return err
}

func newConsoleHandler(w io.Writer, level slog.Leveler, withCaller bool) slog.Handler {
	return &consoleHandler{out: &syncWriter{w: w}, level: level, withCaller: withCaller}
}

func (h *consoleHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	component := h.component
	fields := slices.Clone(h.preset)
	r.Attrs(func(a slog.Attr) bool {
		fields = collectField(fields, &component, h.prefix, a)
		return true
	})

	when := r.Time
	if when.IsZero() {
		when = time.Now()
	}
	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		msg = "(no message)"
	}

	var line strings.Builder
	line.WriteString(when.Local().Format(consoleTimeLayout))
	line.WriteByte(' ')
	line.WriteString(r.Level.String())
	if component != "" {
		line.WriteString(" [" + component + "]")
	}
	line.WriteString(" – ")
	line.WriteString(msg)
	for _, f := range mergeFields(fields) {
		line.WriteString(" " + f.key + "=" + f.value)
	}
	if h.withCaller {
		if caller := shortCaller(r.Source()); caller != "" {
			line.WriteString(" (" + caller + ")")
		}
	}
	line.WriteByte('\n')
	return h.out.writeLine(line.String())
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.preset = slices.Clone(h.preset)
	for _, a := range attrs {
		next.preset = collectField(next.preset, &next.component, h.prefix, a)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// collectField appends a rendered attribute, flattening groups into dotted
// keys. A top-level component attribute sets *component once instead.
func collectField(dst []field, component *string, prefix string, a slog.Attr) []field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			dst = collectField(dst, component, inner, member)
		}
		return dst
	}
	if prefix == "" && a.Key == FieldComponent {
		if *component == "" {
			*component = plainValue(a.Value)
		}
		return dst
	}
	return append(dst, field{key: prefix + a.Key, value: quotedValue(a.Value)})
}

func mergeFields(fields []field) []field {
	if len(fields) < 2 {
		return fields
	}
	seen := make(map[string]int, len(fields))
	merged := fields[:0:0]
	for _, f := range fields {
		if at, ok := seen[f.key]; ok {
			merged[at].value = f.value
			continue
		}
		seen[f.key] = len(merged)
		merged = append(merged, f)
	}
	return merged
}

func plainValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Local().Format(consoleTimeLayout)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
	}
	return v.String()
}

// quotedValue quotes values that would otherwise break key=value parsing.
func quotedValue(v slog.Value) string {
	s := plainValue(v)
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}
