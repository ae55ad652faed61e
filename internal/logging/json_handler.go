package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
)

const jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// jsonKeys renames slog's built-in keys. Attributes inside groups are left
// alone.
var jsonKeys = map[string]string{
	slog.TimeKey:    "ts",
	slog.LevelKey:   "level",
	slog.MessageKey: "msg",
	slog.SourceKey:  "caller",
}

func newJSONHandler(w io.Writer, level slog.Leveler, withCaller bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   withCaller,
		ReplaceAttr: rewriteJSONAttr,
	})
}

func rewriteJSONAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	key, builtin := jsonKeys[a.Key]
	if !builtin {
		return a
	}
	value := a.Value
	switch a.Key {
	case slog.TimeKey:
		value = slog.StringValue(value.Time().UTC().Format(jsonTimeLayout))
	case slog.LevelKey:
		if lvl, ok := value.Any().(slog.Level); ok {
			value = slog.StringValue(levelName(lvl))
		}
	case slog.SourceKey:
		if src, ok := value.Any().(*slog.Source); ok {
			value = slog.StringValue(shortCaller(src))
		}
	}
	return slog.Attr{Key: key, Value: value}
}

// levelName is the lower-case level used in JSON output.
func levelName(lvl slog.Level) string {
	switch {
	case lvl >= slog.LevelError:
		return "error"
	case lvl >= slog.LevelWarn:
		return "warn"
	case lvl >= slog.LevelInfo:
		return "info"
	}
	return "debug"
}

// shortCaller renders a source location as dir/file.go:line.
func shortCaller(src *slog.Source) string {
	if src == nil || src.File == "" {
		return ""
	}
	dir, file := filepath.Split(src.File)
	name := filepath.Join(filepath.Base(dir), file)
	return name + ":" + strconv.Itoa(src.Line)
}
