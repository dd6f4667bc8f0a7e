// Package logging builds the slog logger used by the genart command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Output formats.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

var levelMatches = map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
}

// ParseLevel converts a level name (case-insensitive) to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	if l, ok := levelMatches[strings.ToUpper(strings.TrimSpace(level))]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("logging: unknown level %q", level)
}

// ValidFormat reports whether format is one of auto, text or json.
func ValidFormat(format string) bool {
	switch format {
	case FormatAuto, FormatText, FormatJSON, "":
		return true
	}
	return false
}

// New returns a logger writing to w. With FormatAuto the output is text
// when w is a terminal and JSON otherwise.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if !ValidFormat(format) {
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	if format == FormatAuto || format == "" {
		format = FormatJSON
		if isTerminal(w) {
			format = FormatText
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	if format == FormatText {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
