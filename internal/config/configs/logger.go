package configs

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Logger configures the structured logger. Level is one of debug, info,
// warn or error; Format is text or json. AddSource attaches the calling
// file and line to every record.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// Validate rejects unknown levels and formats.
func (c Logger) Validate() error {
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case LogFormatText, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be %s or %s, got %q", LogFormatText, LogFormatJSON, c.Format)
	}
}

func (c Logger) slogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.Level)
	}
}

// NewHandler builds the slog handler writing to w. It assumes Validate
// passed; an unknown level falls back to info.
func (c Logger) NewHandler(w io.Writer) slog.Handler {
	level, _ := c.slogLevel()
	opts := &slog.HandlerOptions{Level: level, AddSource: c.AddSource}
	if strings.ToLower(c.Format) == LogFormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
