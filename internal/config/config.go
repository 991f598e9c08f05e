// Package config holds the run configuration: which file to edit, how to log,
// and how to render. Values come from defaults, an optional TOML file, then flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/idilsaglam/todo/internal/store/linestore"
	"github.com/idilsaglam/todo/internal/ui"
)

const DefaultConfigFileName = "todo.toml"

// Log configures the session logger.
type Log struct {
	Level      string `toml:"level"`  // debug|info|warn|error
	Format     string `toml:"format"` // text|logfmt|json
	Timestamps bool   `toml:"timestamps"`
}

type Config struct {
	File    string `toml:"file"`
	Theme   string `toml:"theme"`
	NoColor bool   `toml:"no_color"`
	TUI     bool   `toml:"tui"`
	Log     Log    `toml:"log"`
}

func Default() Config {
	return Config{
		File:  linestore.DefaultPath,
		Theme: "classic",
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load overlays the TOML file at path on top of Default. A missing file is an
// error only when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.File == "" {
		return linestore.ErrEmptyPath
	}
	if !ui.ValidTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.Themes, ", "))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := ParseFormatter(c.Log.Format); err != nil {
		return err
	}
	return nil
}

// NewLogger builds a logger writing to w. Invalid values fall back to info/text;
// call Validate first to reject them instead.
func (l Log) NewLogger(w io.Writer) *log.Logger {
	level, err := ParseLevel(l.Level)
	if err != nil {
		level = log.InfoLevel
	}
	formatter, err := ParseFormatter(l.Format)
	if err != nil {
		formatter = log.TextFormatter
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: l.Timestamps,
		Prefix:          "todo",
	})
}

// ParseLevel maps a level name to a log.Level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

// ParseFormatter maps a format name to a log.Formatter.
func ParseFormatter(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return log.TextFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("unknown log format %q", format)
}
