// Package config loads deck build settings from the environment and command
// line flags. Flags override environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of one build.
type Config struct {
	Version    string     `env:"PITCHDECK_VERSION"     envDefault:"v1"`
	Output     string     `env:"PITCHDECK_OUTPUT"`
	PreviewDir string     `env:"PITCHDECK_PREVIEW_DIR"`
	Outline    string     `env:"PITCHDECK_OUTLINE"`
	Thumbnail  bool       `env:"PITCHDECK_THUMBNAIL"   envDefault:"true"`
	Proof      bool       `env:"PITCHDECK_PROOF"`
	LogLevel   slog.Level `env:"PITCHDECK_LOG_LEVEL"   envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig reads the environment, then parses flags from args into a
// Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Version, "version", cfg.Version, "deck version to build (v1 or v2)")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output .pptx path (default: the version's fixed path)")
	fs.StringVar(&cfg.PreviewDir, "preview", cfg.PreviewDir, "directory to write slide PNG previews to")
	fs.StringVar(&cfg.Outline, "outline", cfg.Outline, "write an outline (.md) or handout (.html) to this path")
	fs.BoolVar(&cfg.Thumbnail, "thumbnail", cfg.Thumbnail, "embed a thumbnail of the first slide")
	fs.BoolVar(&cfg.Proof, "proof", cfg.Proof, "OCR the rendered slides and report unreadable headings")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
