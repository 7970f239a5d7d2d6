package config

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Glyph styles for drawing the board.
const (
	GlyphsASCII   = "ascii"
	GlyphsUnicode = "unicode"
)

// DisplayConfig holds settings related to board output.
type DisplayConfig struct {
	// Glyphs is GlyphsASCII or GlyphsUnicode.
	Glyphs string `yaml:"glyphs"`

	// Flip draws the board from Black's side.
	Flip bool `yaml:"flip"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() DisplayConfig {
	return DisplayConfig{Glyphs: GlyphsASCII}
}

// Validate checks the display settings.
func (d DisplayConfig) Validate() error {
	switch d.Glyphs {
	case GlyphsASCII, GlyphsUnicode:
		return nil
	}
	return invalid("glyphs %q must be %s or %s", d.Glyphs, GlyphsASCII, GlyphsUnicode)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() LogConfig {
	return LogConfig{Level: "warn", Format: "console"}
}

// Validate checks the logging settings.
func (l LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return invalid("log level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "console", "json":
		return nil
	}
	return invalid("log format %q must be console or json", l.Format)
}

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	Workers int `yaml:"workers"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() PerftConfig {
	return PerftConfig{Workers: 4}
}

// Validate checks the perft settings.
func (p PerftConfig) Validate() error {
	if p.Workers < 1 {
		return invalid("perft workers %d must be at least 1", p.Workers)
	}
	return nil
}
