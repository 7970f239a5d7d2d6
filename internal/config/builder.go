package config

import "time"

// ConfigBuilder provides a fluent API for layering overrides, such as
// command-line flags, on top of a Config.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts a builder from an existing Config. The Config is modified in place.
func From(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithHumanColour sets the side the human plays.
func (b *ConfigBuilder) WithHumanColour(colour string) *ConfigBuilder {
	b.cfg.Game.HumanColour = colour
	return b
}

// WithEngineDelay sets the pause before engine replies.
func (b *ConfigBuilder) WithEngineDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Game.EngineDelay = d
	return b
}

// WithSeed sets the engine's random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithGlyphs sets the board glyph style.
func (b *ConfigBuilder) WithGlyphs(glyphs string) *ConfigBuilder {
	b.cfg.Display.Glyphs = glyphs
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(flip bool) *ConfigBuilder {
	b.cfg.Display.Flip = flip
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithPerftWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}
