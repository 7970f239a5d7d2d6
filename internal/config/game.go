package config

import (
	"strings"
	"time"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// GameConfig holds settings for the game session.
type GameConfig struct {
	// HumanColour is "white" or "black"; the engine plays the other side.
	HumanColour string `yaml:"human_colour"`

	// EngineDelay is the pause before the engine replies.
	EngineDelay time.Duration `yaml:"engine_delay"`

	// Seed for the engine's random move choice. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`

	// StartFEN is the starting position. Empty means the standard one.
	StartFEN string `yaml:"start_fen"`
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() GameConfig {
	return GameConfig{
		HumanColour: "white",
		EngineDelay: 500 * time.Millisecond,
	}
}

// HumanSide returns the colour the human plays.
func (g GameConfig) HumanSide() chess.Colour {
	if strings.EqualFold(g.HumanColour, "black") {
		return chess.Black
	}
	return chess.White
}

// Validate checks the game settings.
func (g GameConfig) Validate() error {
	switch strings.ToLower(g.HumanColour) {
	case "white", "black":
	default:
		return invalid("human_colour %q must be white or black", g.HumanColour)
	}
	if g.EngineDelay < 0 {
		return invalid("engine_delay %s is negative", g.EngineDelay)
	}
	if g.StartFEN != "" {
		if _, err := engine.NewPositionFromFEN(g.StartFEN); err != nil {
			return invalid("start_fen: %v", err)
		}
	}
	return nil
}
