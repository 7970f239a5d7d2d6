// Package game holds the state of one game as a stack of position
// snapshots. Undo restores stored snapshots and never inverts moves.
package game

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Game is a position history. history[0] is the starting position and
// the last entry is the current one; moves[i] led from history[i] to
// history[i+1].
type Game struct {
	history []chess.Position
	moves   []chess.Move
}

// New starts a game from the standard initial position.
func New() *Game {
	return newFromPosition(chess.NewInitialPosition())
}

// NewFromFEN starts a game from a FEN position.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "new game")
	}
	return newFromPosition(pos), nil
}

func newFromPosition(pos chess.Position) *Game {
	pos.Status = engine.ComputeStatus(&pos)
	return &Game{history: []chess.Position{pos}}
}

// Current returns a copy of the current position.
func (g *Game) Current() chess.Position {
	return g.history[len(g.history)-1]
}

// Plies returns the number of moves applied since the start.
func (g *Game) Plies() int {
	return len(g.moves)
}

// Moves returns a copy of the applied moves in order.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// LegalMoves returns the legal moves of the current position, or none
// once the game is over.
func (g *Game) LegalMoves() []chess.Move {
	current := g.current()
	if current.Status.IsTerminal() {
		return nil
	}
	return engine.LegalMoves(current)
}

// ApplyMove plays m if it matches a legal move by from, to and promotion.
// The fully described legal move is applied, so callers may pass a
// partial move such as one from chess.ParseMove. On failure the game is
// unchanged.
func (g *Game) ApplyMove(m chess.Move) (chess.Position, error) {
	current := g.current()
	if current.Status.IsTerminal() {
		return chess.Position{}, g.moveError(m, fmt.Errorf("%w: %s", errors.ErrGameOver, current.Status))
	}

	legal, ok := findLegal(engine.LegalMoves(current), m)
	if !ok {
		return chess.Position{}, g.moveError(m, errors.ErrIllegalMove)
	}

	next := *current
	engine.MakeMove(&next, legal)
	next.Status = engine.ComputeStatus(&next)

	g.history = append(g.history, next)
	g.moves = append(g.moves, legal)
	return next, nil
}

// Undo restores the position plies moves back and discards everything
// after it. It fails without changing anything unless
// 1 <= plies <= Plies().
func (g *Game) Undo(plies int) error {
	if plies < 1 || plies > len(g.history)-1 {
		return errors.Wrapf(errors.ErrInsufficientHistory, "undo %d plies with %d available", plies, len(g.history)-1)
	}
	keep := len(g.history) - plies
	g.history = g.history[:keep]
	g.moves = g.moves[:keep-1]
	return nil
}

func (g *Game) current() *chess.Position {
	return &g.history[len(g.history)-1]
}

func (g *Game) moveError(m chess.Move, err error) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   len(g.moves) + 1,
		MoveText: m.String(),
		Side:     g.current().ToMove.String(),
	}
}

// findLegal returns the legal move matching m's from, to and promotion.
func findLegal(legal []chess.Move, m chess.Move) (chess.Move, bool) {
	for _, candidate := range legal {
		if candidate.Matches(m) {
			return candidate, true
		}
	}
	return chess.Move{}, false
}
