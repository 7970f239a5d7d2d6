// Package rules is the facade a user interface drives: it owns one game,
// validates moves against the rules, and asks a MoveSelector for the
// automated opponent's replies.
package rules

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/game"
	"github.com/lgbarn/chessboard-go/internal/selector"
)

// Engine is a single game session. It is not safe for concurrent use;
// independent games use independent Engines.
type Engine struct {
	id       string
	game     *game.Game
	selector selector.MoveSelector
	baseLog  *zap.Logger
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSelector sets the policy used by ApplyEngineMove.
func WithSelector(s selector.MoveSelector) Option {
	return func(e *Engine) {
		if s != nil {
			e.selector = s
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.baseLog = l
		}
	}
}

// New starts a game from the standard initial position.
func New(opts ...Option) *Engine {
	e := newEngine(opts)
	e.reset(game.New())
	return e
}

// NewFromFEN starts a game from a FEN position.
func NewFromFEN(fen string, opts ...Option) (*Engine, error) {
	g, err := game.NewFromFEN(fen)
	if err != nil {
		return nil, err
	}
	e := newEngine(opts)
	e.reset(g)
	return e, nil
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		baseLog: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.selector == nil {
		e.selector = selector.NewSeededRandom(0)
	}
	return e
}

func (e *Engine) reset(g *game.Game) {
	e.id = uuid.NewString()
	e.game = g
	e.logger = e.baseLog.With(zap.String("game_id", e.id))
	pos := g.Current()
	e.logger.Info("game started",
		zap.String("fen", engine.PositionToFEN(&pos)),
		zap.Stringer("status", pos.Status))
}

// ID identifies the current game. Restart assigns a new one.
func (e *Engine) ID() string {
	return e.id
}

// Snapshot returns a copy of the current position.
func (e *Engine) Snapshot() chess.Position {
	return e.game.Current()
}

// FEN returns the current position in FEN.
func (e *Engine) FEN() string {
	pos := e.game.Current()
	return engine.PositionToFEN(&pos)
}

// History returns the moves played so far.
func (e *Engine) History() []chess.Move {
	return e.game.Moves()
}

// LegalMovesFrom returns the distinct destination squares of the legal
// moves starting on sq, in generation order.
func (e *Engine) LegalMovesFrom(sq chess.Square) []chess.Square {
	pos := e.game.Current()
	if pos.Status.IsTerminal() {
		return nil
	}
	var dests []chess.Square
	seen := make(map[chess.Square]bool)
	for _, m := range engine.LegalMovesFrom(&pos, sq) {
		if !seen[m.To] {
			seen[m.To] = true
			dests = append(dests, m.To)
		}
	}
	return dests
}

// ApplyMove plays the side to move's move from -> to. For a pawn
// reaching the last rank an Empty promotion means a queen; on any other
// move the promotion is ignored.
func (e *Engine) ApplyMove(from, to chess.Square, promotion chess.Piece) error {
	if !from.Valid() || !to.Valid() {
		return &errors.MoveError{
			Err:    fmt.Errorf("%w: from %s to %s", errors.ErrInvalidSquare, from, to),
			PlyNum: e.game.Plies() + 1,
		}
	}

	pos := e.game.Current()
	move := chess.Move{From: from, To: to}
	if isPromotion(&pos, from, to) {
		move.Promotion = promotion
		if promotion == chess.Empty {
			move.Promotion = chess.Queen
		}
	}

	next, err := e.game.ApplyMove(move)
	if err != nil {
		e.logger.Debug("move rejected", zap.Stringer("move", move), zap.Error(err))
		return err
	}
	e.logger.Info("move applied",
		zap.Stringer("move", move),
		zap.Int("ply", e.game.Plies()),
		zap.Stringer("status", next.Status))
	return nil
}

// ApplyEngineMove lets the selector pick and play a move for the side
// to move, and returns the move played.
func (e *Engine) ApplyEngineMove() (chess.Move, error) {
	pos := e.game.Current()
	if pos.Status.IsTerminal() {
		return chess.Move{}, fmt.Errorf("engine move: %w (%s): %w", errors.ErrGameOver, pos.Status, errors.ErrNoMovesAvailable)
	}

	choice, err := e.selector.Choose(e.game.LegalMoves())
	if err != nil {
		return chess.Move{}, errors.Wrap(err, "engine move")
	}
	next, err := e.game.ApplyMove(choice)
	if err != nil {
		return chess.Move{}, errors.Wrap(err, "engine move")
	}

	e.logger.Info("engine move applied",
		zap.Stringer("move", choice),
		zap.Int("ply", e.game.Plies()),
		zap.Stringer("status", next.Status))
	return choice, nil
}

// Undo takes back plies moves. It fails, changing nothing, when fewer
// moves have been played.
func (e *Engine) Undo(plies int) error {
	if err := e.game.Undo(plies); err != nil {
		e.logger.Debug("undo rejected", zap.Int("plies", plies), zap.Error(err))
		return err
	}
	e.logger.Info("undo", zap.Int("plies", plies), zap.Int("ply", e.game.Plies()))
	return nil
}

// Restart discards the game and begins a new one from the standard
// initial position.
func (e *Engine) Restart() {
	e.logger.Info("restart", zap.Int("ply", e.game.Plies()))
	e.reset(game.New())
}

// isPromotion reports whether from -> to moves a pawn of the side to
// move onto its last rank.
func isPromotion(pos *chess.Position, from, to chess.Square) bool {
	piece := pos.Board.Get(from)
	return chess.IsColour(piece, pos.ToMove) &&
		chess.ExtractPiece(piece) == chess.Pawn &&
		to.Rank() == chess.HomeRank(pos.ToMove.Opposite())
}
