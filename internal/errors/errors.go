// Package errors provides sentinel errors and error types for the rules engine.
// Callers inspect failures with errors.Is() and errors.As(); every failing
// operation leaves the game state exactly as it was before the call.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move outside the legal set of the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInsufficientHistory indicates an undo reaching past the first position.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrNoMovesAvailable indicates a move selector was given no moves.
	ErrNoMovesAvailable = errors.New("no moves available")

	// ErrGameOver indicates a move was attempted in a finished game. A
	// finished game has no legal moves, so it also matches ErrIllegalMove.
	ErrGameOver = fmt.Errorf("game is over: %w", ErrIllegalMove)

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square label that is not on the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move failure with the ply and move it concerns.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply the move would have been (0 if unknown)
	MoveText string // The move in long algebraic form (if known)
	Side     string // Side to move when the error occurred (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Side != "" {
		parts = append(parts, e.Side+" to move")
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
