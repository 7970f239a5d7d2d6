// Package selector picks the automated opponent's move from a legal
// move list.
package selector

import (
	"math/rand"
	"time"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// MoveSelector chooses one move from a non-empty list of legal moves.
type MoveSelector interface {
	Choose(moves []chess.Move) (chess.Move, error)
}

// Entropy is the randomness a Random selector draws from.
// *rand.Rand satisfies it.
type Entropy interface {
	Intn(n int) int
}

// Random picks uniformly among the given moves.
type Random struct {
	src Entropy
}

// NewRandom returns a Random selector drawing from src.
func NewRandom(src Entropy) *Random {
	return &Random{src: src}
}

// NewSeededRandom returns a Random selector with its own math/rand
// source. A zero seed uses the current time.
func NewSeededRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRandom(rand.New(rand.NewSource(seed)))
}

// Choose returns moves[src.Intn(len(moves))].
func (r *Random) Choose(moves []chess.Move) (chess.Move, error) {
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrNoMovesAvailable
	}
	return moves[r.src.Intn(len(moves))], nil
}
