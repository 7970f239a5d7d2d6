package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// MoveStrings returns the UCI form of each move, in order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// SortedMoveStrings is MoveStrings sorted lexically, for comparing move
// sets produced in different orders.
func SortedMoveStrings(moves []chess.Move) []string {
	out := MoveStrings(moves)
	sort.Strings(out)
	return out
}

// FindMove returns the first move in moves whose UCI form is uci.
func FindMove(moves []chess.Move, uci string) (chess.Move, bool) {
	for _, m := range moves {
		if m.String() == uci {
			return m, true
		}
	}
	return chess.Move{}, false
}

// MustParseMove parses a UCI move and fails the test if it is malformed.
func MustParseMove(t testing.TB, uci string) chess.Move {
	t.Helper()
	m, ok := chess.ParseMove(uci)
	if !ok {
		t.Fatalf("invalid move text %q", uci)
	}
	return m
}

// MustParseSquare parses an algebraic square and fails the test if it is malformed.
func MustParseSquare(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(s)
	if !ok {
		t.Fatalf("invalid square %q", s)
	}
	return sq
}
