package testutil

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

func TestMoveHelpers(t *testing.T) {
	moves := []chess.Move{
		{From: chess.G1, To: chess.NewSquare(5, 2)},
		{From: chess.NewSquare(4, 1), To: chess.NewSquare(4, 3)},
	}

	AssertEqual(t, MoveStrings(moves), []string{"g1f3", "e2e4"})
	AssertEqual(t, SortedMoveStrings(moves), []string{"e2e4", "g1f3"})

	m, ok := FindMove(moves, "e2e4")
	AssertTrue(t, ok, "e2e4 should be found")
	AssertEqual(t, m, moves[1])

	if _, ok := FindMove(moves, "a2a4"); ok {
		t.Error("FindMove(a2a4) found a move that is not in the list")
	}

	AssertEqual(t, MustParseMove(t, "e7e8q"), chess.Move{From: chess.NewSquare(4, 6), To: chess.E8, Promotion: chess.Queen})
	AssertEqual(t, MustParseSquare(t, "h8"), chess.H8)
}
