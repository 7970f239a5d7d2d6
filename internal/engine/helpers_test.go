package engine

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

// Perft reference positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	perftPos3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	perftPos4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	perftPos5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// mustFEN parses a FEN or fails the test.
func mustFEN(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return pos
}

// play applies each UCI move to pos, failing if one is not legal.
func play(t testing.TB, pos *chess.Position, ucis ...string) {
	t.Helper()
	for _, uci := range ucis {
		move, ok := testutil.FindMove(LegalMoves(pos), uci)
		if !ok {
			t.Fatalf("move %s is not legal in %s", uci, PositionToFEN(pos))
		}
		MakeMove(pos, move)
	}
}

func containsMove(moves []chess.Move, uci string) bool {
	_, ok := testutil.FindMove(moves, uci)
	return ok
}
