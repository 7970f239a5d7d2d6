package game

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	chesserr "github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func mustApply(t *testing.T, g *Game, ucis ...string) {
	t.Helper()
	for _, uci := range ucis {
		if _, err := g.ApplyMove(testutil.MustParseMove(t, uci)); err != nil {
			t.Fatalf("ApplyMove(%s): %v", uci, err)
		}
	}
}

func TestNew(t *testing.T) {
	g := New()
	testutil.AssertEqual(t, g.Current(), chess.NewInitialPosition())
	testutil.AssertEqual(t, g.Plies(), 0)
	testutil.AssertEqual(t, len(g.LegalMoves()), 20)
}

func TestNewFromFEN(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		g, err := NewFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, g.Current().Status, chess.Status{Kind: chess.Stalemate})
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewFromFEN("8/8/8")
		testutil.AssertErrorIs(t, err, chesserr.ErrInvalidFEN)
	})
}

func TestApplyMove(t *testing.T) {
	g := New()
	pos, err := g.ApplyMove(testutil.MustParseMove(t, "e2e4"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, pos, g.Current())
	testutil.AssertEqual(t, engine.PositionToFEN(&pos), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, g.Plies(), 1)

	// The recorded move is the fully described one.
	played := g.Moves()[0]
	testutil.AssertEqual(t, played.Class, chess.PawnMove)
	testutil.AssertEqual(t, played.Piece, chess.W(chess.Pawn))
}

func TestApplyMove_Illegal(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		move  string
	}{
		{"pawn three squares", nil, "e2e5"},
		{"wrong side", nil, "e7e5"},
		{"empty square", nil, "e4e5"},
		{"blocked rook", nil, "a1a3"},
		{"promotion on non-promoting move", nil, "e2e4q"},
		{"ignores check", []string{"e2e4", "e7e6", "d2d4", "f8b4"}, "a2a3"},
		{"pinned knight", []string{"e2e4", "e7e6", "d2d4", "f8b4", "b1c3", "g8f6"}, "c3d5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			mustApply(t, g, tt.setup...)
			before := g.Current()
			plies := g.Plies()

			_, err := g.ApplyMove(testutil.MustParseMove(t, tt.move))
			testutil.AssertErrorIs(t, err, chesserr.ErrIllegalMove)

			var moveErr *chesserr.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.MoveText, tt.move)
			testutil.AssertEqual(t, moveErr.PlyNum, plies+1)

			testutil.AssertEqual(t, g.Current(), before, "failed move must not change state")
			testutil.AssertEqual(t, g.Plies(), plies)
		})
	}
}

func TestApplyMove_FoolsMate(t *testing.T) {
	g := New()
	mustApply(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertEqual(t, g.Plies(), 4)
	testutil.AssertEqual(t, g.Current().Status, chess.Status{Kind: chess.Checkmate, Winner: chess.Black})
	testutil.AssertEqual(t, len(g.LegalMoves()), 0)

	_, err := g.ApplyMove(testutil.MustParseMove(t, "a2a3"))
	testutil.AssertErrorIs(t, err, chesserr.ErrGameOver)
	testutil.AssertErrorIs(t, err, chesserr.ErrIllegalMove)
}

func TestApplyMove_CastlingClearsRights(t *testing.T) {
	g, err := NewFromFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	if _, ok := testutil.FindMove(g.LegalMoves(), "e1g1"); !ok {
		t.Fatal("kingside castle missing from legal moves")
	}
	pos, err := g.ApplyMove(testutil.MustParseMove(t, "e1g1"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, pos.Board.Get(chess.G1), chess.W(chess.King))
	testutil.AssertEqual(t, pos.Board.Get(chess.F1), chess.W(chess.Rook))
	testutil.AssertEqual(t, pos.Board.Get(chess.H1), chess.Empty)
	testutil.AssertEqual(t, pos.Board.Get(chess.E1), chess.Empty)
	testutil.AssertTrue(t, !pos.Castling.Has(chess.White, chess.Kingside), "white kingside right kept")
	testutil.AssertTrue(t, !pos.Castling.Has(chess.White, chess.Queenside), "white queenside right kept")
	testutil.AssertTrue(t, pos.Castling.Has(chess.Black, chess.Kingside), "black kingside right lost")
}

func TestUndo(t *testing.T) {
	g := New()
	start := g.Current()
	mustApply(t, g, "e2e4", "e7e5")
	afterTwo := g.Current()
	mustApply(t, g, "g1f3")

	testutil.AssertNoError(t, g.Undo(1))
	testutil.AssertEqual(t, g.Current(), afterTwo)
	testutil.AssertEqual(t, g.Plies(), 2)

	testutil.AssertNoError(t, g.Undo(2))
	testutil.AssertEqual(t, g.Current(), start)
	testutil.AssertEqual(t, g.Plies(), 0)
	testutil.AssertEqual(t, len(g.Moves()), 0)
}

func TestUndo_InsufficientHistory(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		plies int
	}{
		{"no moves", nil, 1},
		{"one move, undo two", []string{"e2e4"}, 2},
		{"zero plies", []string{"e2e4"}, 0},
		{"negative plies", []string{"e2e4"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			mustApply(t, g, tt.moves...)
			before := g.Current()

			err := g.Undo(tt.plies)
			testutil.AssertErrorIs(t, err, chesserr.ErrInsufficientHistory)
			testutil.AssertContains(t, err.Error(), fmt.Sprintf("undo %d plies with %d available", tt.plies, len(tt.moves)))
			testutil.AssertEqual(t, g.Current(), before)
			testutil.AssertEqual(t, g.Plies(), len(tt.moves))
		})
	}
}

func TestUndo_AfterCheckmateReopensGame(t *testing.T) {
	g := New()
	mustApply(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	testutil.AssertNoError(t, g.Undo(1))
	testutil.AssertEqual(t, g.Current().Status.Kind, chess.InProgress)
	mustApply(t, g, "d8g5")
}

// TestApplyUndoRoundTrip checks that apply followed by a one-ply undo
// restores an identical position for every legal move along random games.
func TestApplyUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, fen := range []string{engine.InitialFEN, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"} {
		g, err := NewFromFEN(fen)
		testutil.AssertNoError(t, err)

		for ply := 0; ply < 40; ply++ {
			legal := g.LegalMoves()
			if len(legal) == 0 {
				break
			}
			before := g.Current()
			for _, m := range legal {
				if _, err := g.ApplyMove(m); err != nil {
					t.Fatalf("ApplyMove(%s): %v", m, err)
				}
				testutil.AssertNoError(t, g.Undo(1))
				testutil.AssertEqual(t, g.Current(), before, "round trip of %s", m)
			}
			if _, err := g.ApplyMove(legal[rng.Intn(len(legal))]); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func TestMoves_ReturnsCopy(t *testing.T) {
	g := New()
	mustApply(t, g, "e2e4")
	moves := g.Moves()
	moves[0] = chess.Move{}
	testutil.AssertEqual(t, g.Moves()[0].String(), "e2e4")
}
