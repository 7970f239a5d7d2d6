package rules

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	chesserr "github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/selector"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

// firstMove always picks index 0.
type firstMove struct{}

func (firstMove) Intn(int) int { return 0 }

func sq(t *testing.T, s string) chess.Square {
	t.Helper()
	return testutil.MustParseSquare(t, s)
}

func mustMove(t *testing.T, e *Engine, from, to string) {
	t.Helper()
	if err := e.ApplyMove(sq(t, from), sq(t, to), chess.Empty); err != nil {
		t.Fatalf("ApplyMove(%s%s): %v", from, to, err)
	}
}

func TestNew(t *testing.T) {
	e := New()
	testutil.AssertEqual(t, e.Snapshot(), chess.NewInitialPosition())
	testutil.AssertEqual(t, e.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, len(e.History()), 0)
	testutil.AssertTrue(t, e.ID() != "", "game id is empty")
}

func TestNewFromFEN_Invalid(t *testing.T) {
	_, err := NewFromFEN("rnbqkbnr/pppppppp w")
	testutil.AssertErrorIs(t, err, chesserr.ErrInvalidFEN)
}

func TestLegalMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"knight", engine.InitialFEN, "b1", []string{"a3", "c3"}},
		{"pawn", engine.InitialFEN, "e2", []string{"e3", "e4"}},
		{"blocked piece", engine.InitialFEN, "a1", nil},
		{"opponent piece", engine.InitialFEN, "e7", nil},
		{"promotions collapse to one square", "8/P7/8/8/8/8/8/k6K w - - 0 1", "a7", []string{"a8"}},
		{"game over", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", "g8", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			var got []string
			for _, d := range e.LegalMovesFrom(sq(t, tt.from)) {
				got = append(got, d.String())
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestApplyMove(t *testing.T) {
	e := New()
	mustMove(t, e, "e2", "e4")

	pos := e.Snapshot()
	testutil.AssertEqual(t, pos.ToMove, chess.Black)
	testutil.AssertEqual(t, pos.Board.Get(sq(t, "e4")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, testutil.MoveStrings(e.History()), []string{"e2e4"})
}

func TestApplyMove_Illegal(t *testing.T) {
	e := New()
	before := e.Snapshot()

	err := e.ApplyMove(sq(t, "e2"), sq(t, "e5"), chess.Empty)
	testutil.AssertErrorIs(t, err, chesserr.ErrIllegalMove)
	testutil.AssertEqual(t, e.Snapshot(), before)

	err = e.ApplyMove(chess.NoSquare, sq(t, "e4"), chess.Empty)
	testutil.AssertErrorIs(t, err, chesserr.ErrInvalidSquare)
	testutil.AssertEqual(t, e.Snapshot(), before)
}

func TestApplyMove_Promotion(t *testing.T) {
	const fen = "8/P7/8/8/8/8/8/k6K w - - 0 1"
	tests := []struct {
		name  string
		promo chess.Piece
		want  chess.Piece
	}{
		{"default is queen", chess.Empty, chess.W(chess.Queen)},
		{"underpromotion", chess.Knight, chess.W(chess.Knight)},
		{"rook", chess.Rook, chess.W(chess.Rook)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewFromFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertNoError(t, e.ApplyMove(sq(t, "a7"), chess.A8, tt.promo))
			pos := e.Snapshot()
			testutil.AssertEqual(t, pos.Board.Get(chess.A8), tt.want)
		})
	}

	t.Run("king is not a promotion choice", func(t *testing.T) {
		e, err := NewFromFEN(fen)
		testutil.AssertNoError(t, err)
		err = e.ApplyMove(sq(t, "a7"), chess.A8, chess.King)
		testutil.AssertErrorIs(t, err, chesserr.ErrIllegalMove)
	})

	t.Run("ignored on ordinary move", func(t *testing.T) {
		e := New()
		testutil.AssertNoError(t, e.ApplyMove(sq(t, "e2"), sq(t, "e4"), chess.Queen))
		pos := e.Snapshot()
		testutil.AssertEqual(t, pos.Board.Get(sq(t, "e4")), chess.W(chess.Pawn))
	})
}

func TestApplyEngineMove(t *testing.T) {
	e := New(WithSelector(selector.NewRandom(firstMove{})))
	mustMove(t, e, "e2", "e4")

	move, err := e.ApplyEngineMove()
	testutil.AssertNoError(t, err)

	// Black's pawns on rank 7 are generated before its back rank.
	testutil.AssertEqual(t, move.String(), "a7a6")
	testutil.AssertEqual(t, move.Piece, chess.B(chess.Pawn))
	testutil.AssertEqual(t, testutil.MoveStrings(e.History()), []string{"e2e4", "a7a6"})
	testutil.AssertEqual(t, e.Snapshot().ToMove, chess.White)
}

func TestApplyEngineMove_GameOver(t *testing.T) {
	e, err := NewFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	testutil.AssertNoError(t, err)

	_, err = e.ApplyEngineMove()
	testutil.AssertErrorIs(t, err, chesserr.ErrGameOver)
	testutil.AssertErrorIs(t, err, chesserr.ErrNoMovesAvailable)
}

type emptySelector struct{}

func (emptySelector) Choose([]chess.Move) (chess.Move, error) {
	return chess.Move{}, chesserr.ErrNoMovesAvailable
}

func TestApplyEngineMove_SelectorError(t *testing.T) {
	e := New(WithSelector(emptySelector{}))
	before := e.Snapshot()
	_, err := e.ApplyEngineMove()
	testutil.AssertErrorIs(t, err, chesserr.ErrNoMovesAvailable)
	testutil.AssertEqual(t, e.Snapshot(), before)
}

func TestFoolsMate(t *testing.T) {
	e := New()
	mustMove(t, e, "f2", "f3")
	mustMove(t, e, "e7", "e5")
	mustMove(t, e, "g2", "g4")
	mustMove(t, e, "d8", "h4")

	testutil.AssertEqual(t, e.Snapshot().Status, chess.Status{Kind: chess.Checkmate, Winner: chess.Black})
	err := e.ApplyMove(sq(t, "a1"), sq(t, "a2"), chess.Empty)
	testutil.AssertErrorIs(t, err, chesserr.ErrGameOver)
	testutil.AssertErrorIs(t, err, chesserr.ErrIllegalMove)

	_, err = e.ApplyEngineMove()
	testutil.AssertErrorIs(t, err, chesserr.ErrNoMovesAvailable)
	testutil.AssertEqual(t, len(e.History()), 4)
}

func TestUndo(t *testing.T) {
	e := New(WithSelector(selector.NewSeededRandom(3)))

	// Undo of a human and engine pair needs two plies.
	testutil.AssertErrorIs(t, e.Undo(2), chesserr.ErrInsufficientHistory)

	start := e.Snapshot()
	mustMove(t, e, "d2", "d4")
	testutil.AssertErrorIs(t, e.Undo(2), chesserr.ErrInsufficientHistory)
	testutil.AssertEqual(t, len(e.History()), 1, "failed undo must not remove a ply")

	_, err := e.ApplyEngineMove()
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, e.Undo(2))
	testutil.AssertEqual(t, e.Snapshot(), start)
}

func TestRestart(t *testing.T) {
	e, err := NewFromFEN("8/8/8/4k3/8/8/R7/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	oldID := e.ID()
	mustMove(t, e, "a2", "a3")

	e.Restart()
	testutil.AssertEqual(t, e.Snapshot(), chess.NewInitialPosition())
	testutil.AssertEqual(t, len(e.History()), 0)
	testutil.AssertTrue(t, e.ID() != oldID, "restart kept the game id")
	testutil.AssertErrorIs(t, e.Undo(1), chesserr.ErrInsufficientHistory)
}

func TestEngines_AreIndependent(t *testing.T) {
	a, b := New(), New()
	mustMove(t, a, "e2", "e4")
	testutil.AssertEqual(t, b.Snapshot(), chess.NewInitialPosition())
	testutil.AssertTrue(t, a.ID() != b.ID(), "engines share an id")
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := New(WithLogger(zap.New(core)))

	mustMove(t, e, "e2", "e4")
	_ = e.ApplyMove(sq(t, "e2"), sq(t, "e4"), chess.Empty)

	applied := logs.FilterMessage("move applied").All()
	if len(applied) != 1 {
		t.Fatalf("got %d 'move applied' entries; want 1", len(applied))
	}
	fields := applied[0].ContextMap()
	testutil.AssertEqual(t, fields["game_id"], e.ID())
	testutil.AssertEqual(t, fields["move"], "e2e4")
	testutil.AssertEqual(t, fields["status"], "InProgress")

	rejected := logs.FilterMessage("move rejected").All()
	if len(rejected) != 1 {
		t.Fatalf("got %d 'move rejected' entries; want 1", len(rejected))
	}
	if msg, ok := rejected[0].ContextMap()["error"].(string); !ok || msg == "" {
		t.Errorf("rejected entry has no error field")
	}
}
