package engine

import (
	"math/rand"
	"sort"
	"testing"

	chesslib "github.com/corentings/chess/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

// referenceMoves returns the sorted UCI moves an independent move
// generator finds for the game's current position.
func referenceMoves(g *chesslib.Game) []string {
	valid := g.ValidMoves()
	out := make([]string, 0, len(valid))
	for _, m := range valid {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// TestLegalMoves_MatchReferenceGenerator plays seeded random games and
// compares the legal move set with corentings/chess at every ply.
func TestLegalMoves_MatchReferenceGenerator(t *testing.T) {
	const (
		gamesPerStart = 8
		maxPlies      = 160
	)
	if testing.Short() {
		t.Skip("skipping random playouts in short mode")
	}

	starts := []string{InitialFEN, kiwipeteFEN, perftPos3FEN, perftPos4FEN, perftPos5FEN}
	rng := rand.New(rand.NewSource(20240611))

	for _, fen := range starts {
		for n := 0; n < gamesPerStart; n++ {
			opt, err := chesslib.FEN(fen)
			if err != nil {
				t.Fatalf("reference FEN(%q): %v", fen, err)
			}
			ref := chesslib.NewGame(opt)
			pos := mustFEN(t, fen)

			for ply := 0; ply < maxPlies; ply++ {
				ours := LegalMoves(&pos)
				if diff := cmp.Diff(referenceMoves(ref), testutil.SortedMoveStrings(ours)); diff != "" {
					t.Fatalf("%s game %d ply %d: move sets differ at %s (-ref +ours):\n%s",
						fen, n, ply, PositionToFEN(&pos), diff)
				}
				if len(ours) == 0 {
					break
				}

				move := ours[rng.Intn(len(ours))]
				if err := ref.PushNotationMove(move.String(), chesslib.UCINotation{}, nil); err != nil {
					t.Fatalf("reference rejected %s at %s: %v", move, PositionToFEN(&pos), err)
				}
				MakeMove(&pos, move)

				status := ComputeStatus(&pos)
				mateOrStalemate := status.Kind == chess.Checkmate || status.Kind == chess.Stalemate
				if mateOrStalemate && ref.Outcome() == chesslib.NoOutcome {
					t.Fatalf("%s: status %v but reference game continues", PositionToFEN(&pos), status)
				}
				if ref.Outcome() != chesslib.NoOutcome {
					break
				}
			}
		}
	}
}
