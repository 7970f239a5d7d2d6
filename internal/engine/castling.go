package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// Castling files in standard chess.
const (
	kingHomeFile      = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// castlingSquares returns the king and rook squares involved in castling.
func castlingSquares(colour chess.Colour, side chess.CastleSide) (kingFrom, kingTo, rookFrom, rookTo chess.Square) {
	rank := chess.HomeRank(colour)
	kingFrom = chess.NewSquare(kingHomeFile, rank)
	if side == chess.Kingside {
		return kingFrom, chess.NewSquare(6, rank), chess.NewSquare(kingsideRookFile, rank), chess.NewSquare(5, rank)
	}
	return kingFrom, chess.NewSquare(2, rank), chess.NewSquare(queensideRookFile, rank), chess.NewSquare(3, rank)
}

// appendCastlingMoves appends castling moves for the king on from when
// the right is held, king and rook stand on their home squares, the
// squares between them are empty, and neither the king's square nor the
// square it crosses is attacked. The destination is checked by the
// legality filter like any other king move.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, castling chess.CastlingRights) []chess.Move {
	if !castling.Has(colour, chess.Kingside) && !castling.Has(colour, chess.Queenside) {
		return moves
	}
	if from != chess.NewSquare(kingHomeFile, chess.HomeRank(colour)) {
		return moves
	}
	enemy := colour.Opposite()
	if IsSquareAttacked(board, from, enemy) {
		return moves
	}

	king := board.Get(from)
	rook := chess.MakeColouredPiece(colour, chess.Rook)

	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if !castling.Has(colour, side) {
			continue
		}
		kingFrom, kingTo, rookFrom, rookTo := castlingSquares(colour, side)
		if board.Get(rookFrom) != rook {
			continue
		}
		if !isRankClear(board, kingFrom, rookFrom) {
			continue
		}
		// rookTo is the square the king passes through.
		if IsSquareAttacked(board, rookTo, enemy) {
			continue
		}
		class := chess.KingsideCastle
		if side == chess.Queenside {
			class = chess.QueensideCastle
		}
		moves = append(moves, chess.Move{From: kingFrom, To: kingTo, Class: class, Piece: king})
	}
	return moves
}

// isRankClear checks if every square strictly between a and b on one rank is empty.
func isRankClear(board *chess.Board, a, b chess.Square) bool {
	step := 1
	if b < a {
		step = -1
	}
	for s := a.Offset(step, 0); s != b; s = s.Offset(step, 0) {
		if board.Get(s) != chess.Empty {
			return false
		}
	}
	return true
}

// applyCastle moves both king and rook for a castling move.
func applyCastle(board *chess.Board, colour chess.Colour, side chess.CastleSide) {
	kingFrom, kingTo, rookFrom, rookTo := castlingSquares(colour, side)

	// Move king
	king := board.Get(kingFrom)
	board.Set(kingFrom, chess.Empty)
	board.Set(kingTo, king)

	// Move rook
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.Empty)
	board.Set(rookTo, rook)
}

// updateCastlingRightsForRook removes a castling right when the rook on
// sq moves or is captured.
func updateCastlingRightsForRook(castling *chess.CastlingRights, colour chess.Colour, sq chess.Square) {
	if sq.Rank() != chess.HomeRank(colour) {
		return
	}
	switch sq.File() {
	case kingsideRookFile:
		castling.Clear(colour, chess.Kingside)
	case queensideRookFile:
		castling.Clear(colour, chess.Queenside)
	}
}
