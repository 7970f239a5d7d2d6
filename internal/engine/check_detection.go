package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// Offset tables shared by move generation and attack detection.
// Their order fixes the order of generated moves.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.FindKing(colour)
	if king == chess.NoSquare {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Kings attack their neighbours by plain adjacency, so this never asks
// whether the attacking king would itself be in check.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind, seen from their own side.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	if board.Get(sq.Offset(-1, pawnDir)) == pawn || board.Get(sq.Offset(1, pawnDir)) == pawn {
		return true
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if rayHits(board, sq, diagonalDirs, bishop, queen) {
		return true
	}
	return rayHits(board, sq, straightDirs, rook, queen)
}

// rayHits walks each direction from sq and reports whether the first
// occupied square holds one of the two given pieces.
func rayHits(board *chess.Board, sq chess.Square, dirs [][2]int, a, b chess.Piece) bool {
	for _, dir := range dirs {
		for s := sq.Offset(dir[0], dir[1]); s != chess.NoSquare; s = s.Offset(dir[0], dir[1]) {
			piece := board.Get(s)
			if piece == chess.Empty {
				continue
			}
			if piece == a || piece == b {
				return true
			}
			break // Blocked
		}
	}
	return false
}
