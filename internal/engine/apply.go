package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
)

// MakeMove applies move to pos without checking legality and updates
// castling rights, the en passant target, both clocks and the side to
// move. Status is reset to InProgress; callers that need the terminal
// status recompute it with ComputeStatus.
func MakeMove(pos *chess.Position, move chess.Move) {
	colour := pos.ToMove
	board := &pos.Board
	piece := board.Get(move.From)
	pieceType := chess.ExtractPiece(piece)
	captured := move.Captured
	if captured == chess.Empty && move.Class != chess.EnPassantPawnMove {
		captured = board.Get(move.To)
	}

	switch move.Class {
	case chess.KingsideCastle:
		applyCastle(board, colour, chess.Kingside)
	case chess.QueensideCastle:
		applyCastle(board, colour, chess.Queenside)
	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		applyPawnMove(board, colour, move)
	default:
		board.Set(move.From, chess.Empty)
		board.Set(move.To, piece)
	}

	// Update castling rights if king or rook moved, or a rook was captured
	if pieceType == chess.King {
		pos.Castling.ClearColour(colour)
	}
	if pieceType == chess.Rook {
		updateCastlingRightsForRook(&pos.Castling, colour, move.From)
	}
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(&pos.Castling, chess.ExtractColour(captured), move.To)
	}

	pos.EnPassant = enPassantTarget(move)

	// Update halfmove clock
	if pieceType == chess.Pawn || captured != chess.Empty {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	if colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = colour.Opposite()
	pos.Status = chess.Status{}
}
