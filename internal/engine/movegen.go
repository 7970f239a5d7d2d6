// Package engine provides chess move generation, validation and board manipulation.
package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// PseudoLegalMoves returns every geometrically valid move for side,
// ignoring whether the move leaves side's own king attacked.
// Squares are visited a1..h8 and each piece uses a fixed direction
// order, so the result is deterministic for a given position.
func PseudoLegalMoves(board *chess.Board, side chess.Colour, castling chess.CastlingRights, enPassant chess.Square) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		moves = appendPieceMoves(moves, board, sq, side, castling, enPassant)
	}
	return moves
}

// appendPieceMoves appends the pseudo-legal moves of the piece on from,
// if it belongs to side.
func appendPieceMoves(moves []chess.Move, board *chess.Board, from chess.Square, side chess.Colour, castling chess.CastlingRights, enPassant chess.Square) []chess.Move {
	piece := board.Get(from)
	if !chess.IsColour(piece, side) {
		return moves
	}

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return appendPawnMoves(moves, board, from, side, enPassant)
	case chess.Knight:
		return appendStepMoves(moves, board, from, piece, knightOffsets)
	case chess.Bishop:
		return appendSlidingMoves(moves, board, from, piece, diagonalDirs)
	case chess.Rook:
		return appendSlidingMoves(moves, board, from, piece, straightDirs)
	case chess.Queen:
		return appendSlidingMoves(moves, board, from, piece, queenDirs)
	case chess.King:
		moves = appendStepMoves(moves, board, from, piece, kingOffsets)
		return appendCastlingMoves(moves, board, from, side, castling)
	}
	return moves
}

// appendStepMoves handles knights and kings: one hop per offset.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int) []chess.Move {
	colour := chess.ExtractColour(piece)
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to == chess.NoSquare {
			continue
		}
		target := board.Get(to)
		if chess.IsColour(target, colour) {
			continue
		}
		moves = append(moves, pieceMove(piece, from, to, target))
	}
	return moves
}

// appendSlidingMoves handles bishops, rooks and queens. Each ray stops at
// the first occupied square, which is included only if it holds an enemy.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int) []chess.Move {
	colour := chess.ExtractColour(piece)
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			target := board.Get(to)
			if target == chess.Empty {
				moves = append(moves, pieceMove(piece, from, to, chess.Empty))
				continue
			}
			if !chess.IsColour(target, colour) {
				moves = append(moves, pieceMove(piece, from, to, target))
			}
			break // Blocked
		}
	}
	return moves
}

func pieceMove(piece chess.Piece, from, to chess.Square, captured chess.Piece) chess.Move {
	return chess.Move{
		From:     from,
		To:       to,
		Class:    chess.PieceMove,
		Piece:    piece,
		Captured: captured,
	}
}
