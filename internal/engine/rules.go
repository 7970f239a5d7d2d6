package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
const FiftyMoveLimit = 100

// ComputeStatus classifies pos for the side to move. Checkmate and
// stalemate take precedence over the draw rules.
func ComputeStatus(pos *chess.Position) chess.Status {
	switch {
	case IsCheckmate(pos):
		return chess.Status{Kind: chess.Checkmate, Winner: pos.ToMove.Opposite()}
	case IsStalemate(pos):
		return chess.Status{Kind: chess.Stalemate}
	case pos.HalfmoveClock >= FiftyMoveLimit:
		return chess.Status{Kind: chess.DrawOther, Draw: chess.FiftyMoveRule}
	case HasInsufficientMaterial(&pos.Board):
		return chess.Status{Kind: chess.DrawOther, Draw: chess.InsufficientMaterial}
	}
	return chess.Status{Kind: chess.InProgress}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(&pos.Board, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(&pos.Board, pos.ToMove) && !HasLegalMoves(pos)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Get(sq)
		if piece == chess.Empty {
			continue
		}

		pieceType := chess.ExtractPiece(piece)

		// Kings don't count for material
		if pieceType == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
			return false
		}

		if chess.ExtractColour(piece) == chess.White {
			whitePieces = append(whitePieces, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
