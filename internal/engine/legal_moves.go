package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// LegalMoves returns the pseudo-legal moves of the side to move that do
// not leave its own king attacked, in generation order.
func LegalMoves(pos *chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(&pos.Board, pos.ToMove, pos.Castling, pos.EnPassant)
	return filterLegal(pos, pseudo)
}

// LegalMovesFrom returns the legal moves of the piece standing on from.
// It is empty when from is vacant or holds a piece of the side not to move.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	if !from.Valid() {
		return nil
	}
	pseudo := appendPieceMoves(nil, &pos.Board, from, pos.ToMove, pos.Castling, pos.EnPassant)
	return filterLegal(pos, pseudo)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if !chess.IsColour(pos.Board.Get(sq), pos.ToMove) {
			continue
		}
		pseudo := appendPieceMoves(nil, &pos.Board, sq, pos.ToMove, pos.Castling, pos.EnPassant)
		for _, move := range pseudo {
			if tryMove(pos, move) {
				return true
			}
		}
	}
	return false
}

// filterLegal keeps the candidates that pass tryMove. It reuses the
// candidates' backing array.
func filterLegal(pos *chess.Position, candidates []chess.Move) []chess.Move {
	legal := candidates[:0]
	for _, move := range candidates {
		if tryMove(pos, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// tryMove makes a move on a copy of the position and checks if it leaves
// the mover's king in check.
func tryMove(pos *chess.Position, move chess.Move) bool {
	scratch := *pos
	MakeMove(&scratch, move)
	return !IsInCheck(&scratch.Board, pos.ToMove)
}
