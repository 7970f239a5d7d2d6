package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// promotionOrder is the order in which promotion choices are generated.
var promotionOrder = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// appendPawnMoves appends pushes, double pushes, captures and en passant
// captures for the pawn on from.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, enPassant chess.Square) []chess.Move {
	pawn := board.Get(from)
	dir := chess.ColourOffset(colour)

	startRank := 1
	if colour == chess.Black {
		startRank = 6
	}

	// Forward move
	if one := from.Offset(0, dir); one != chess.NoSquare && board.Get(one) == chess.Empty {
		moves = appendPawnAdvance(moves, pawn, from, one, chess.Empty)

		// Double push from starting rank
		if from.Rank() == startRank {
			if two := one.Offset(0, dir); board.Get(two) == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: two, Class: chess.PawnMove, Piece: pawn})
			}
		}
	}

	// Captures
	enemy := colour.Opposite()
	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if to == chess.NoSquare {
			continue
		}
		target := board.Get(to)
		switch {
		case chess.IsColour(target, enemy):
			moves = appendPawnAdvance(moves, pawn, from, to, target)
		case target == chess.Empty && to == enPassant:
			passed := chess.MakeColouredPiece(enemy, chess.Pawn)
			if board.Get(to.Offset(0, -dir)) == passed {
				moves = append(moves, chess.Move{
					From:     from,
					To:       to,
					Class:    chess.EnPassantPawnMove,
					Piece:    pawn,
					Captured: passed,
				})
			}
		}
	}
	return moves
}

// appendPawnAdvance appends a single pawn step or capture, expanding it
// into the four promotion choices on the last rank.
func appendPawnAdvance(moves []chess.Move, pawn chess.Piece, from, to chess.Square, captured chess.Piece) []chess.Move {
	if to.Rank() != chess.HomeRank(chess.ExtractColour(pawn).Opposite()) {
		return append(moves, chess.Move{From: from, To: to, Class: chess.PawnMove, Piece: pawn, Captured: captured})
	}
	for _, promo := range promotionOrder {
		moves = append(moves, chess.Move{
			From:      from,
			To:        to,
			Class:     chess.PawnMoveWithPromotion,
			Piece:     pawn,
			Captured:  captured,
			Promotion: promo,
		})
	}
	return moves
}

// applyPawnMove moves a pawn, removing an en passant victim and replacing
// the pawn on promotion.
func applyPawnMove(board *chess.Board, colour chess.Colour, move chess.Move) {
	pawn := board.Get(move.From)

	// Handle en passant capture
	if move.Class == chess.EnPassantPawnMove {
		board.Set(move.To.Offset(0, -chess.ColourOffset(colour)), chess.Empty)
	}

	board.Set(move.From, chess.Empty)

	// Handle promotion
	if move.Class == chess.PawnMoveWithPromotion {
		promotedPiece := move.Promotion
		if promotedPiece == chess.Empty {
			promotedPiece = chess.Queen // Default to queen
		}
		board.Set(move.To, chess.MakeColouredPiece(colour, promotedPiece))
		return
	}
	board.Set(move.To, pawn)
}

// enPassantTarget returns the skipped square after a double push, or NoSquare.
func enPassantTarget(move chess.Move) chess.Square {
	if chess.ExtractPiece(move.Piece) != chess.Pawn {
		return chess.NoSquare
	}
	diff := move.To.Rank() - move.From.Rank()
	if diff != 2 && diff != -2 {
		return chess.NoSquare
	}
	return move.From.Offset(0, diff/2)
}
