package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

var pieceGlyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

// glyph returns the character drawn for a square's contents.
func glyph(p chess.Piece, style string) string {
	if p == chess.Empty {
		return "."
	}
	if style == config.GlyphsUnicode {
		return pieceGlyphs[p]
	}
	return string(engine.ColouredPieceToFENLetter(p))
}

// renderBoard draws pos with rank 8 at the top, or rank 1 when flipped,
// followed by the side to move.
func renderBoard(w io.Writer, pos *chess.Position, display config.DisplayConfig) {
	files := "  a b c d e f g h"
	if display.Flip {
		files = "  h g f e d c b a"
	}

	var sb strings.Builder
	for i := 0; i < chess.BoardSize; i++ {
		rank := chess.BoardSize - 1 - i
		if display.Flip {
			rank = i
		}
		fmt.Fprintf(&sb, "%d", rank+1)
		for j := 0; j < chess.BoardSize; j++ {
			file := j
			if display.Flip {
				file = chess.BoardSize - 1 - j
			}
			sb.WriteByte(' ')
			sb.WriteString(glyph(pos.Board.Get(chess.NewSquare(file, rank)), display.Glyphs))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(files)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%s to move", pos.ToMove)
	if !pos.Status.IsTerminal() && engine.IsInCheck(&pos.Board, pos.ToMove) {
		sb.WriteString(" (check)")
	}
	sb.WriteByte('\n')
	io.WriteString(w, sb.String())
}

// gameOverMessage describes a finished game from the human's side.
func gameOverMessage(status chess.Status, human chess.Colour) string {
	switch status.Kind {
	case chess.Checkmate:
		if status.Winner == human {
			return "CONGRATULATIONS! CHECKMATE"
		}
		return "Checkmate! You lost."
	case chess.Stalemate:
		return "Stalemate!"
	case chess.DrawOther:
		return fmt.Sprintf("DRAW! (%s)", status.Draw)
	}
	return ""
}
