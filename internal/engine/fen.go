package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewPositionFromFEN creates a position from a FEN string. Missing
// trailing fields default to "w - - 0 1". The returned position has its
// terminal status computed.
func NewPositionFromFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return chess.Position{}, fmt.Errorf("too many FEN fields (%d): %w", len(parts), errors.ErrInvalidFEN)
	}

	pos := chess.Position{
		ToMove:     chess.White,
		EnPassant:  chess.NoSquare,
		MoveNumber: 1,
	}

	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, parts); err != nil {
		return chess.Position{}, err
	}
	if err := validatePosition(&pos); err != nil {
		return chess.Position{}, err
	}

	pos.Status = ComputeStatus(&pos)
	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			case c > unicode.MaxASCII:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds on rank %d: %w", rank+1, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(file, rank), chess.MakeColouredPiece(colour, piece))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights whose
// king or rook is not on its home square are dropped.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
			kingFrom, _, rookFrom, _ := castlingSquares(colour, side)
			if pos.Board.Get(kingFrom) != chess.MakeColouredPiece(colour, chess.King) ||
				pos.Board.Get(rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
				pos.Castling.Clear(colour, side)
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	wantRank := 5 // White to move captures onto rank 6
	if pos.ToMove == chess.Black {
		wantRank = 2
	}
	if sq.Rank() != wantRank {
		return fmt.Errorf("en passant square %s on wrong rank: %w", parts[3], errors.ErrInvalidFEN)
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// validatePosition rejects placements no game can reach: a missing or
// extra king, pawns on the first or last rank, or the side that just
// moved being left in check.
func validatePosition(pos *chess.Position) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := chess.MakeColouredPiece(colour, chess.King)
		kings := pos.Board.SquaresWithPiece(func(p chess.Piece) bool { return p == king })
		if len(kings) != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, len(kings), errors.ErrInvalidFEN)
		}
	}

	pawns := pos.Board.SquaresWithPiece(func(p chess.Piece) bool { return chess.ExtractPiece(p) == chess.Pawn })
	for _, sq := range pawns {
		if sq.Rank() == 0 || sq.Rank() == chess.BoardSize-1 {
			return fmt.Errorf("pawn on %s: %w", sq, errors.ErrInvalidFEN)
		}
	}

	if IsInCheck(&pos.Board, pos.ToMove.Opposite()) {
		return fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// MustPositionFromFEN is NewPositionFromFEN for fixed, known-good strings.
// It panics on error.
func MustPositionFromFEN(fen string) chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}
