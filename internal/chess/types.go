// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type. Coloured pieces share the same
// type and are built with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return fmt.Sprintf("%s %s", ExtractColour(p), ExtractPiece(p))
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter of either case to a piece type.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	if piece == Empty {
		return Empty
	}
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColour reports whether p is a piece of the given colour.
func IsColour(p Piece, colour Colour) bool {
	return p != Empty && ExtractColour(p) == colour
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square is a board index: rank*8 + file, a1 = 0, h8 = 63.
type Square int8

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// File returns the 0-based file (0 = a).
func (s Square) File() int { return int(s) % BoardSize }

// Rank returns the 0-based rank (0 = rank 1).
func (s Square) Rank() int { return int(s) / BoardSize }

// Valid reports whether s is on the board.
func (s Square) Valid() bool { return s >= 0 && s < NumSquares }

// String returns the algebraic label, e.g. "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// Offset returns the square df files and dr ranks away, or NoSquare
// when that falls off the board.
func (s Square) Offset(df, dr int) Square {
	f := s.File() + df
	r := s.Rank() + dr
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return NoSquare
	}
	return NewSquare(f, r)
}

// ParseSquare converts an algebraic label like "e4" to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f, r := s[0], s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return NewSquare(int(f-'a'), int(r-'1')), true
}

// Named squares used by castling and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = iota + 56
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// HomeRank returns the back rank index for a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// CastleSide identifies the wing of a castling move.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns "O-O", "O-O-O" or "".
func (c CastleSide) String() string {
	switch c {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// CastlingRights holds the four independent castling permissions.
// Move application only ever clears them.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights as in the standard starting position.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports whether colour may still castle on side.
func (c CastlingRights) Has(colour Colour, side CastleSide) bool {
	switch {
	case colour == White && side == Kingside:
		return c.WhiteKingside
	case colour == White && side == Queenside:
		return c.WhiteQueenside
	case colour == Black && side == Kingside:
		return c.BlackKingside
	case colour == Black && side == Queenside:
		return c.BlackQueenside
	}
	return false
}

// Clear removes one right.
func (c *CastlingRights) Clear(colour Colour, side CastleSide) {
	switch {
	case colour == White && side == Kingside:
		c.WhiteKingside = false
	case colour == White && side == Queenside:
		c.WhiteQueenside = false
	case colour == Black && side == Kingside:
		c.BlackKingside = false
	case colour == Black && side == Queenside:
		c.BlackQueenside = false
	}
}

// ClearColour removes both rights of a colour.
func (c *CastlingRights) ClearColour(colour Colour) {
	c.Clear(colour, Kingside)
	c.Clear(colour, Queenside)
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var b []byte
	if c.WhiteKingside {
		b = append(b, 'K')
	}
	if c.WhiteQueenside {
		b = append(b, 'Q')
	}
	if c.BlackKingside {
		b = append(b, 'k')
	}
	if c.BlackQueenside {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// StatusKind classifies a position.
type StatusKind int

const (
	InProgress StatusKind = iota
	Checkmate
	Stalemate
	DrawOther
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "InProgress"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case DrawOther:
		return "Draw"
	default:
		return "Unknown"
	}
}

// DrawReason explains a DrawOther status.
type DrawReason int

const (
	NoDraw DrawReason = iota
	FiftyMoveRule
	InsufficientMaterial
)

// String returns the string representation of a draw reason.
func (d DrawReason) String() string {
	switch d {
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return ""
	}
}

// Status is the terminal status of a position. Winner is only
// meaningful for Checkmate and Draw only for DrawOther.
type Status struct {
	Kind   StatusKind
	Winner Colour
	Draw   DrawReason
}

// IsTerminal reports whether the game has ended.
func (s Status) IsTerminal() bool {
	return s.Kind != InProgress
}

// String returns a short human readable description.
func (s Status) String() string {
	switch s.Kind {
	case Checkmate:
		return fmt.Sprintf("Checkmate (%s wins)", s.Winner)
	case DrawOther:
		return fmt.Sprintf("Draw (%s)", s.Draw)
	default:
		return s.Kind.String()
	}
}
