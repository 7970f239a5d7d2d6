package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{"PawnMove", "PawnMoveWithPromotion", "EnPassantPawnMove", "PieceMove", "KingsideCastle", "QueensideCastle"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is a fully described move. It can be interpreted without the
// board it was generated from.
type Move struct {
	From Square
	To   Square

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The coloured piece being moved.
	Piece Piece

	// The coloured piece captured (Empty if no capture). For en passant
	// this is the passed pawn, which does not stand on To.
	Captured Piece

	// The piece type promoted to (Empty if not a promotion).
	Promotion Piece
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.CastleSide() != NoCastle
}

// CastleSide returns the castling wing, or NoCastle.
func (m Move) CastleSide() CastleSide {
	switch m.Class {
	case KingsideCastle:
		return Kingside
	case QueensideCastle:
		return Queenside
	default:
		return NoCastle
	}
}

// Matches reports whether two moves have the same from, to and promotion.
func (m Move) Matches(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// String returns the move in long algebraic (UCI) form, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}

// ParseMove parses long algebraic notation ("e2e4", "e7e8q") into a
// partial move carrying only From, To and Promotion.
func ParseMove(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Move{}, false
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch promo := PieceFromLetter(s[4]); promo {
		case Knight, Bishop, Rook, Queen:
			m.Promotion = promo
		default:
			return Move{}, false
		}
	}
	return m, true
}
