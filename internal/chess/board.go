package chess

// Board is the 8x8 grid of coloured pieces, indexed by Square.
// Empty marks a vacant square. Board has no knowledge of legality.
type Board struct {
	Squares [NumSquares]Piece
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [NumSquares]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(NewSquare(file, 0), W(backRank[file]))
		b.Set(NewSquare(file, 1), W(Pawn))
		b.Set(NewSquare(file, 6), B(Pawn))
		b.Set(NewSquare(file, 7), B(backRank[file]))
	}
}

// Get returns the piece on sq, or Empty for vacant or off-board squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq]
}

// Set places a piece on sq. Setting Empty clears the square.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq] = piece
	}
}

// SquaresWithPiece returns, in ascending square order, every occupied
// square whose piece satisfies match.
func (b *Board) SquaresWithPiece(match func(Piece) bool) []Square {
	var squares []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.Squares[sq]
		if p != Empty && match(p) {
			squares = append(squares, sq)
		}
	}
	return squares
}

// FindKing returns the square of colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	king := MakeColouredPiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}
