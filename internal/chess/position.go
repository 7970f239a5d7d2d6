package chess

// Position captures the complete state needed to continue a game.
// It is a plain value: assigning a Position copies the board along with
// everything else, so stored snapshots never share state.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// The square a pawn skipped on the previous ply, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	MoveNumber uint

	Status Status
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	pos := Position{
		ToMove:     White,
		Castling:   AllCastlingRights(),
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
	pos.Board.SetupInitialPosition()
	return pos
}
