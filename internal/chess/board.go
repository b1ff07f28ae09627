package chess

import "github.com/lgbarn/chess-rules-go/internal/errors"

// Board represents the 8x8 grid and the cached location of each king.
//
// The king cache for a colour is set exactly when a King of that colour
// occupies the cached square. Every mutating method updates the grid and
// the cache together. Board is a comparable value, so two boards can be
// checked for identity with ==.
type Board struct {
	// squares[file][rank]
	squares [BoardSize][BoardSize]Piece

	// Keep track of where the two kings are for check detection.
	kings   [2]Coordinate
	hasKing [2]bool
}

// Placement is a piece together with the square it stands on.
type Placement struct {
	Piece Piece
	At    Coordinate
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(W(backRank[file]), Coordinate{file: int8(file), rank: 0})
		b.Set(W(Pawn), Coordinate{file: int8(file), rank: 1})
		b.Set(B(Pawn), Coordinate{file: int8(file), rank: 6})
		b.Set(B(backRank[file]), Coordinate{file: int8(file), rank: 7})
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	*b = Board{}
}

// Get returns the piece at c. The boolean is false for an empty square.
func (b *Board) Get(c Coordinate) (Piece, bool) {
	p := b.squares[c.file][c.rank]
	return p, !p.IsEmpty()
}

// Spawn places a piece on an empty square. It fails with ErrIllegalSpawn
// if the square is occupied or if the colour already has a king and p is
// another one.
func (b *Board) Spawn(p Piece, c Coordinate) error {
	if occupant, ok := b.Get(c); ok {
		return errors.Wrapf(errors.ErrIllegalSpawn, "%s occupied by %s", c, occupant)
	}
	if p.Kind == King && b.hasKing[p.Colour] {
		return errors.Wrapf(errors.ErrIllegalSpawn, "%s king already on %s", p.Colour, b.kings[p.Colour])
	}
	b.Set(p, c)
	return nil
}

// Set overwrites the square unconditionally. Setting the zero Piece is the
// same as Despawn. Setting a King removes any other king of its colour.
func (b *Board) Set(p Piece, c Coordinate) {
	b.Despawn(c)
	if p.IsEmpty() {
		return
	}
	if p.Kind == King && b.hasKing[p.Colour] {
		b.Despawn(b.kings[p.Colour])
	}
	b.squares[c.file][c.rank] = p
	if p.Kind == King {
		b.kings[p.Colour] = c
		b.hasKing[p.Colour] = true
	}
}

// Despawn removes and returns whatever occupies c.
func (b *Board) Despawn(c Coordinate) Piece {
	p := b.squares[c.file][c.rank]
	if p.IsEmpty() {
		return p
	}
	b.squares[c.file][c.rank] = Piece{}
	if p.Kind == King && b.hasKing[p.Colour] && b.kings[p.Colour] == c {
		b.kings[p.Colour] = Coordinate{}
		b.hasKing[p.Colour] = false
	}
	return p
}

// Move relocates the piece on from to to, discarding any occupant of to,
// which is returned. Moving from an empty square does nothing.
func (b *Board) Move(from, to Coordinate) Piece {
	p, ok := b.Get(from)
	if !ok {
		return Piece{}
	}
	captured := b.Despawn(to)
	b.Despawn(from)
	b.Set(p, to)
	return captured
}

// PiecesOf returns a fresh list of every piece of the given colour.
func (b *Board) PiecesOf(colour Colour) []Placement {
	var pieces []Placement
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.squares[file][rank]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, Placement{Piece: p, At: Coordinate{file: int8(file), rank: int8(rank)}})
			}
		}
	}
	return pieces
}

// KingPosition returns the cached king square. The boolean is false when
// that colour has no king on the board.
func (b *Board) KingPosition(colour Colour) (Coordinate, bool) {
	return b.kings[colour], b.hasKing[colour]
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if !b.squares[file][rank].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
