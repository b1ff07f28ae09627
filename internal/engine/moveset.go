// Package engine provides chess move generation, check detection and
// legality filtering.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CaptureRule says what a direction may do with an occupied square.
type CaptureRule int

const (
	// CaptureAllowed moves onto empty squares and captures opposing pieces.
	CaptureAllowed CaptureRule = iota
	// MoveOnly moves onto empty squares and never captures (pawn advance).
	MoveOnly
	// CaptureOnly captures opposing pieces and never moves onto an empty
	// square (pawn diagonal).
	CaptureOnly
)

// Direction is one movement vector. Relative directions are given from
// White's side and mirrored for Black.
type Direction struct {
	Name     string
	DFile    int
	DRank    int
	Relative bool
	Capture  CaptureRule
}

// Step returns the square steps multiples of the vector away from origin,
// as seen by a mover of the given colour. The boolean is false off the board.
func (d Direction) Step(origin chess.Coordinate, steps int, colour chess.Colour) (chess.Coordinate, bool) {
	dr := d.DRank
	if d.Relative {
		dr *= chess.ColourOffset(colour)
	}
	return origin.Offset(d.DFile*steps, dr*steps)
}

// CanMove reports whether the direction may end on an empty square.
func (d Direction) CanMove() bool { return d.Capture != CaptureOnly }

// CanCapture reports whether the direction may end on an opposing piece.
func (d Direction) CanCapture() bool { return d.Capture != MoveOnly }

// Moveset is the fixed movement pattern of a piece kind.
type Moveset struct {
	Directions []Direction
	MaxSteps   int
	// Jumps is set for pieces whose step is a leap over occupied squares.
	Jumps bool
}

// SlideSteps is the longest walk a sliding piece can make.
const SlideSteps = chess.BoardSize - 1

var (
	Up        = Direction{Name: "up", DFile: 0, DRank: 1}
	Down      = Direction{Name: "down", DFile: 0, DRank: -1}
	Right     = Direction{Name: "right", DFile: 1, DRank: 0}
	Left      = Direction{Name: "left", DFile: -1, DRank: 0}
	UpRight   = Direction{Name: "up-right", DFile: 1, DRank: 1}
	UpLeft    = Direction{Name: "up-left", DFile: -1, DRank: 1}
	DownRight = Direction{Name: "down-right", DFile: 1, DRank: -1}
	DownLeft  = Direction{Name: "down-left", DFile: -1, DRank: -1}

	Forward      = Direction{Name: "forward", DFile: 0, DRank: 1, Relative: true, Capture: MoveOnly}
	ForwardLeft  = Direction{Name: "forward-left", DFile: -1, DRank: 1, Relative: true, Capture: CaptureOnly}
	ForwardRight = Direction{Name: "forward-right", DFile: 1, DRank: 1, Relative: true, Capture: CaptureOnly}
)

var (
	straightDirs = []Direction{Up, Down, Right, Left}
	diagonalDirs = []Direction{UpRight, UpLeft, DownRight, DownLeft}
	knightDirs   = []Direction{
		{Name: "leap", DFile: 1, DRank: 2},
		{Name: "leap", DFile: 2, DRank: 1},
		{Name: "leap", DFile: 2, DRank: -1},
		{Name: "leap", DFile: 1, DRank: -2},
		{Name: "leap", DFile: -1, DRank: -2},
		{Name: "leap", DFile: -2, DRank: -1},
		{Name: "leap", DFile: -2, DRank: 1},
		{Name: "leap", DFile: -1, DRank: 2},
	}
)

// movesets is indexed by chess.PieceKind and built once.
var movesets = buildMovesets()

func buildMovesets() [chess.NumPieceKinds]Moveset {
	all := append(append([]Direction{}, straightDirs...), diagonalDirs...)

	var m [chess.NumPieceKinds]Moveset
	m[chess.Pawn] = Moveset{Directions: []Direction{Forward, ForwardLeft, ForwardRight}, MaxSteps: 1}
	m[chess.Knight] = Moveset{Directions: knightDirs, MaxSteps: 1, Jumps: true}
	m[chess.Bishop] = Moveset{Directions: diagonalDirs, MaxSteps: SlideSteps}
	m[chess.Rook] = Moveset{Directions: straightDirs, MaxSteps: SlideSteps}
	m[chess.Queen] = Moveset{Directions: all, MaxSteps: SlideSteps}
	m[chess.King] = Moveset{Directions: all, MaxSteps: 1}
	return m
}

// MovesetFor returns the movement pattern of a piece kind. Empty has no
// directions.
func MovesetFor(kind chess.PieceKind) Moveset {
	if kind <= chess.Empty || kind >= chess.NumPieceKinds {
		return Moveset{}
	}
	return movesets[kind]
}
