// Package game drives a chess game through its states: it enforces turn
// order, accepts only legal moves and handles pawn promotion and the end of
// the game when a king is captured.
//
// A Game is not safe for concurrent use. Legal move filtering mutates the
// board temporarily, so every call touching one Game must be serialised;
// see package session.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game owns a board, the number of committed plies and the current state.
// The side to move is derived from the ply count: even means White.
type Game struct {
	board chess.Board
	plies int
	state State
}

// New creates a game in the standard starting position, White to move.
func New() *Game {
	g := &Game{}
	g.board.SetupInitialPosition()
	return g
}

// Empty creates a game with an empty board for building scenarios with Spawn.
func Empty() *Game {
	return &Game{}
}

// FromBoard creates a game from a copy of b with toMove on move. The state
// is Check if the side to move is attacked and InProgress otherwise; a
// missing king is tolerated until the first move.
func FromBoard(b *chess.Board, toMove chess.Colour) *Game {
	g := &Game{board: *b}
	if toMove == chess.Black {
		g.plies = 1
	}
	g.state = g.checkState()
	return g
}

// FromFEN creates a game from the placement and side-to-move fields of a
// FEN string.
func FromFEN(fen string) (*Game, error) {
	b, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return FromBoard(b, toMove), nil
}

// Spawn places a piece on an empty square. It does not re-evaluate the
// state, so a scenario can be assembled piece by piece.
func (g *Game) Spawn(p chess.Piece, at chess.Coordinate) error {
	return g.board.Spawn(p, at)
}

// MovePiece moves the piece on from to to and returns the new state.
// Every guard runs before the board is touched, so a failed call changes
// nothing.
func (g *Game) MovePiece(from, to chess.Coordinate) (State, error) {
	switch g.state.Kind {
	case GameOver:
		return g.state, g.moveError(errors.ErrGameAlreadyOver, from, to)
	case Promotion:
		return g.state, g.moveError(errors.ErrPromoteFirst, from, to)
	}

	mover, ok := g.board.Get(from)
	if !ok {
		return g.state, g.moveError(errors.ErrNoPiece, from, to)
	}
	if mover.Colour != g.Turn() {
		return g.state, g.moveError(errors.ErrNotYourTurn, from, to)
	}
	if !engine.IsLegalMove(&g.board, from, to) {
		return g.state, g.moveError(errors.ErrIllegalMove, from, to)
	}

	g.board.Move(from, to)
	g.state = g.evaluate(mover, to)
	return g.state, nil
}

// PromotePawn replaces the pawn waiting on the far rank with a piece of the
// given kind. Only Knight, Bishop, Rook and Queen are accepted.
func (g *Game) PromotePawn(kind chess.PieceKind) (State, error) {
	if g.state.Kind != Promotion {
		return g.state, &errors.MoveError{
			Err: errors.Wrapf(errors.ErrPromotion, "no pawn to promote in state %s", g.state),
			Ply: g.plies,
		}
	}
	at := g.state.Square
	switch kind {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
	default:
		return g.state, &errors.MoveError{
			Err:  errors.Wrapf(errors.ErrPromotion, "cannot promote to %s", kind),
			From: at.String(),
			Ply:  g.plies,
		}
	}

	pawn, _ := g.board.Get(at)
	promoted := chess.Piece{Kind: kind, Colour: pawn.Colour}
	g.board.Set(promoted, at)
	g.state = g.evaluate(promoted, at)
	return g.state, nil
}

// evaluate recomputes the state after piece has arrived on at. The turn
// passes only when the game neither ended nor waits for a promotion.
func (g *Game) evaluate(piece chess.Piece, at chess.Coordinate) State {
	_, whiteKing := g.board.KingPosition(chess.White)
	_, blackKing := g.board.KingPosition(chess.Black)
	switch {
	case whiteKing && !blackKing:
		return WonBy(chess.White)
	case blackKing && !whiteKing:
		return WonBy(chess.Black)
	case !whiteKing && !blackKing:
		return WonBy(piece.Colour)
	}

	if piece.Kind == chess.Pawn && at.Rank() == chess.BackRank(piece.Colour) {
		return PromotionAt(at)
	}

	g.plies++
	return g.checkState()
}

func (g *Game) checkState() State {
	if engine.IsInCheck(&g.board, g.Turn()) {
		return State{Kind: Check}
	}
	return State{Kind: InProgress}
}

func (g *Game) moveError(err error, from, to chess.Coordinate) error {
	return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: g.plies}
}

// PossibleMoves returns the legal destinations of the piece on pos,
// regardless of whose turn it is. The boolean is false when pos is empty;
// otherwise the slice is non-nil, possibly empty.
func (g *Game) PossibleMoves(pos chess.Coordinate) ([]chess.Coordinate, bool) {
	moves := engine.LegalMoves(&g.board, pos)
	if moves == nil {
		return nil, false
	}
	return moves, true
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Piece returns the piece on pos. The boolean is false for an empty square.
func (g *Game) Piece(pos chess.Coordinate) (chess.Piece, bool) {
	return g.board.Get(pos)
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	if g.plies%2 == 0 {
		return chess.White
	}
	return chess.Black
}

// Plies returns the number of completed turns.
func (g *Game) Plies() int {
	return g.plies
}

// Board returns a copy of the board.
func (g *Game) Board() chess.Board {
	return g.board
}

// FEN returns the position as a FEN string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(&g.board, g.Turn(), g.plies/2+1)
}

// IsCheckmate reports whether the side to move is in check with no legal
// move. It does not change the state.
func (g *Game) IsCheckmate() bool {
	return engine.IsCheckmate(&g.board, g.Turn())
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check. It does not change the state.
func (g *Game) IsStalemate() bool {
	return engine.IsStalemate(&g.board, g.Turn())
}
