package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the destinations of the piece on origin that do not
// leave its own king in check. It returns nil for an empty square and a
// non-nil, possibly empty, slice otherwise. The board is unchanged on return.
func LegalMoves(board *chess.Board, origin chess.Coordinate) []chess.Coordinate {
	mover, ok := board.Get(origin)
	if !ok {
		return nil
	}

	candidates := PseudoLegalMoves(board, origin)
	legal := candidates[:0]
	for _, to := range candidates {
		if tryMove(board, origin, to, mover.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// IsLegalMove reports whether to is among the legal moves from origin.
func IsLegalMove(board *chess.Board, origin, to chess.Coordinate) bool {
	for _, c := range LegalMoves(board, origin) {
		if c == to {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, pl := range board.PiecesOf(colour) {
		if len(LegalMoves(board, pl.At)) > 0 {
			return true
		}
	}
	return false
}

// tryMove plays the move on the board, checks whether it leaves the mover's
// king in check, and takes it back.
func tryMove(board *chess.Board, from, to chess.Coordinate, colour chess.Colour) bool {
	safe := false
	Simulate(board, from, to, func(b *chess.Board) {
		safe = !IsInCheck(b, colour)
	})
	return safe
}

// Simulate temporarily moves the piece on from to to, runs probe against
// the resulting position and restores the board exactly, even if probe
// panics. probe must not keep the board.
func Simulate(board *chess.Board, from, to chess.Coordinate, probe func(*chess.Board)) {
	mover := board.Despawn(from)
	captured := board.Despawn(to)
	board.Set(mover, to)

	defer func() {
		board.Set(mover, from)
		board.Despawn(to)
		if !captured.IsEmpty() {
			board.Set(captured, to)
		}
	}()

	probe(board)
}
