package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// walk calls visit for every pseudo-legal destination of mover standing on
// origin, direction by direction and nearest square first.
func walk(board *chess.Board, origin chess.Coordinate, mover chess.Piece, visit func(chess.Coordinate)) {
	ms := MovesetFor(mover.Kind)
	for _, dir := range ms.Directions {
		for step := 1; step <= ms.MaxSteps; step++ {
			to, ok := dir.Step(origin, step, mover.Colour)
			if !ok {
				break
			}

			occupant, occupied := board.Get(to)
			if !occupied {
				if !dir.CanMove() {
					break
				}
				visit(to)
				continue
			}

			if occupant.Colour != mover.Colour && dir.CanCapture() {
				visit(to)
			}
			if !ms.Jumps {
				break // Blocked
			}
		}
	}
}

// PseudoLegalMoves returns the destinations reachable by the piece on
// origin, ignoring whether they expose its own king. It returns nil for an
// empty square.
func PseudoLegalMoves(board *chess.Board, origin chess.Coordinate) []chess.Coordinate {
	mover, ok := board.Get(origin)
	if !ok {
		return nil
	}
	moves := []chess.Coordinate{}
	walk(board, origin, mover, func(to chess.Coordinate) {
		moves = append(moves, to)
	})
	return moves
}
