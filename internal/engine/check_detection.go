package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A colour without a king on the board is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingPosition(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if a piece of the defending colour standing
// on target could be captured by byColour.
//
// It walks outward from target using each attacker kind's pattern and
// looks at the first occupied square of every capturing direction. Pawn
// diagonals are taken from the defender's side, which is where an enemy
// pawn has to stand to strike the square.
func IsSquareAttacked(board *chess.Board, target chess.Coordinate, byColour chess.Colour) bool {
	defender := byColour.Opposite()
	for kind := chess.Pawn; kind < chess.NumPieceKinds; kind++ {
		attacker := chess.Piece{Kind: kind, Colour: byColour}
		ms := MovesetFor(kind)
		for _, dir := range ms.Directions {
			if !dir.CanCapture() {
				continue
			}
			for step := 1; step <= ms.MaxSteps; step++ {
				from, ok := dir.Step(target, step, defender)
				if !ok {
					break
				}
				occupant, occupied := board.Get(from)
				if !occupied {
					continue
				}
				if occupant == attacker {
					return true
				}
				if !ms.Jumps {
					break // Blocked
				}
			}
		}
	}
	return false
}

// IsSquareAttackedByScan answers the same question as IsSquareAttacked by
// generating the pseudo-legal moves of every byColour piece from its own
// square. target must hold a piece of the defending colour.
func IsSquareAttackedByScan(board *chess.Board, target chess.Coordinate, byColour chess.Colour) bool {
	for _, pl := range board.PiecesOf(byColour) {
		hit := false
		walk(board, pl.At, pl.Piece, func(to chess.Coordinate) {
			if to == target {
				hit = true
			}
		})
		if hit {
			return true
		}
	}
	return false
}
