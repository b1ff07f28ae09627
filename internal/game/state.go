package game

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// StateKind identifies which state a game is in.
type StateKind int

const (
	InProgress StateKind = iota
	Check
	Promotion
	GameOver
)

var stateNames = [...]string{"InProgress", "Check", "Promotion", "GameOver"}

// String returns the name of the state kind.
func (k StateKind) String() string {
	if k < 0 || int(k) >= len(stateNames) {
		return fmt.Sprintf("StateKind(%d)", int(k))
	}
	return stateNames[k]
}

// State is the game state after the last committed mutation.
// Square is meaningful only for Promotion and Winner only for GameOver.
type State struct {
	Kind   StateKind
	Square chess.Coordinate
	Winner chess.Colour
}

// PromotionAt returns the state of a pawn waiting to be promoted on c.
func PromotionAt(c chess.Coordinate) State {
	return State{Kind: Promotion, Square: c}
}

// WonBy returns the state of a game won by colour.
func WonBy(colour chess.Colour) State {
	return State{Kind: GameOver, Winner: colour}
}

// IsOver reports whether no further moves are accepted.
func (s State) IsOver() bool {
	return s.Kind == GameOver
}

// String returns e.g. "InProgress", "Promotion(a8)" or "GameOver(White)".
func (s State) String() string {
	switch s.Kind {
	case Promotion:
		return fmt.Sprintf("Promotion(%s)", s.Square)
	case GameOver:
		return fmt.Sprintf("GameOver(%s)", s.Winner)
	default:
		return s.Kind.String()
	}
}
