package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sq parses a square name such as "e2", failing the test on error.
func Sq(t *testing.T, name string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseCoordinate(name)
	if err != nil {
		t.Fatalf("ParseCoordinate(%q) error: %v", name, err)
	}
	return c
}

// Squares parses several square names.
func Squares(t *testing.T, names ...string) []chess.Coordinate {
	t.Helper()
	out := make([]chess.Coordinate, 0, len(names))
	for _, n := range names {
		out = append(out, Sq(t, n))
	}
	return out
}

// Scenario builds a board from piece descriptions of the form "Ke1": a
// FEN piece letter (uppercase White, lowercase Black) followed by a square.
func Scenario(t *testing.T, pieces ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, desc := range pieces {
		if len(desc) != 3 {
			t.Fatalf("bad piece description %q", desc)
		}
		kind := chess.KindFromLetter(desc[0])
		if kind == chess.Empty {
			t.Fatalf("bad piece letter in %q", desc)
		}
		colour := chess.White
		if desc[0] >= 'a' && desc[0] <= 'z' {
			colour = chess.Black
		}
		if err := b.Spawn(chess.Piece{Kind: kind, Colour: colour}, Sq(t, desc[1:])); err != nil {
			t.Fatalf("Spawn(%q) error: %v", desc, err)
		}
	}
	return b
}

// AssertSquares compares a destination list against square names,
// ignoring order.
func AssertSquares(t *testing.T, got []chess.Coordinate, want ...string) {
	t.Helper()
	gotNames := Names(got)
	wantSorted := Names(Squares(t, want...))
	AssertEqual(t, gotNames, wantSorted)
}

// Names returns the sorted algebraic names of the coordinates.
func Names(cs []chess.Coordinate) []string {
	sorted := append([]chess.Coordinate(nil), cs...)
	chess.SortCoordinates(sorted)
	names := make([]string, 0, len(sorted))
	for _, c := range sorted {
		names = append(names, c.String())
	}
	return names
}
