package chess

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions and notation.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// Coordinate identifies one of the 64 squares. File 0 is the a-file and
// rank 0 is White's back rank. The zero value is a1.
type Coordinate struct {
	file, rank int8
}

// NewCoordinate validates a (file, rank) pair.
func NewCoordinate(file, rank int) (Coordinate, error) {
	if !onBoard(file, rank) {
		return Coordinate{}, errors.Wrapf(errors.ErrOutOfBounds, "file %d rank %d", file, rank)
	}
	return Coordinate{file: int8(file), rank: int8(rank)}, nil
}

// ParseCoordinate reads a two-character square name such as "e2" or "E2".
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Coordinate{}, &errors.ParseError{Err: errors.ErrInvalidPositionString, Input: s, Offset: -1}
	}

	file := int(toLower(s[0])) - ColBase
	if file < 0 || file >= BoardSize {
		return Coordinate{}, &errors.ParseError{Err: errors.ErrInvalidFile, Input: s, Offset: 0, Got: fmt.Sprintf("%q", s[0])}
	}
	rank := int(s[1]) - RankBase
	if rank < 0 || rank >= BoardSize {
		return Coordinate{}, &errors.ParseError{Err: errors.ErrInvalidRank, Input: s, Offset: 1, Got: fmt.Sprintf("%q", s[1])}
	}
	return Coordinate{file: int8(file), rank: int8(rank)}, nil
}

// File returns the file index, 0-7.
func (c Coordinate) File() int { return int(c.file) }

// Rank returns the rank index, 0-7.
func (c Coordinate) Rank() int { return int(c.rank) }

// String renders the square in algebraic notation, e.g. "e2".
func (c Coordinate) String() string {
	return string([]byte{byte(int(c.file) + ColBase), byte(int(c.rank) + RankBase)})
}

// Offset returns the square df files and dr ranks away. The boolean is
// false when the result falls off the board.
func (c Coordinate) Offset(df, dr int) (Coordinate, bool) {
	f, r := int(c.file)+df, int(c.rank)+dr
	if !onBoard(f, r) {
		return Coordinate{}, false
	}
	return Coordinate{file: int8(f), rank: int8(r)}, true
}

// Compare orders coordinates by file, then rank. It returns -1, 0 or +1.
func (c Coordinate) Compare(other Coordinate) int {
	switch {
	case c.file != other.file:
		if c.file < other.file {
			return -1
		}
		return 1
	case c.rank != other.rank:
		if c.rank < other.rank {
			return -1
		}
		return 1
	}
	return 0
}

// SortCoordinates sorts in place using Compare.
func SortCoordinates(cs []Coordinate) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Compare(cs[j]) < 0 })
}

// AllCoordinates returns the 64 squares in Compare order.
func AllCoordinates() []Coordinate {
	all := make([]Coordinate, 0, BoardSize*BoardSize)
	for f := 0; f < BoardSize; f++ {
		for r := 0; r < BoardSize; r++ {
			all = append(all, Coordinate{file: int8(f), rank: int8(r)})
		}
	}
	return all
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
