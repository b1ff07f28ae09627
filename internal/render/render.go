// Package render draws a board as text for a terminal.
//
// Squares are three columns wide. Light and dark squares, move targets and
// a king in check get their own background colour through fatih/color;
// with colour disabled the same information is carried by the cell text:
// " . " for an empty square, " * " for an empty target, "[p]" for a piece
// that can be captured and "!K!" for a king in check.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// View is everything drawn for one position.
type View struct {
	Board   chess.Board
	ToMove  chess.Colour
	Targets []chess.Coordinate
	// InCheck marks the king of ToMove as attacked.
	InCheck bool
	// Status replaces the "<colour> to move" heading when set.
	Status string
}

// Renderer writes views to a terminal.
type Renderer struct {
	colour bool
	flip   bool
}

// New creates a renderer. With flip set the board is drawn from Black's side.
func New(useColour, flip bool) *Renderer {
	return &Renderer{colour: useColour, flip: flip}
}

type squareKind int

const (
	lightSquare squareKind = iota
	darkSquare
	targetSquare
	checkSquare
)

var backgrounds = [...]color.Attribute{
	lightSquare:  color.BgHiWhite,
	darkSquare:   color.BgGreen,
	targetSquare: color.BgYellow,
	checkSquare:  color.BgRed,
}

func (r *Renderer) paint(kind squareKind, p chess.Piece, text string) string {
	fg := color.FgHiBlack
	if !p.IsEmpty() && p.Colour == chess.White {
		fg = color.FgHiBlue
	}
	c := color.New(backgrounds[kind], fg, color.Bold)
	if r.colour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Render writes the heading, the eight ranks and the file letters to w.
func (r *Renderer) Render(w io.Writer, v View) error {
	targets := make(map[chess.Coordinate]bool, len(v.Targets))
	for _, c := range v.Targets {
		targets[c] = true
	}
	king, hasKing := v.Board.KingPosition(v.ToMove)
	checked := v.InCheck && hasKing

	var sb strings.Builder
	if v.Status != "" {
		sb.WriteString(v.Status)
	} else {
		fmt.Fprintf(&sb, "%s to move", v.ToMove)
	}
	sb.WriteByte('\n')

	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if r.flip {
			rank = row
		}
		fmt.Fprintf(&sb, "%c ", chess.RankBase+rank)
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if r.flip {
				file = chess.BoardSize - 1 - col
			}
			at, _ := chess.NewCoordinate(file, rank)
			sb.WriteString(r.cell(&v.Board, at, targets[at], checked && at == king))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for col := 0; col < chess.BoardSize; col++ {
		file := col
		if r.flip {
			file = chess.BoardSize - 1 - col
		}
		fmt.Fprintf(&sb, " %c ", chess.ColBase+file)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) cell(b *chess.Board, at chess.Coordinate, target, inCheck bool) string {
	p, occupied := b.Get(at)
	kind := lightSquare
	if (at.File()+at.Rank())%2 == 0 {
		kind = darkSquare
	}

	text := " . "
	switch {
	case inCheck:
		kind = checkSquare
		text = fmt.Sprintf("!%c!", p.Letter())
	case target && occupied:
		kind = targetSquare
		text = fmt.Sprintf("[%c]", p.Letter())
	case target:
		kind = targetSquare
		text = " * "
	case occupied:
		text = fmt.Sprintf(" %c ", p.Letter())
	}
	return r.paint(kind, p, text)
}

// Squares writes coordinates as a space separated line, e.g. "a3 c3".
func Squares(w io.Writer, cs []chess.Coordinate) error {
	sorted := append([]chess.Coordinate(nil), cs...)
	chess.SortCoordinates(sorted)
	names := make([]string, len(sorted))
	for i, c := range sorted {
		names[i] = c.String()
	}
	_, err := fmt.Fprintln(w, strings.Join(names, " "))
	return err
}
