package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PromotionKinds are the pieces a pawn may become.
var PromotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Move is a legal move of one piece. Promote is Empty unless a pawn
// reaches the far rank.
type Move struct {
	From, To chess.Coordinate
	Promote  chess.PieceKind
}

// String returns the move in long algebraic form, e.g. "e2e3" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promote != chess.Empty {
		s += strings.ToLower(string(m.Promote.Letter()))
	}
	return s
}

// AllLegalMoves lists every legal move of colour. A pawn reaching the far
// rank yields one move per promotion kind.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []Move {
	var moves []Move
	for _, pl := range board.PiecesOf(colour) {
		promotes := pl.Piece.Kind == chess.Pawn
		for _, to := range LegalMoves(board, pl.At) {
			if promotes && to.Rank() == chess.BackRank(colour) {
				for _, kind := range PromotionKinds {
					moves = append(moves, Move{From: pl.At, To: to, Promote: kind})
				}
				continue
			}
			moves = append(moves, Move{From: pl.At, To: to})
		}
	}
	return moves
}

// Play returns the position after m. The argument is not modified.
func Play(board chess.Board, m Move) chess.Board {
	mover, _ := board.Get(m.From)
	board.Move(m.From, m.To)
	if m.Promote != chess.Empty {
		board.Set(chess.Piece{Kind: m.Promote, Colour: mover.Colour}, m.To)
	}
	return board
}

// Perft counts the positions reached after exactly depth plies from
// board with toMove on move.
func Perft(board *chess.Board, toMove chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board, toMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := Play(*board, m)
		nodes += Perft(&next, toMove.Opposite(), depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide runs Perft below each legal root move, in AllLegalMoves order.
func Divide(board *chess.Board, toMove chess.Colour, depth int) []DivideEntry {
	moves := AllLegalMoves(board, toMove)
	out := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		next := Play(*board, m)
		out = append(out, DivideEntry{Move: m, Nodes: Perft(&next, toMove.Opposite(), depth-1)})
	}
	return out
}
