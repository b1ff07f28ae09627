package engine

import (
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func oraclePerft(pos *nchess.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += oraclePerft(pos.Update(m), depth-1)
	}
	return nodes
}

func TestPerft_InitialPosition(t *testing.T) {
	// Without double pawn steps White has eight single steps and four
	// knight moves, and neither side can affect the other in one move.
	board := NewInitialBoard()
	testutil.AssertEqual(t, Perft(board, chess.White, 0), uint64(1))
	testutil.AssertEqual(t, Perft(board, chess.White, 1), uint64(12))
	testutil.AssertEqual(t, Perft(board, chess.White, 2), uint64(144))
	testutil.AssertEqual(t, *board, *NewInitialBoard())
}

func TestPerft_Promotion(t *testing.T) {
	board, toMove, err := NewBoardFromFEN("8/1P2k3/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	var names []string
	for _, m := range AllLegalMoves(board, toMove) {
		if m.From == testutil.Sq(t, "b7") {
			names = append(names, m.String())
		}
	}
	testutil.AssertEqual(t, names, []string{"b7b8q", "b7b8r", "b7b8b", "b7b8n"})
	testutil.AssertEqual(t, Perft(board, toMove, 1), uint64(9))

	after := Play(*board, Move{From: testutil.Sq(t, "b7"), To: testutil.Sq(t, "b8"), Promote: chess.Knight})
	p, _ := after.Get(testutil.Sq(t, "b8"))
	testutil.AssertEqual(t, p, chess.W(chess.Knight))
	if _, ok := board.Get(testutil.Sq(t, "b8")); ok {
		t.Error("Play modified its argument")
	}
}

func TestPerft_MatchesOracle(t *testing.T) {
	positions := []string{
		"r3k3/8/2n5/3Q4/8/5B2/8/4K3 w - - 0 1",
		"8/3k4/8/2p1p3/3P4/8/3K4/8 b - - 0 1",
		"4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
		"8/1P2k3/8/8/8/8/8/4K3 w - - 0 1",
		"8/8/3k4/8/1b6/8/3N4/4K3 w - - 0 1",
	}

	for _, fen := range positions {
		t.Run(fen, func(t *testing.T) {
			opt, err := nchess.FEN(fen)
			testutil.AssertNoError(t, err)
			pos := nchess.NewGame(opt).Position()

			board, toMove, err := NewBoardFromFEN(fen)
			testutil.AssertNoError(t, err)
			for depth := 1; depth <= 3; depth++ {
				testutil.AssertEqual(t, Perft(board, toMove, depth), oraclePerft(pos, depth), "depth %d", depth)
			}
		})
	}
}

func TestDivide_SumsToPerft(t *testing.T) {
	board := NewInitialBoard()
	var total uint64
	entries := Divide(board, chess.White, 3)
	testutil.AssertEqual(t, len(entries), 12)
	for _, e := range entries {
		total += e.Nodes
	}
	testutil.AssertEqual(t, total, Perft(board, chess.White, 3))
}
