package worker

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestDivide_MatchesSequential(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k3/8/2n5/3Q4/8/5B2/8/4K3 w - - 0 1",
		"8/1P2k3/8/8/8/8/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, toMove, err := engine.NewBoardFromFEN(fen)
			testutil.AssertNoError(t, err)
			before := *board

			got, err := Divide(context.Background(), board, toMove, 3, 4)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, engine.Divide(board, toMove, 3))
			testutil.AssertEqual(t, Total(got), engine.Perft(board, toMove, 3))
			testutil.AssertEqual(t, *board, before)
		})
	}
}

func TestDivide_NoMoves(t *testing.T) {
	board, toMove, err := engine.NewBoardFromFEN("7k/5Q2/8/8/8/8/8/K7 b - - 0 1")
	testutil.AssertNoError(t, err)
	got, err := Divide(context.Background(), board, toMove, 2, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(got), 0)
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Divide(ctx, engine.NewInitialBoard(), chess.White, 4, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Divide() error = %v; want context.Canceled", err)
	}
}

func TestDivide_BadDepth(t *testing.T) {
	if _, err := Divide(context.Background(), engine.NewInitialBoard(), chess.White, 0, 1); err == nil {
		t.Error("Divide(depth 0) succeeded")
	}
}
