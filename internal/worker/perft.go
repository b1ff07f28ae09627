package worker

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// CountSubtree plays the task's move and counts the positions below it.
func CountSubtree(t Task) Result {
	next := engine.Play(t.Board, t.Move)
	return Result{
		Index: t.Index,
		Move:  t.Move,
		Nodes: engine.Perft(&next, t.ToMove.Opposite(), t.Depth-1),
	}
}

// Divide is engine.Divide with the root moves spread over workers. It
// returns ctx.Err() if ctx ends before every subtree is counted.
func Divide(ctx context.Context, board *chess.Board, toMove chess.Colour, depth, workers int) ([]engine.DivideEntry, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft depth %d: must be at least 1", depth)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	moves := engine.AllLegalMoves(board, toMove)

	pool := NewPool(CountSubtree, WithWorkers(workers), WithBufferSize(len(moves)))
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range moves {
			if pool.IsStopped() {
				return
			}
			pool.Submit(Task{Index: i, Board: *board, ToMove: toMove, Move: m, Depth: depth})
		}
	}()

	out := make([]engine.DivideEntry, len(moves))
	received := 0
	for r := range pool.Results() {
		out[r.Index] = engine.DivideEntry{Move: r.Move, Nodes: r.Nodes}
		received++
	}
	if received < len(moves) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Total sums the node counts of entries.
func Total(entries []engine.DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
