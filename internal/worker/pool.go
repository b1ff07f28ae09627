// Package worker counts perft subtrees on several goroutines.
//
// Each task carries its own copy of the board, so workers never share a
// position and need no locking beyond the channels.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Task is one root move to expand.
type Task struct {
	Index  int // position of Move in the root move list
	Board  chess.Board
	ToMove chess.Colour
	Move   engine.Move
	Depth  int // plies counted from the root, including Move
}

// Result is the node count below one root move.
type Result struct {
	Index int
	Move  engine.Move
	Nodes uint64
}

// CountFunc turns a task into its result.
type CountFunc func(Task) Result

// Pool runs a CountFunc over submitted tasks on a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	tasks      chan Task
	results    chan Result
	count      CountFunc
	wg         sync.WaitGroup
	stopped    int32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 16 unless
// options say otherwise.
func NewPool(count CountFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 16,
		count:      count,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.tasks = make(chan Task, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for t := range p.tasks {
		if p.IsStopped() {
			continue
		}
		p.results <- p.count(t)
	}
}

// Submit queues a task. It blocks while the buffer is full.
func (p *Pool) Submit(t Task) {
	p.tasks <- t
}

// Stop makes workers discard the tasks still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopped, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopped) != 0
}

// Close stops accepting tasks, waits for the workers and closes Results.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
