package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/session"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const commandHelp = `  new [fen]            start a game, from the given position if any
  use <id>             switch to another game
  list                 list games, * marks the current one
  board                draw the board
  moves <square>       list the legal destinations of a piece
  move <from> <to>     play a move; also "move e2e3" or just "e2e3"
  promote <piece>      promote the waiting pawn (q, r, b, n or the name)
  state                show the game state
  fen                  print the position as FEN
  perft <depth>        count the positions reachable in depth plies (Ctrl-C stops)
  help                 show this list
  quit                 leave
`

// repl reads commands line by line and applies them to the current game.
type repl struct {
	cfg      *config.Config
	registry *session.Registry
	renderer *render.Renderer
	current  *session.Session
}

func newREPL(cfg *config.Config, registry *session.Registry) *repl {
	return &repl{
		cfg:      cfg,
		registry: registry,
		renderer: render.New(cfg.Display.UseColour, cfg.Display.Flip),
	}
}

// Run starts a game and processes commands from in until quit or end of input.
func (r *repl) Run(in io.Reader) error {
	if err := r.newGame(r.cfg.StartFEN); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if r.cfg.Prompt != "" {
			fmt.Fprint(r.cfg.OutputFile, r.cfg.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		if quit := r.exec(scanner.Text()); quit {
			break
		}
	}
	return scanner.Err()
}

// exec runs one command line and reports whether the user asked to quit.
// Command errors are printed and never end the loop.
func (r *repl) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	r.logf(config.Commentary, "%s: %s\n", r.current.ID, line)

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(r.cfg.OutputFile, commandHelp)
	case "new":
		err = r.newGame(strings.Join(args, " "))
	case "use":
		err = r.use(args)
	case "list":
		r.list()
	case "board":
		err = r.drawBoard(nil)
	case "moves":
		err = r.moves(args)
	case "move":
		err = r.move(args)
	case "promote":
		err = r.promote(args)
	case "state":
		r.printState()
	case "fen":
		fmt.Fprintln(r.cfg.OutputFile, r.current.FEN())
	case "perft":
		err = r.perft(args)
	default:
		if len(fields) <= 2 && looksLikeMove(fields) {
			err = r.move(fields)
			break
		}
		err = fmt.Errorf("unknown command %q (try help)", fields[0])
	}

	if err != nil {
		fmt.Fprintf(r.cfg.OutputFile, "error: %v\n", err)
		r.logf(config.Commentary, "%s: %v\n", r.current.ID, err)
	}
	return false
}

func (r *repl) logf(level int, format string, args ...interface{}) {
	if r.cfg.Verbosity >= level {
		fmt.Fprintf(r.cfg.LogFile, format, args...)
	}
}

func (r *repl) newGame(fen string) error {
	g := game.New()
	if fen != "" {
		var err error
		if g, err = game.FromFEN(fen); err != nil {
			return err
		}
	}
	r.current = r.registry.Create(g)
	fmt.Fprintf(r.cfg.OutputFile, "game %s\n", r.current.ID)
	return r.drawBoard(nil)
}

func (r *repl) use(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: use <id>")
	}
	s, err := r.registry.Get(args[0])
	if err != nil {
		return err
	}
	r.current = s
	return r.drawBoard(nil)
}

func (r *repl) list() {
	for _, id := range r.registry.IDs() {
		marker := " "
		if id == r.current.ID {
			marker = "*"
		}
		fmt.Fprintf(r.cfg.OutputFile, "%s %s\n", marker, id)
	}
}

// drawBoard renders the current game with the given destinations marked.
func (r *repl) drawBoard(targets []chess.Coordinate) error {
	var v render.View
	r.current.Do(func(g *game.Game) {
		v = render.View{
			Board:   g.Board(),
			ToMove:  g.Turn(),
			Targets: targets,
			InCheck: g.State().Kind == game.Check,
			Status:  describe(g),
		}
	})
	return r.renderer.Render(r.cfg.OutputFile, v)
}

func (r *repl) moves(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: moves <square>")
	}
	at, err := chess.ParseCoordinate(args[0])
	if err != nil {
		return err
	}
	targets, ok := r.current.PossibleMoves(at)
	if !ok {
		return errors.Wrapf(errors.ErrNoPiece, "%s", at)
	}
	if err := render.Squares(r.cfg.OutputFile, targets); err != nil {
		return err
	}
	if r.cfg.Display.ShowTargets {
		return r.drawBoard(targets)
	}
	return nil
}

func (r *repl) move(args []string) error {
	from, to, err := parseMove(args)
	if err != nil {
		return err
	}
	if _, err := r.current.MovePiece(from, to); err != nil {
		return err
	}
	r.report(fmt.Sprintf("%s-%s", from, to))
	return nil
}

func (r *repl) promote(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: promote <piece>")
	}
	kind, err := chess.ParsePieceKind(args[0])
	if err != nil {
		return err
	}
	if _, err := r.current.PromotePawn(kind); err != nil {
		return err
	}
	r.report("=" + string(kind.Letter()))
	return nil
}

// report prints the state reached by a move and logs finished games.
func (r *repl) report(played string) {
	var status string
	var over bool
	r.current.Do(func(g *game.Game) {
		status = describe(g)
		over = g.State().IsOver()
	})
	fmt.Fprintf(r.cfg.OutputFile, "%s: %s\n", played, status)
	if over {
		r.logf(config.Results, "game %s: %s\n", r.current.ID, status)
	}
}

// perft counts the positions below a snapshot of the current game.
func (r *repl) perft(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: perft <depth>")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("perft depth %q: %w", args[0], err)
	}
	if depth > r.cfg.MaxPerftDepth {
		return fmt.Errorf("perft depth %d: limit is %d", depth, r.cfg.MaxPerftDepth)
	}

	// Ctrl-C abandons the count instead of the program.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	board, toMove := r.current.Snapshot()
	entries, err := worker.Divide(ctx, &board, toMove, depth, r.cfg.Workers)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(r.cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(r.cfg.OutputFile, "total %d\n", worker.Total(entries))
	r.logf(config.Commentary, "%s: perft %d = %d\n", r.current.ID, depth, worker.Total(entries))
	return nil
}

func (r *repl) printState() {
	r.current.Do(func(g *game.Game) {
		fmt.Fprintf(r.cfg.OutputFile, "%s, ply %d\n", describe(g), g.Plies())
	})
}

// describe summarises the state of g in one line.
func describe(g *game.Game) string {
	st := g.State()
	switch st.Kind {
	case game.GameOver:
		return fmt.Sprintf("%s, %s wins", st, st.Winner)
	case game.Promotion:
		return fmt.Sprintf("%s, %s to promote", st, g.Turn())
	}
	switch {
	case g.IsCheckmate():
		return fmt.Sprintf("%s, %s is checkmated", st, g.Turn())
	case g.IsStalemate():
		return fmt.Sprintf("%s, %s is stalemated", st, g.Turn())
	}
	return fmt.Sprintf("%s, %s to move", st, g.Turn())
}

// looksLikeMove reports whether fields is a bare move such as "e2e3" or
// "e2 e3".
func looksLikeMove(fields []string) bool {
	_, _, err := parseMove(fields)
	return err == nil
}

// parseMove reads "e2 e3" or "e2e3".
func parseMove(args []string) (from, to chess.Coordinate, err error) {
	switch {
	case len(args) == 1 && len(args[0]) == 4:
		args = []string{args[0][:2], args[0][2:]}
	case len(args) != 2:
		return from, to, fmt.Errorf("usage: move <from> <to>")
	}
	if from, err = chess.ParseCoordinate(args[0]); err != nil {
		return from, to, err
	}
	to, err = chess.ParseCoordinate(args[1])
	return from, to, err
}
