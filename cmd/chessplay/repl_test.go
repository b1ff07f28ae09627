package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/session"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// runScript feeds script to a fresh REPL and returns what it printed and
// what it logged.
func runScript(t *testing.T, startFEN, script string) (string, string) {
	t.Helper()
	var out, log bytes.Buffer
	cfg, err := config.NewConfigBuilder().
		WithVerbosity(config.Commentary).
		WithStartFEN(startFEN).
		WithPrompt("").
		WithColour(false).
		WithTargets(false).
		WithWorkers(2).
		WithOutput(&out).
		WithLog(&log).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	n := 0
	registry := session.NewRegistryWithNames(func() string {
		n++
		return fmt.Sprintf("game-%d", n)
	})

	if err := newREPL(cfg, registry).Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return out.String(), log.String()
}

func TestREPL_PlayMoves(t *testing.T) {
	out, log := runScript(t, "", strings.Join([]string{
		"moves b1",
		"move e2 e3",
		"e7e6",
		"fen",
		"state",
		"quit",
		"move a2 a3",
	}, "\n"))

	testutil.AssertContains(t, out, "game game-1\n")
	testutil.AssertContains(t, out, "InProgress, White to move\n8  r  n  b  q  k  b  n  r ")
	testutil.AssertContains(t, out, "a3 c3\n")
	testutil.AssertContains(t, out, "e2-e3: InProgress, Black to move\n")
	testutil.AssertContains(t, out, "e7-e6: InProgress, White to move\n")
	testutil.AssertContains(t, out, "rnbqkbnr/pppp1ppp/4p3/8/8/4P3/PPPP1PPP/RNBQKBNR w - - 0 2\n")
	testutil.AssertContains(t, out, "InProgress, White to move, ply 2\n")
	if strings.Contains(out, "a2-a3") {
		t.Error("command after quit was executed")
	}
	testutil.AssertContains(t, log, "game-1: move e2 e3\n")
}

func TestREPL_Errors(t *testing.T) {
	out, _ := runScript(t, "", strings.Join([]string{
		"move e2 e5",
		"moves z9",
		"moves e4",
		"e7e6",
		"promote q",
		"promote k",
		"frobnicate",
		"use nobody",
		"move e2",
	}, "\n"))

	for _, want := range []string{
		"error: move e2-e5, ply 0: illegal move\n",
		"invalid file\n",
		"error: e4: no piece\n",
		"error: move e7-e6, ply 0: not your turn\n",
		"no pawn to promote in state InProgress: promotion error\n",
		"error: unknown command \"frobnicate\" (try help)\n",
		"unknown session\n",
		"error: usage: move <from> <to>\n",
	} {
		testutil.AssertContains(t, out, want)
	}
}

func TestREPL_Promotion(t *testing.T) {
	out, _ := runScript(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", strings.Join([]string{
		"a7a8",
		"e1d1",
		"promote pawn",
		"promote bishop",
		"fen",
	}, "\n"))

	testutil.AssertContains(t, out, "a7-a8: Promotion(a8), White to promote\n")
	testutil.AssertContains(t, out, "pawn must be promoted first\n")
	testutil.AssertContains(t, out, "cannot promote to Pawn: promotion error\n")
	testutil.AssertContains(t, out, "=B: InProgress, Black to move\n")
	testutil.AssertContains(t, out, "B3k3/8/8/8/8/8/8/4K3 b - - 0 1\n")
}

func TestREPL_GameOver(t *testing.T) {
	out, log := runScript(t, "8/8/8/8/8/8/8/4K3 w - - 0 1", "e1e2\ne2e3\n")

	testutil.AssertContains(t, out, "e1-e2: GameOver(White), White wins\n")
	testutil.AssertContains(t, out, "game already over\n")
	testutil.AssertContains(t, log, "game game-1: GameOver(White), White wins\n")
}

func TestREPL_CheckmateAndStalemate(t *testing.T) {
	out, _ := runScript(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8\nboard\n")
	testutil.AssertContains(t, out, "a1-a8: Check, Black is checkmated\n")
	testutil.AssertContains(t, out, "8  R  .  .  .  .  . !k! . ")

	out, _ = runScript(t, "7k/8/5Q2/8/8/8/8/K7 w - - 0 1", "f6 f7\n")
	testutil.AssertContains(t, out, "f6-f7: InProgress, Black is stalemated\n")
}

func TestREPL_Sessions(t *testing.T) {
	out, _ := runScript(t, "", strings.Join([]string{
		"e2e3",
		"new",
		"list",
		"fen",
		"use game-1",
		"list",
		"fen",
	}, "\n"))

	testutil.AssertContains(t, out, "game game-2\n")
	testutil.AssertContains(t, out, "  game-1\n* game-2\n")
	testutil.AssertContains(t, out, "* game-1\n  game-2\n")
	testutil.AssertContains(t, out, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1\n")
	testutil.AssertContains(t, out, "rnbqkbnr/pppppppp/8/8/8/4P3/PPPP1PPP/RNBQKBNR b - - 0 1\n")
}

func TestREPL_NewFromFEN(t *testing.T) {
	out, _ := runScript(t, "", "new 4k3/8/8/8/8/8/8/4K2r w - - 0 1\nnew nonsense\nlist\n")
	testutil.AssertContains(t, out, "game game-2\nCheck, White to move\n")
	testutil.AssertContains(t, out, "invalid FEN string\n")
	testutil.AssertContains(t, out, "  game-1\n* game-2\n")
}

func TestREPL_Perft(t *testing.T) {
	out, log := runScript(t, "", "perft 2\nperft 0\nperft x\nperft 6\n")
	testutil.AssertContains(t, out, "b1c3: 12\n")
	testutil.AssertContains(t, out, "total 144\n")
	testutil.AssertContains(t, out, "error: perft depth 0: must be at least 1\n")
	testutil.AssertContains(t, out, "error: perft depth \"x\"")
	testutil.AssertContains(t, out, "error: perft depth 6: limit is 5\n")
	testutil.AssertContains(t, log, "game-1: perft 2 = 144\n")
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		args    []string
		from    string
		to      string
		wantErr bool
	}{
		{[]string{"e2", "e4"}, "e2", "e4", false},
		{[]string{"E2E4"}, "e2", "e4", false},
		{[]string{"g1f3"}, "g1", "f3", false},
		{[]string{"e2"}, "", "", true},
		{[]string{"e2", "e9"}, "", "", true},
		{[]string{"i2e4"}, "", "", true},
		{[]string{"e2", "e3", "e4"}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			from, to, err := parseMove(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseMove(%v) = %v, %v, want error", tt.args, from, to)
				}
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, from.String(), tt.from)
			testutil.AssertEqual(t, to.String(), tt.to)
		})
	}
}
