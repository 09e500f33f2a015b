package uci

import (
	"strings"
	"testing"

	"github.com/amiit04/ChessBotAI/internal/engine"
)

func runCommands(t *testing.T, commands ...string) string {
	t.Helper()
	eng := NewTestEngine(t)
	h := New(eng)

	var out strings.Builder
	h.Run(strings.NewReader(strings.Join(commands, "\n")), &out)
	return out.String()
}

func NewTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(2)
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}
	return eng
}

func TestHandshake(t *testing.T) {
	out := runCommands(t, "uci", "isready", "quit")

	for _, want := range []string{"id name ChessBotAI", "uciok", "readyok"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGoFromStartpos(t *testing.T) {
	out := runCommands(t, "position startpos", "go depth 2", "quit")

	if !strings.Contains(out, "bestmove ") {
		t.Fatalf("no bestmove in output:\n%s", out)
	}
	if strings.Contains(out, "bestmove 0000") {
		t.Errorf("null move from the starting position:\n%s", out)
	}
	if !strings.Contains(out, "info depth 2") {
		t.Errorf("missing search info:\n%s", out)
	}
}

func TestPositionWithMoves(t *testing.T) {
	// After 1. f3 e5 2. g4, Black mates with Qh4.
	out := runCommands(t,
		"position startpos moves f2f3 e7e5 g2g4",
		"go depth 2",
		"quit")

	if !strings.Contains(out, "bestmove d8h4") {
		t.Errorf("expected bestmove d8h4:\n%s", out)
	}
	if !strings.Contains(out, "score mate 1") {
		t.Errorf("expected mate score:\n%s", out)
	}
}

func TestPositionFromFEN(t *testing.T) {
	out := runCommands(t,
		"position fen 7k/5K2/6Q1/8/8/8/8/8 w - - 0 1 moves g6g7",
		"go depth 2",
		"quit")

	// The position after Qg7 is checkmate; nothing to play.
	if !strings.Contains(out, "bestmove 0000") {
		t.Errorf("expected null bestmove on a finished game:\n%s", out)
	}
}

func TestInvalidInputReported(t *testing.T) {
	out := runCommands(t,
		"position fen not a real fen at all 1",
		"position startpos moves e2e5",
		"quit")

	if !strings.Contains(out, "info string invalid fen") {
		t.Errorf("invalid FEN not reported:\n%s", out)
	}
	if !strings.Contains(out, "move e2e5") {
		t.Errorf("invalid move not reported:\n%s", out)
	}
}

func TestSetOptionDepth(t *testing.T) {
	eng := NewTestEngine(t)
	h := New(eng)

	var out strings.Builder
	h.Run(strings.NewReader("setoption name Depth value 4\nquit"), &out)

	if eng.Depth() != 4 {
		t.Errorf("engine depth %d after setoption, want 4", eng.Depth())
	}

	out.Reset()
	h.Run(strings.NewReader("setoption name Depth value 0\nquit"), &out)
	if !strings.Contains(out.String(), "info string") {
		t.Errorf("bad depth not reported:\n%s", out.String())
	}
}
