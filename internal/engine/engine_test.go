package engine

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
)

func TestNewRejectsBadDepth(t *testing.T) {
	for _, depth := range []int{-3, -1, 0} {
		if _, err := New(depth); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("New(%d) returned %v, want ErrInvalidDepth", depth, err)
		}
	}
	eng, err := New(3)
	if err != nil {
		t.Fatalf("New(3) returned %v", err)
	}
	if err := eng.SetDepth(-1); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("SetDepth(-1) returned %v, want ErrInvalidDepth", err)
	}
}

func TestBestMoveStartingPosition(t *testing.T) {
	eng := NewWithDifficulty(Easy)
	pos := chess.NewGame().Position()

	move, score, err := eng.BestMove(pos)
	if err != nil {
		t.Fatalf("BestMove returned %v", err)
	}
	if move == nil {
		t.Fatal("BestMove returned no move")
	}
	if score <= -MateScore || score >= MateScore {
		t.Errorf("opening score %d is in the mate range", score)
	}
	t.Logf("depth %d chose %v (%s), %d nodes", eng.Depth(), move,
		ScoreToString(score, eng.Depth()), eng.Nodes())
}

func TestBestMoveTerminalPositions(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"},
		{"stalemate", "k7/P7/1K6/8/8/8/8/8 b - - 0 1"},
	}

	eng := NewWithDifficulty(Medium)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := positionFromFEN(t, tc.fen)
			if _, _, err := eng.BestMove(pos); !errors.Is(err, ErrGameOver) {
				t.Errorf("BestMove returned %v, want ErrGameOver", err)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	for d, want := range map[Difficulty]int{Easy: 2, Medium: 3, Hard: 4} {
		eng := NewWithDifficulty(d)
		if eng.Depth() != want {
			t.Errorf("%v: depth %d, want %d", d, eng.Depth(), want)
		}
	}
	// Unknown difficulties fall back to Medium.
	if eng := NewWithDifficulty(Difficulty(99)); eng.Depth() != DifficultyDepths[Medium] {
		t.Errorf("unknown difficulty got depth %d", eng.Depth())
	}
}

func TestScoreToString(t *testing.T) {
	cases := []struct {
		score int
		depth int
		want  string
	}{
		{50, 3, "+0.50"},
		{-125, 3, "-1.25"},
		{0, 3, "+0.00"},
		{MateScore + 2, 3, "White mates in 1"},
		{-(MateScore + 2), 3, "Black mates in 1"},
		{MateScore + 1, 4, "White mates in 2"},
	}

	for _, tc := range cases {
		if got := ScoreToString(tc.score, tc.depth); got != tc.want {
			t.Errorf("ScoreToString(%d, %d) = %q, want %q", tc.score, tc.depth, got, tc.want)
		}
	}
}
