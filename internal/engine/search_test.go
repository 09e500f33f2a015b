package engine

import (
	"testing"

	"github.com/notnil/chess"
)

// plainMinimax is an exhaustive reference search without pruning or
// move ordering. Alpha-beta must return exactly its score.
func plainMinimax(pos *chess.Position, depth int, maximizing bool, nodes *uint64) int {
	*nodes++

	switch pos.Status() {
	case chess.Checkmate:
		if maximizing {
			return -(MateScore + depth)
		}
		return MateScore + depth
	case chess.Stalemate:
		return 0
	}

	if depth == 0 {
		return Evaluate(pos)
	}

	if maximizing {
		best := -Infinity
		for _, mv := range pos.ValidMoves() {
			if val := plainMinimax(pos.Update(mv), depth-1, false, nodes); val > best {
				best = val
			}
		}
		return best
	}
	best := Infinity
	for _, mv := range pos.ValidMoves() {
		if val := plainMinimax(pos.Update(mv), depth-1, true, nodes); val < best {
			best = val
		}
	}
	return best
}

func TestPruningPreservesScore(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 2},
		{"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 4 3", 2},
		{"8/8/8/3k4/8/3K4/3P4/8 w - - 0 1", 3},
		{"k7/8/8/2q4p/1P5Q/8/8/K7 b - - 0 1", 3},
	}

	for _, tc := range cases {
		t.Run(tc.fen, func(t *testing.T) {
			pos := positionFromFEN(t, tc.fen)
			maximizing := pos.Turn() == chess.White

			var plainNodes uint64
			want := plainMinimax(pos, tc.depth, maximizing, &plainNodes)

			s := NewSearcher()
			got, _ := s.Search(pos, tc.depth)
			if got != want {
				t.Errorf("pruned search returned %d, exhaustive returned %d", got, want)
			}
			if s.Nodes() > plainNodes {
				t.Errorf("pruned search visited %d nodes, exhaustive visited %d", s.Nodes(), plainNodes)
			}
			t.Logf("score %d, nodes %d pruned vs %d exhaustive", got, s.Nodes(), plainNodes)
		})
	}
}

func TestDepthZeroMatchesEvaluate(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 4 3",
		"8/5pk1/6p1/8/3N4/8/5PPP/6K1 b - - 3 40",
	}

	for _, fen := range fens {
		pos := positionFromFEN(t, fen)
		s := NewSearcher()
		score, move := s.Search(pos, 0)
		if want := Evaluate(pos); score != want {
			t.Errorf("%s: depth-0 search returned %d, Evaluate returned %d", fen, score, want)
		}
		if move != nil {
			t.Errorf("%s: depth-0 search returned move %v, want none", fen, move)
		}
	}
}

func TestFindsMateInOne(t *testing.T) {
	pos := positionFromFEN(t, "7k/5K2/6Q1/8/8/8/8/8 w - - 0 1")

	s := NewSearcher()
	score, move := s.Search(pos, 3)
	if move == nil {
		t.Fatal("no move returned")
	}

	// Mate on the very next ply leaves two plies of depth unused.
	if want := MateScore + 2; score != want {
		t.Errorf("score %d, want %d", score, want)
	}
	if status := pos.Update(move).Status(); status != chess.Checkmate {
		t.Errorf("move %v leads to %v, want checkmate", move, status)
	}
}

func TestCheckmatedRootScore(t *testing.T) {
	// Fool's mate: White to move and checkmated. The search reports
	// the loss at the root with the full depth bonus.
	pos := positionFromFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	s := NewSearcher()
	score, move := s.Search(pos, 3)
	if move != nil {
		t.Errorf("returned move %v from a checkmated position", move)
	}
	if want := -(MateScore + 3); score != want {
		t.Errorf("score %d, want %d", score, want)
	}
}

func TestStalemateScoresZero(t *testing.T) {
	// Black is stalemated: king boxed in by the a7 pawn and b6 king.
	pos := positionFromFEN(t, "k7/P7/1K6/8/8/8/8/8 b - - 0 1")

	for _, depth := range []int{1, 3} {
		s := NewSearcher()
		score, move := s.Search(pos, depth)
		if score != 0 {
			t.Errorf("depth %d: stalemate scored %d, want 0", depth, score)
		}
		if move != nil {
			t.Errorf("depth %d: returned move %v from a stalemated position", depth, move)
		}
	}
}

func TestMovesTowardStalemateStillReturned(t *testing.T) {
	// Same material with White to move. Most continuations drift
	// toward the stalemate; the search must still pick a move and
	// report a draw-range score rather than fail.
	pos := positionFromFEN(t, "k7/P7/1K6/8/8/8/8/8 w - - 0 1")

	s := NewSearcher()
	score, move := s.Search(pos, 3)
	if move == nil {
		t.Fatal("no move returned for a live position")
	}
	if score >= MateScore || score <= -MateScore {
		t.Errorf("score %d outside the non-mate range", score)
	}
	t.Logf("chose %v with score %d", move, score)
}

func TestStartPositionDepthOne(t *testing.T) {
	pos := chess.NewGame().Position()
	valid := pos.ValidMoves()
	if len(valid) != 20 {
		t.Fatalf("starting position has %d moves, want 20", len(valid))
	}

	s := NewSearcher()
	score, move := s.Search(pos, 1)
	if move == nil {
		t.Fatal("no move returned")
	}

	found := false
	for _, mv := range valid {
		if mv.String() == move.String() {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("returned move %v is not one of the 20 legal moves", move)
	}

	// At depth 1 the score is the static evaluation after one White
	// ply, and the largest single-move swing is knight development.
	if score != 50 {
		t.Errorf("score %d, want 50", score)
	}
	if pt := pos.Board().Piece(move.S1()).Type(); pt != chess.Knight {
		t.Errorf("best opening move by %v, want a knight", pt)
	}
}
