package engine

import (
	"testing"

	"github.com/notnil/chess"
)

func TestOrderMovesCapturesFirst(t *testing.T) {
	// White can capture the c5 queen with the b4 pawn or the h5 pawn
	// with the queen, and has plenty of quiet moves besides.
	pos := positionFromFEN(t, "k7/8/8/2q4p/1P5Q/8/8/K7 w - - 0 1")
	ordered := OrderMoves(pos, pos.ValidMoves())

	seenQuiet := false
	for _, mv := range ordered {
		if isCapture(pos, mv) {
			if seenQuiet {
				t.Fatalf("capture %v ordered after a quiet move", mv)
			}
		} else {
			seenQuiet = true
		}
	}
}

func TestOrderMovesMVVLVA(t *testing.T) {
	pos := positionFromFEN(t, "k7/8/8/2q4p/1P5Q/8/8/K7 w - - 0 1")

	var pawnTakesQueen, queenTakesPawn *chess.Move
	for _, mv := range pos.ValidMoves() {
		switch {
		case mv.S1() == chess.B4 && mv.S2() == chess.C5:
			pawnTakesQueen = mv
		case mv.S1() == chess.H4 && mv.S2() == chess.H5:
			queenTakesPawn = mv
		}
	}
	if pawnTakesQueen == nil || queenTakesPawn == nil {
		t.Fatal("expected captures not generated")
	}

	if got, want := CaptureScore(pos, pawnTakesQueen), 900*100-100; got != want {
		t.Errorf("pawn takes queen scores %d, want %d", got, want)
	}
	if got, want := CaptureScore(pos, queenTakesPawn), 100*100-900; got != want {
		t.Errorf("queen takes pawn scores %d, want %d", got, want)
	}

	ordered := OrderMoves(pos, pos.ValidMoves())
	if ordered[0].S1() != chess.B4 || ordered[0].S2() != chess.C5 {
		t.Errorf("first ordered move is %v, want pawn takes queen b4c5", ordered[0])
	}
}

func TestOrderMovesKeepsQuietOrder(t *testing.T) {
	// No captures exist in the starting position, so ordering must be
	// the identity permutation.
	pos := chess.NewGame().Position()
	moves := pos.ValidMoves()
	ordered := OrderMoves(pos, moves)

	if len(ordered) != len(moves) {
		t.Fatalf("got %d moves, want %d", len(ordered), len(moves))
	}
	for i := range moves {
		if ordered[i] != moves[i] {
			t.Errorf("move %d reordered: got %v, want %v", i, ordered[i], moves[i])
		}
	}
}

func TestCaptureScoreEnPassant(t *testing.T) {
	// White can capture the d5 pawn en passant with the e5 pawn.
	pos := positionFromFEN(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")

	var enPassant *chess.Move
	for _, mv := range pos.ValidMoves() {
		if mv.S1() == chess.E5 && mv.S2() == chess.D6 {
			enPassant = mv
		}
	}
	if enPassant == nil {
		t.Fatal("en passant capture not generated")
	}
	if !isCapture(pos, enPassant) {
		t.Error("en passant move not recognized as a capture")
	}
	if got, want := CaptureScore(pos, enPassant), 100*100-100; got != want {
		t.Errorf("en passant scores %d, want pawn-takes-pawn %d", got, want)
	}
}

func TestOrderMovesDoesNotModifyInput(t *testing.T) {
	pos := positionFromFEN(t, "k7/8/8/2q4p/1P5Q/8/8/K7 w - - 0 1")
	moves := pos.ValidMoves()
	before := make([]*chess.Move, len(moves))
	copy(before, moves)

	OrderMoves(pos, moves)

	for i := range moves {
		if moves[i] != before[i] {
			t.Fatalf("input slice modified at index %d", i)
		}
	}
}
