package engine

import (
	"strings"
	"testing"
	"unicode"

	"github.com/notnil/chess"
)

func positionFromFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("bad FEN %q: %v", fen, err)
	}
	return chess.NewGame(opt).Position()
}

// mirrorFEN flips a position vertically and swaps the colors, so the
// evaluation of the result must be the exact negation of the original.
// Castling rights and en passant squares are not carried over; test
// positions use FENs without them.
func mirrorFEN(t *testing.T, fen string) string {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		t.Fatalf("bad FEN %q", fen)
	}

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	var sb strings.Builder
	for i, rank := range ranks {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, r := range rank {
			if unicode.IsUpper(r) {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
		}
	}

	turn := "w"
	if fields[1] == "w" {
		turn = "b"
	}
	return sb.String() + " " + turn + " - - " + fields[4] + " " + fields[5]
}

func TestStartingPositionIsBalanced(t *testing.T) {
	pos := chess.NewGame().Position()
	if score := Evaluate(pos); score != 0 {
		t.Errorf("starting position evaluates to %d, want 0", score)
	}
}

func TestEvaluateMirrorNegation(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"4k3/8/8/3Q4/8/8/8/4K3 w - - 0 1",
		"r3k3/1pp2ppp/8/3Pp3/2B5/5N2/PP3PPP/4K2R w - - 0 15",
		"8/5pk1/6p1/8/3N4/8/5PPP/6K1 b - - 3 40",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos := positionFromFEN(t, fen)
			mirrored := positionFromFEN(t, mirrorFEN(t, fen))

			got, want := Evaluate(mirrored), -Evaluate(pos)
			if got != want {
				t.Errorf("mirrored position evaluates to %d, want %d", got, want)
			}
		})
	}
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	// Starting position with the black queen removed. White gains the
	// queen's base value plus its d8 square bonus.
	pos := positionFromFEN(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	if score := Evaluate(pos); score != 895 {
		t.Errorf("queen-up position evaluates to %d, want 895", score)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	pos := positionFromFEN(t, "r3k3/1pp2ppp/8/3Pp3/2B5/5N2/PP3PPP/4K2R w - - 0 15")
	first := Evaluate(pos)
	for i := 0; i < 5; i++ {
		if score := Evaluate(pos); score != first {
			t.Fatalf("call %d returned %d, first call returned %d", i+2, score, first)
		}
	}
}

func TestSquareValueMirrorsForBlack(t *testing.T) {
	for pt := range pieceSquareTables {
		for sq := chess.A1; sq <= chess.H8; sq++ {
			white := squareValue(pt, sq, chess.White)
			black := squareValue(pt, chess.Square(int(sq)^56), chess.Black)
			if white != black {
				t.Fatalf("%v on %v: white %d != mirrored black %d", pt, sq, white, black)
			}
		}
	}
}
