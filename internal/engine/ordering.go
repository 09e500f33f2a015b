package engine

import (
	"sort"

	"github.com/notnil/chess"
)

// CaptureScore rates a capture using MVV-LVA (Most Valuable Victim,
// Least Valuable Attacker): 100 times the victim's base value minus
// the attacker's base value, so winning a queen with a pawn outranks
// winning a pawn with a queen. Non-captures score 0. The en passant
// destination square is empty, so the victim is taken to be a pawn.
func CaptureScore(pos *chess.Position, move *chess.Move) int {
	board := pos.Board()

	victimType := board.Piece(move.S2()).Type()
	if victimType == chess.NoPieceType {
		if !move.HasTag(chess.EnPassant) {
			return 0
		}
		victimType = chess.Pawn
	}
	attackerType := board.Piece(move.S1()).Type()
	return PieceValues[victimType]*100 - PieceValues[attackerType]
}

// OrderMoves returns the moves reordered for search: captures first,
// best capture score first, then quiet moves in their original order.
// The sort is stable so equal-scored moves keep the rules engine's
// enumeration order and the search stays deterministic. The input
// slice is not modified.
func OrderMoves(pos *chess.Position, moves []*chess.Move) []*chess.Move {
	ordered := make([]*chess.Move, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		ci := isCapture(pos, ordered[i])
		cj := isCapture(pos, ordered[j])
		if ci != cj {
			return ci
		}
		if !ci {
			return false
		}
		return CaptureScore(pos, ordered[i]) > CaptureScore(pos, ordered[j])
	})
	return ordered
}

func isCapture(pos *chess.Position, move *chess.Move) bool {
	return move.HasTag(chess.Capture) || move.HasTag(chess.EnPassant)
}
