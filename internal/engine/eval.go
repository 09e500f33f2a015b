package engine

import "github.com/notnil/chess"

// PieceValues holds the base material value of each piece kind in
// centipawns. The king carries a sentinel value; both kings are always
// present in a legal position, so the two terms cancel and never
// distort the material balance.
var PieceValues = map[chess.PieceType]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// Piece-square tables, one per piece kind, in centipawns. Index 0 is
// a1 and 63 is h8. White pieces index a table by their square
// directly; Black pieces use the vertically mirrored square, keeping
// the tables symmetric between the two sides.
var pieceSquareTables = map[chess.PieceType]*[64]int{
	chess.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
	chess.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	chess.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	chess.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	chess.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 17, 17, 15, 5, -30,
		-30, 0, 15, 17, 17, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-20, -20, 0, 5, 5, 0, -20, -20,
		-30, -5, 0, -10, -10, 0, -5, -30,
	},
	chess.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 20, 20, 20, 20, 0, 0,
		5, -5, -10, 20, 20, -10, -5, 5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
}

// squareValue returns the positional score of a piece kind standing on
// the given square for the given color.
func squareValue(pt chess.PieceType, sq chess.Square, color chess.Color) int {
	idx := int(sq)
	if color == chess.Black {
		idx ^= 56 // mirror vertically
	}
	return pieceSquareTables[pt][idx]
}

// Evaluate returns the static score of a position in centipawns,
// positive when White is better. The score is the sum of material and
// piece-square terms over every piece on the board. It reads the
// position only and never mutates it, so repeated calls on the same
// position always return the same score.
func Evaluate(pos *chess.Position) int {
	board := pos.Board()
	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		v := PieceValues[piece.Type()] + squareValue(piece.Type(), sq, piece.Color())
		if piece.Color() == chess.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
