package engine

import "github.com/notnil/chess"

const (
	// Infinity is the search window bound. No reachable score,
	// including mate scores, ever touches it.
	Infinity = 30000

	// MateScore is the base score for a forced mate. The remaining
	// search depth is added on top so that a mate found nearer the
	// root outweighs a mate found deeper in the tree.
	MateScore = 29000
)

// Searcher runs a fixed-depth minimax search with alpha-beta pruning
// over positions supplied by the rules engine. It keeps no state
// between searches other than a node counter, and a single search
// runs synchronously on the calling goroutine.
type Searcher struct {
	nodes uint64
}

// NewSearcher creates a searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Nodes returns the number of nodes visited by the last search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Reset clears the node counter.
func (s *Searcher) Reset() {
	s.nodes = 0
}

// Search runs a full-window search of the given depth from pos and
// returns the score in centipawns (White-positive) together with the
// best move found at the root. The move is nil when the position is
// already terminal or when depth is 0.
func (s *Searcher) Search(pos *chess.Position, depth int) (int, *chess.Move) {
	s.Reset()
	maximizing := pos.Turn() == chess.White
	return s.minimax(pos, depth, -Infinity, Infinity, maximizing)
}

// minimax evaluates pos to the given remaining depth inside the
// (alpha, beta) window. Each node is one of four states, checked in
// order: terminal, depth exhausted, or an internal max/min node.
// Child positions are immutable snapshots derived with Update, so no
// undo step exists and an early cutoff cannot corrupt the caller's
// position.
func (s *Searcher) minimax(pos *chess.Position, depth, alpha, beta int, maximizing bool) (int, *chess.Move) {
	s.nodes++

	switch pos.Status() {
	case chess.Checkmate:
		// The side to move has been mated.
		if maximizing {
			return -(MateScore + depth), nil
		}
		return MateScore + depth, nil
	case chess.Stalemate:
		return 0, nil
	}

	if depth == 0 {
		return Evaluate(pos), nil
	}

	moves := OrderMoves(pos, pos.ValidMoves())
	var bestMove *chess.Move

	if maximizing {
		best := -Infinity
		for _, mv := range moves {
			val, _ := s.minimax(pos.Update(mv), depth-1, alpha, beta, false)
			if val > best {
				best = val
				bestMove = mv
			}
			if val > alpha {
				alpha = val
			}
			if beta <= alpha {
				break
			}
		}
		return best, bestMove
	}

	best := Infinity
	for _, mv := range moves {
		val, _ := s.minimax(pos.Update(mv), depth-1, alpha, beta, true)
		if val < best {
			best = val
			bestMove = mv
		}
		if val < beta {
			beta = val
		}
		if beta <= alpha {
			break
		}
	}
	return best, bestMove
}
