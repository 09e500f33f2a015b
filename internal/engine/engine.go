package engine

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// Difficulty represents the bot difficulty level.
type Difficulty int

// Difficulty levels, in increasing search depth.
const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyDepths maps difficulty to a fixed search depth.
var DifficultyDepths = map[Difficulty]int{
	Easy:   2,
	Medium: 3,
	Hard:   4,
}

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

var (
	// ErrInvalidDepth reports a search depth below 1.
	ErrInvalidDepth = errors.New("engine: search depth must be at least 1")

	// ErrGameOver reports a move request on a finished position.
	ErrGameOver = errors.New("engine: position is already terminal")

	// ErrNoMove reports that the search produced no move even though
	// the rules engine says the game is not over. This cannot happen
	// on a legal position and indicates a bug rather than a game
	// state.
	ErrNoMove = errors.New("engine: no move found for a live position")
)

// Engine selects moves for a position at a fixed search depth. It is
// stateless between calls apart from the node counter, so one Engine
// can serve any number of games sequentially.
type Engine struct {
	searcher *Searcher
	depth    int
}

// New creates an engine searching to the given depth. Depths below 1
// are rejected: depth 0 evaluates without producing a move and
// negative depths are meaningless.
func New(depth int) (*Engine, error) {
	if depth < 1 {
		return nil, ErrInvalidDepth
	}
	return &Engine{searcher: NewSearcher(), depth: depth}, nil
}

// NewWithDifficulty creates an engine at the preset depth for the
// given difficulty.
func NewWithDifficulty(d Difficulty) *Engine {
	depth, ok := DifficultyDepths[d]
	if !ok {
		depth = DifficultyDepths[Medium]
	}
	e, _ := New(depth)
	return e
}

// Depth returns the configured search depth.
func (e *Engine) Depth() int {
	return e.depth
}

// SetDepth changes the search depth for subsequent searches.
func (e *Engine) SetDepth(depth int) error {
	if depth < 1 {
		return ErrInvalidDepth
	}
	e.depth = depth
	return nil
}

// Nodes returns the number of nodes visited by the last search.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}

// BestMove returns the best move for the side to move in pos together
// with the search score in centipawns (White-positive). The search is
// synchronous and runs to the configured depth with no timeout.
// A terminal position returns ErrGameOver; a live position for which
// the search yields no move returns ErrNoMove.
func (e *Engine) BestMove(pos *chess.Position) (*chess.Move, int, error) {
	if pos.Status() != chess.NoMethod {
		return nil, 0, ErrGameOver
	}
	score, move := e.searcher.Search(pos, e.depth)
	if move == nil {
		return nil, 0, ErrNoMove
	}
	return move, score, nil
}

// Evaluate returns the static evaluation of a position.
func (e *Engine) Evaluate(pos *chess.Position) int {
	return Evaluate(pos)
}

// ScoreToString converts a White-positive centipawn score from a
// search of the given depth to a human-readable string such as
// "+0.50" or "White mates in 2".
func ScoreToString(score, depth int) string {
	if score >= MateScore {
		return fmt.Sprintf("White mates in %d", MateIn(score, depth))
	}
	if score <= -MateScore {
		return fmt.Sprintf("Black mates in %d", MateIn(score, depth))
	}
	return fmt.Sprintf("%+.2f", float64(score)/100)
}

// MateIn recovers the distance to mate in full moves from a mate
// score. The searcher adds the remaining depth to MateScore, so the
// distance in plies is the search depth minus that remainder.
func MateIn(score, depth int) int {
	if score < 0 {
		score = -score
	}
	plies := depth - (score - MateScore)
	if plies < 1 {
		plies = 1
	}
	return (plies + 1) / 2
}
