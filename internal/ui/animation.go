package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/notnil/chess"
)

// animationFrames is how many ticks a sliding piece takes to reach
// its destination square.
const animationFrames = 12

// MoveAnimation slides a piece sprite from one square to another
// while the board underneath already shows the position after the
// move. The destination square is hidden until the slide completes.
type MoveAnimation struct {
	piece  chess.Piece
	dest   chess.Square
	fromX  float64
	fromY  float64
	toX    float64
	toY    float64
	frame  int
	onDone func()
}

// NewMoveAnimation creates an animation for piece travelling between
// the two squares. onDone fires once when the slide finishes; it may
// be nil.
func NewMoveAnimation(r *Renderer, piece chess.Piece, from, to chess.Square, onDone func()) *MoveAnimation {
	fx, fy := r.SquareToScreen(from)
	tx, ty := r.SquareToScreen(to)
	return &MoveAnimation{
		piece:  piece,
		dest:   to,
		fromX:  float64(fx),
		fromY:  float64(fy),
		toX:    float64(tx),
		toY:    float64(ty),
		onDone: onDone,
	}
}

// Update advances the animation by one tick and returns true while it
// is still running.
func (a *MoveAnimation) Update() bool {
	a.frame++
	if a.frame >= animationFrames {
		if a.onDone != nil {
			a.onDone()
			a.onDone = nil
		}
		return false
	}
	return true
}

// HiddenSquare returns the square whose resting piece should not be
// drawn while the animation runs.
func (a *MoveAnimation) HiddenSquare() chess.Square {
	return a.dest
}

// Draw renders the piece at its interpolated position.
func (a *MoveAnimation) Draw(screen *ebiten.Image, sprites *SpriteManager) {
	t := float64(a.frame) / float64(animationFrames)
	x := a.fromX + (a.toX-a.fromX)*t
	y := a.fromY + (a.toY-a.fromY)*t
	sprites.DrawPieceAt(screen, a.piece, x, y)
}
