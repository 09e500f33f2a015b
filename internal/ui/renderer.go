package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},  // Soft yellow-green
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// Renderer handles all board drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool // true when Black is at the bottom
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// SetFlipped orients the board with Black at the bottom.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// SquareToScreen converts a board square to the pixel coordinates of
// its top-left corner.
func (r *Renderer) SquareToScreen(sq chess.Square) (int, int) {
	file := int(sq) % 8
	rank := int(sq) / 8
	if r.flipped {
		return (7 - file) * r.squareSize, rank * r.squareSize
	}
	return file * r.squareSize, (7 - rank) * r.squareSize
}

// ScreenToSquare converts pixel coordinates to a board square, or
// chess.NoSquare when outside the board.
func (r *Renderer) ScreenToSquare(x, y int) chess.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return chess.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - y/r.squareSize
	if r.flipped {
		file = 7 - file
		rank = 7 - rank
	}
	return chess.Square(rank*8 + file)
}

// DrawBoard draws the board squares and coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x, y := r.SquareToScreen(chess.Square(rank*8 + file))

			c := r.theme.LightSquare
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters along the bottom edge and rank
// numbers along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(11)
	if face == nil {
		return
	}

	for i := 0; i < 8; i++ {
		fileLabel := string(rune('a' + i))
		rankLabel := fmt.Sprintf("%d", i+1)
		if r.flipped {
			fileLabel = string(rune('h' - i))
			rankLabel = fmt.Sprintf("%d", 8-i)
		}

		// Label color alternates against the square underneath.
		fileColor := r.theme.LightSquare
		rankColor := r.theme.DarkSquare
		if i%2 == 1 {
			fileColor = r.theme.DarkSquare
			rankColor = r.theme.LightSquare
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(i*r.squareSize+4), float64(r.boardSize-16))
		op.ColorScale.ScaleWithColor(fileColor)
		text.Draw(screen, fileLabel, face, op)

		op = &text.DrawOptions{}
		op.GeoM.Translate(2, float64((7-i)*r.squareSize+2))
		op.ColorScale.ScaleWithColor(rankColor)
		text.Draw(screen, rankLabel, face, op)
	}
}

// DrawHighlights draws the last move, the current selection, and the
// legal destinations of the selected piece.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected chess.Square, targets []*chess.Move, lastMove *chess.Move) {
	if lastMove != nil {
		r.highlightSquare(screen, lastMove.S1(), r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.S2(), r.theme.LastMoveColor)
	}

	if selected != chess.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, mv := range targets {
		r.drawLegalMoveIndicator(screen, mv.S2())
	}
}

// DrawCheck highlights the checked king's square.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq chess.Square) {
	if kingSq != chess.NoSquare {
		r.highlightSquare(screen, kingSq, r.theme.CheckColor)
	}
}

func (r *Renderer) highlightSquare(screen *ebiten.Image, sq chess.Square, c color.RGBA) {
	if sq == chess.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(r.squareSize), float32(r.squareSize), c, false)
}

func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq chess.Square) {
	x, y := r.SquareToScreen(sq)
	cx := float32(x) + float32(r.squareSize)/2
	cy := float32(y) + float32(r.squareSize)/2
	radius := float32(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
}

// DrawPieces draws all pieces on the board. A square listed in hidden
// is skipped; the animation draws that piece in flight.
func (r *Renderer) DrawPieces(screen *ebiten.Image, board *chess.Board, hidden chess.Square) {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if sq == hidden {
			continue
		}
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, piece, float64(x), float64(y))
	}
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
