package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
)

// promotionChoices lists the pieces a pawn may become, in display
// order, with their keyboard shortcuts.
var promotionChoices = []struct {
	pieceType chess.PieceType
	key       ebiten.Key
}{
	{chess.Queen, ebiten.KeyQ},
	{chess.Rook, ebiten.KeyR},
	{chess.Bishop, ebiten.KeyB},
	{chess.Knight, ebiten.KeyN},
}

// PromotionDialog lets the player pick the promotion piece for a
// pending pawn move. Clicking outside the dialog cancels the move.
type PromotionDialog struct {
	color    chess.Color
	x, y     int
	cellSize int

	onChoose func(chess.PieceType)
	onCancel func()
}

// NewPromotionDialog creates a promotion dialog for the given pawn
// color, centered over the board.
func NewPromotionDialog(color chess.Color, onChoose func(chess.PieceType), onCancel func()) *PromotionDialog {
	cell := SquareSize + 16
	return &PromotionDialog{
		color:    color,
		cellSize: cell,
		x:        (BoardSize - cell*len(promotionChoices)) / 2,
		y:        (ScreenHeight - cell) / 2,
		onChoose: onChoose,
		onCancel: onCancel,
	}
}

// Update handles dialog input.
func (pd *PromotionDialog) Update(input *InputHandler) {
	for _, choice := range promotionChoices {
		if IsKeyJustPressed(choice.key) {
			pd.onChoose(choice.pieceType)
			return
		}
	}
	if IsKeyJustPressed(ebiten.KeyEscape) {
		pd.onCancel()
		return
	}

	if !input.IsLeftJustPressed() {
		return
	}
	width := pd.cellSize * len(promotionChoices)
	if !input.IsInBounds(pd.x, pd.y, width, pd.cellSize) {
		pd.onCancel()
		return
	}
	mx, _ := input.MousePosition()
	idx := (mx - pd.x) / pd.cellSize
	if idx >= 0 && idx < len(promotionChoices) {
		pd.onChoose(promotionChoices[idx].pieceType)
	}
}

// Draw renders the dialog.
func (pd *PromotionDialog) Draw(screen *ebiten.Image, sprites *SpriteManager) {
	drawModalBackdrop(screen)

	width := pd.cellSize * len(promotionChoices)
	vector.DrawFilledRect(screen, float32(pd.x-8), float32(pd.y-36),
		float32(width+16), float32(pd.cellSize+48), panelBg, false)
	vector.StrokeRect(screen, float32(pd.x-8), float32(pd.y-36),
		float32(width+16), float32(pd.cellSize+48), 1, widgetBorder, false)

	drawCenteredText(screen, "Promote to (Q/R/B/N, Esc cancels)", GetRegularFace(),
		pd.x+width/2, pd.y-30, textSecondary)

	for i, choice := range promotionChoices {
		cellX := pd.x + i*pd.cellSize
		vector.DrawFilledRect(screen, float32(cellX+2), float32(pd.y+2),
			float32(pd.cellSize-4), float32(pd.cellSize-4), buttonBg, false)

		piece := pieceOf(choice.pieceType, pd.color)
		offset := float64(pd.cellSize-SquareSize) / 2
		sprites.DrawPieceAt(screen, piece, float64(cellX)+offset, float64(pd.y)+offset)
	}
}

// pieceOf pairs a piece type with a color.
func pieceOf(pt chess.PieceType, c chess.Color) chess.Piece {
	white := map[chess.PieceType]chess.Piece{
		chess.Queen:  chess.WhiteQueen,
		chess.Rook:   chess.WhiteRook,
		chess.Bishop: chess.WhiteBishop,
		chess.Knight: chess.WhiteKnight,
	}
	black := map[chess.PieceType]chess.Piece{
		chess.Queen:  chess.BlackQueen,
		chess.Rook:   chess.BlackRook,
		chess.Bishop: chess.BlackBishop,
		chess.Knight: chess.BlackKnight,
	}
	if c == chess.White {
		return white[pt]
	}
	return black[pt]
}
