package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/amiit04/ChessBotAI/internal/engine"
)

// Panel layout
const (
	panelPadding = 16
	buttonHeight = 34
)

// Panel colors
var (
	panelBg        = color.RGBA{38, 40, 45, 255}    // Dark background
	buttonBg       = color.RGBA{50, 54, 60, 255}    // Button background
	buttonHoverBg  = color.RGBA{65, 70, 78, 255}    // Button hover
	buttonActiveBg = color.RGBA{76, 132, 96, 255}   // Active button (green)
	textPrimary    = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary  = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted      = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor   = color.RGBA{60, 65, 72, 255}    // Divider line
	moveRowAlt     = color.RGBA{44, 48, 54, 255}    // Alternating row
	statusThinking = color.RGBA{100, 180, 255, 255} // Blue while searching
	statusGameOver = color.RGBA{255, 200, 80, 255}  // Yellow when finished
)

// Button is a clickable panel element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	active     bool
	hovered    bool
}

// Update handles button input.
func (b *Button) Update(input *InputHandler) {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)
	if b.hovered && input.IsLeftJustPressed() && b.OnClick != nil {
		b.OnClick()
	}
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := buttonBg
	if b.active {
		bg = buttonActiveBg
	} else if b.hovered {
		bg = buttonHoverBg
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, widgetBorder, false)

	face := GetRegularFace()
	if face == nil {
		return
	}
	w, h := MeasureText(b.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.X)+float64(b.W)/2-w/2, float64(b.Y)+float64(b.H)/2-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, b.Label, face, op)
}

// Panel is the side panel with game controls and the move list.
type Panel struct {
	game *Game
	x    int

	difficultyBtns []*Button
	newGameBtn     *Button
	undoBtn        *Button
	redoBtn        *Button
	hintsBtn       *Button

	moveListTop    int
	moveListBottom int
}

// NewPanel creates the side panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g, x: BoardSize}
	contentX := p.x + panelPadding
	contentW := PanelWidth - panelPadding*2

	// Difficulty selector
	diffY := 128
	diffW := (contentW - 12) / 3
	for i, d := range []engine.Difficulty{engine.Easy, engine.Medium, engine.Hard} {
		d := d
		p.difficultyBtns = append(p.difficultyBtns, &Button{
			X: contentX + i*(diffW+6), Y: diffY, W: diffW, H: buttonHeight,
			Label:   d.String(),
			OnClick: func() { g.setDifficulty(d) },
		})
	}

	// Game controls
	ctrlY := diffY + buttonHeight + 16
	halfW := (contentW - 8) / 2
	p.newGameBtn = &Button{
		X: contentX, Y: ctrlY, W: contentW, H: buttonHeight,
		Label:   "New Game",
		OnClick: g.requestNewGame,
	}
	p.undoBtn = &Button{
		X: contentX, Y: ctrlY + buttonHeight + 8, W: halfW, H: buttonHeight,
		Label:   "Undo",
		OnClick: g.undo,
	}
	p.redoBtn = &Button{
		X: contentX + halfW + 8, Y: ctrlY + buttonHeight + 8, W: halfW, H: buttonHeight,
		Label:   "Redo",
		OnClick: g.redo,
	}
	p.hintsBtn = &Button{
		X: contentX, Y: ctrlY + 2*(buttonHeight+8), W: contentW, H: buttonHeight,
		Label:   "Hints",
		OnClick: g.toggleHints,
	}

	p.moveListTop = ctrlY + 3*(buttonHeight+8) + 20
	p.moveListBottom = ScreenHeight - 56
	return p
}

// Update handles panel input.
func (p *Panel) Update(input *InputHandler) {
	for i, btn := range p.difficultyBtns {
		btn.active = engine.Difficulty(i) == p.game.difficulty
		btn.Update(input)
	}
	p.hintsBtn.active = p.game.showHints
	p.newGameBtn.Update(input)
	p.undoBtn.Update(input)
	p.redoBtn.Update(input)
	p.hintsBtn.Update(input)
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(p.x), 0, PanelWidth, ScreenHeight, panelBg, false)

	contentX := p.x + panelPadding
	contentW := PanelWidth - panelPadding*2

	p.drawText(screen, "ChessBotAI", GetBoldFace(), contentX, 18, textPrimary)

	// Status and evaluation
	status, statusColor := p.game.statusLine()
	p.drawText(screen, status, GetRegularFace(), contentX, 52, statusColor)
	p.drawText(screen, p.game.evalLine(), GetRegularFace(), contentX, 74, textSecondary)

	p.drawText(screen, "Difficulty", GetRegularFace(), contentX, 106, textMuted)
	for _, btn := range p.difficultyBtns {
		btn.Draw(screen)
	}
	p.newGameBtn.Draw(screen)
	p.undoBtn.Draw(screen)
	p.redoBtn.Draw(screen)
	p.hintsBtn.Draw(screen)

	vector.DrawFilledRect(screen, float32(contentX), float32(p.moveListTop-10),
		float32(contentW), 1, dividerColor, false)
	p.drawMoveList(screen, contentX, contentW)

	vector.DrawFilledRect(screen, float32(contentX), float32(p.moveListBottom+6),
		float32(contentW), 1, dividerColor, false)
	p.drawText(screen, p.game.statsLine(), GetRegularFace(), contentX, p.moveListBottom+16, textMuted)
}

// drawMoveList shows the most recent full moves that fit in the list
// area, in SAN with move numbers.
func (p *Panel) drawMoveList(screen *ebiten.Image, x, w int) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	san := p.game.sanHistory()
	rowH := 22
	maxRows := (p.moveListBottom - p.moveListTop) / rowH

	totalRows := (len(san) + 1) / 2
	firstRow := 0
	if totalRows > maxRows {
		firstRow = totalRows - maxRows
	}

	for row := firstRow; row < totalRows; row++ {
		y := p.moveListTop + (row-firstRow)*rowH
		if (row-firstRow)%2 == 1 {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(rowH), moveRowAlt, false)
		}

		line := fmt.Sprintf("%d. %s", row+1, san[row*2])
		if row*2+1 < len(san) {
			line += "  " + san[row*2+1]
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+6), float64(y+3))
		op.ColorScale.ScaleWithColor(textSecondary)
		text.Draw(screen, line, face, op)
	}
}

func (p *Panel) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, c color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
