package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
)

// Color selection dialog dimensions
const (
	welcomeWidth  = 380
	welcomeHeight = 230
	welcomePad    = 28
)

// WelcomeScreen asks the player which side to play at the start of
// every game. W and B work as keyboard shortcuts.
type WelcomeScreen struct {
	x, y int

	whiteBtn *ModalButton
	blackBtn *ModalButton

	onChoose func(color chess.Color)
}

// NewWelcomeScreen creates the color selection dialog, centered over
// the board.
func NewWelcomeScreen(onChoose func(chess.Color)) *WelcomeScreen {
	ws := &WelcomeScreen{
		x:        (ScreenWidth - welcomeWidth) / 2,
		y:        (ScreenHeight - welcomeHeight) / 2,
		onChoose: onChoose,
	}

	btnW := (welcomeWidth - welcomePad*2 - 16) / 2
	btnY := ws.y + welcomeHeight - welcomePad - 44
	ws.whiteBtn = NewModalButton(ws.x+welcomePad, btnY, btnW, 44, "Play White", true, func() {
		ws.onChoose(chess.White)
	})
	ws.blackBtn = NewModalButton(ws.x+welcomePad+btnW+16, btnY, btnW, 44, "Play Black", false, func() {
		ws.onChoose(chess.Black)
	})
	return ws
}

// Update handles dialog input.
func (ws *WelcomeScreen) Update(input *InputHandler) {
	if IsKeyJustPressed(ebiten.KeyW) {
		ws.onChoose(chess.White)
		return
	}
	if IsKeyJustPressed(ebiten.KeyB) {
		ws.onChoose(chess.Black)
		return
	}
	ws.whiteBtn.Update(input)
	ws.blackBtn.Update(input)
}

// Draw renders the dialog.
func (ws *WelcomeScreen) Draw(screen *ebiten.Image) {
	drawModalBackdrop(screen)

	vector.DrawFilledRect(screen, float32(ws.x), float32(ws.y),
		welcomeWidth, welcomeHeight, panelBg, false)
	vector.StrokeRect(screen, float32(ws.x), float32(ws.y),
		welcomeWidth, welcomeHeight, 1, widgetBorder, false)

	cx := ws.x + welcomeWidth/2
	drawCenteredText(screen, "ChessBotAI", GetBoldFaceWithSize(22), cx, ws.y+welcomePad, textPrimary)
	drawCenteredText(screen, "Choose your side", GetRegularFace(), cx, ws.y+welcomePad+44, textSecondary)
	drawCenteredText(screen, "Press W or B, or click a button", GetRegularFace(), cx, ws.y+welcomePad+70,
		color.RGBA{120, 125, 135, 255})

	ws.whiteBtn.Draw(screen)
	ws.blackBtn.Draw(screen)
}
