package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors shared by the panel and modals.
var (
	widgetBorder = color.RGBA{68, 72, 78, 255}
	accentColor  = color.RGBA{76, 175, 120, 255}
	accentHover  = color.RGBA{96, 195, 140, 255}
)

// ModalButton is a clickable button used in modal overlays.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// Update handles modal button input and returns true when clicked.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	mb.hovered = mx >= mb.X && mx < mb.X+mb.W && my >= mb.Y && my < mb.Y+mb.H
	mb.pressed = mb.hovered && input.IsLeftJustPressed()

	if mb.pressed && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the modal button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	bgColor := buttonBg
	borderC := widgetBorder
	if mb.Primary {
		bgColor = accentColor
		borderC = accentHover
	}
	if mb.hovered {
		if mb.Primary {
			bgColor = accentHover
		} else {
			bgColor = buttonHoverBg
			borderC = accentColor
		}
	}

	vector.DrawFilledRect(screen, float32(mb.X), float32(mb.Y), float32(mb.W), float32(mb.H), bgColor, false)
	vector.StrokeRect(screen, float32(mb.X), float32(mb.Y), float32(mb.W), float32(mb.H), 1, borderC, false)

	w, h := MeasureText(mb.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(mb.X)+float64(mb.W)/2-w/2, float64(mb.Y)+float64(mb.H)/2-h/2)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, mb.Label, face, op)
}

// drawModalBackdrop dims the whole screen behind a modal.
func drawModalBackdrop(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h),
		color.RGBA{0, 0, 0, 140}, false)
}

// drawCenteredText draws s centered horizontally around cx at y.
func drawCenteredText(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y int, c color.Color) {
	if face == nil {
		return
	}
	w, _ := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx)-w/2, float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
