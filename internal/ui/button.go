// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Text          string
	BgColor       color.RGBA
	HoverColor    color.RGBA
	TextColor     color.RGBA
	LastClickTime time.Time

	face font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face, bg, hover, fg color.RGBA) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		BgColor:    bg,
		HoverColor: hover,
		TextColor:  fg,
		face:       face,
	}
}

// Contains проверяет, попадает ли точка в кнопку
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Press records the click for the press animation.
func (b *Button) Press() {
	b.LastClickTime = time.Now()
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}

	// короткое "нажатие" после клика, как у индикатора
	elapsed := time.Since(b.LastClickTime).Seconds()
	inset := float32(3 * math.Exp(-elapsed*8))

	x := float32(b.Rect.Min.X) + inset
	y := float32(b.Rect.Min.Y) + inset
	w := float32(b.Rect.Dx()) - 2*inset
	h := float32(b.Rect.Dy()) - 2*inset
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.White, true)

	bounds := text.BoundString(b.face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.face, textX, textY, b.TextColor)
}
