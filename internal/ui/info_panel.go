// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"

	"hex-mockup/internal/config"
	"hex-mockup/internal/event"
	"hex-mockup/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelPadding = 20
	lineHeight   = 26
	buttonHeight = 44
)

// InfoPanel is the side panel with the turn counter, the current player and
// details of the selected hex. It mirrors game state through events.
type InfoPanel struct {
	Rect          image.Rectangle
	EndTurnButton *Button

	turn     int
	player   int
	hasHex   bool
	coords   string
	terrain  string
	font     font.Face
	titleFnt font.Face
}

// NewInfoPanel creates a panel occupying rect, showing initial until the
// first TurnEnded, and subscribes it to d.
func NewInfoPanel(rect image.Rectangle, face, titleFace font.Face, d *event.Dispatcher, initial event.TurnInfo) *InfoPanel {
	p := &InfoPanel{
		EndTurnButton: NewButton(image.Rectangle{}, "End Turn", face,
			config.ButtonColor, config.ButtonHoverColor, config.TextLightColor),
		turn:     initial.Turn,
		player:   initial.Player,
		font:     face,
		titleFnt: titleFace,
	}
	p.SetRect(rect)
	d.Subscribe(event.HexSelected, p)
	d.Subscribe(event.TurnEnded, p)
	return p
}

// SetRect moves the panel, e.g. after a window resize. The button stays
// pinned to the bottom.
func (p *InfoPanel) SetRect(rect image.Rectangle) {
	p.Rect = rect
	p.EndTurnButton.Rect = image.Rect(
		rect.Min.X+panelPadding,
		rect.Max.Y-panelPadding-buttonHeight,
		rect.Max.X-panelPadding,
		rect.Max.Y-panelPadding,
	)
}

// OnEvent обновляет отображаемые значения
func (p *InfoPanel) OnEvent(e event.Event) {
	switch e.Type {
	case event.HexSelected:
		if cell, ok := e.Data.(hexmap.Cell); ok {
			p.hasHex = true
			p.coords = cell.Coords()
			p.terrain = cell.Terrain.Title()
		}
	case event.TurnEnded:
		if info, ok := e.Data.(event.TurnInfo); ok {
			p.turn = info.Turn
			p.player = info.Player
		}
	}
}

// Contains reports whether a click lands on the panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.Rect)
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	r := p.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	vector.StrokeLine(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Min.X), float32(r.Max.Y), 2, config.PanelBorderColor, true)

	x := r.Min.X + panelPadding
	y := r.Min.Y + panelPadding + config.TitleFontSize
	text.Draw(screen, "Hex Grid 4X", p.titleFnt, x, y, config.TextLightColor)
	y += lineHeight * 2

	text.Draw(screen, fmt.Sprintf("Turn: %d", p.turn), p.font, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Current Player: %d", p.player), p.font, x, y, config.TextLightColor)
	y += lineHeight * 2

	text.Draw(screen, "Selected Hex", p.titleFnt, x, y, config.TextLightColor)
	y += lineHeight
	if !p.hasHex {
		text.Draw(screen, "Click a hex to inspect it", p.font, x, y, config.TextDimColor)
	} else {
		text.Draw(screen, "Coords: "+p.coords, p.font, x, y, config.TextLightColor)
		y += lineHeight
		text.Draw(screen, "Type: "+p.terrain, p.font, x, y, config.TextLightColor)
	}

	p.EndTurnButton.Draw(screen)
}
