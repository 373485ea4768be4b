// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1500
	ScreenHeight = 700
	PanelWidth   = 300 // правая панель, канва = ScreenWidth - PanelWidth

	HexSize    = 32.0
	GridWidth  = 10
	GridHeight = 8
	CenterX    = 600.0
	CenterY    = 300.0

	FillAlpha         = 0.8
	StrokeWidth       = 1.0
	SelectStrokeWidth = 3.0

	FontSize      = 16
	TitleFontSize = 20
)

var (
	BackgroundColor  = color.RGBA{10, 10, 10, 255}
	OutlineColor     = color.RGBA{0x33, 0x33, 0x33, 255}
	SelectedColor    = color.RGBA{0xff, 0xb3, 0x47, 255}
	UnknownColor     = color.RGBA{0x66, 0x66, 0x66, 255}
	PanelColor       = color.RGBA{25, 35, 45, 240}
	PanelBorderColor = color.RGBA{70, 130, 180, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 255}
	ButtonHoverColor = color.RGBA{95, 155, 205, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{150, 160, 170, 255}

	// TerrainColors by terrain name; overridable from the config file.
	TerrainColors = map[string]string{
		"water":    "#4a90e2",
		"grass":    "#2ecc71",
		"forest":   "#27ae60",
		"mountain": "#95a5a6",
	}
)
