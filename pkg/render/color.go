// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the map.
type MapColors struct {
	Terrain           []color.RGBA // индекс — hexmap.Terrain
	UnknownColor      color.RGBA
	OutlineColor      color.RGBA
	SelectedColor     color.RGBA
	FillAlpha         float32
	StrokeWidth       float32
	SelectStrokeWidth float32
}
