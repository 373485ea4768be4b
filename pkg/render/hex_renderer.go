package render

import (
	"image/color"

	"hex-mockup/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Selection tells the renderer which cell to outline.
type Selection interface {
	IsSelected(i int) bool
}

type HexRenderer struct {
	grid      *hexmap.Grid
	layout    hexmap.Layout
	colors    MapColors
	fillImg   *ebiten.Image
	strokeImg *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
	mapImage  *ebiten.Image // предрендеренные заливки и тонкие обводки
}

func NewHexRenderer(grid *hexmap.Grid, layout hexmap.Layout, colors MapColors, width, height int) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	r := &HexRenderer{
		grid:      grid,
		layout:    layout,
		colors:    colors,
		fillImg:   fillImg,
		strokeImg: strokeImg,
		fillVs:    make([]ebiten.Vertex, 0, 18),
		fillIs:    make([]uint16, 0, 18),
		strokeVs:  make([]ebiten.Vertex, 0, 36),
		strokeIs:  make([]uint16, 0, 36),
		mapImage:  ebiten.NewImage(width, height),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage draws the static part of the map once. Terrain never changes
// after generation, so only the selection outline is drawn per frame.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Clear()
	for _, cell := range r.grid.Cells {
		path := r.hexPath(cell)
		r.fillPath(r.mapImage, path, r.terrainFill(cell.Terrain))
		r.strokePath(r.mapImage, path, r.colors.OutlineColor, r.colors.StrokeWidth)
	}
}

// Resize reallocates the cached map image when the canvas size changes.
func (r *HexRenderer) Resize(width, height int) {
	b := r.mapImage.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	r.mapImage.Deallocate()
	r.mapImage = ebiten.NewImage(width, height)
	r.RenderMapImage()
}

// Draw blits the cached map and outlines the selected cell on top.
func (r *HexRenderer) Draw(screen *ebiten.Image, sel Selection) {
	screen.DrawImage(r.mapImage, nil)
	for i, cell := range r.grid.Cells {
		if sel.IsSelected(i) {
			r.strokePath(screen, r.hexPath(cell), r.colors.SelectedColor, r.colors.SelectStrokeWidth)
		}
	}
}

func (r *HexRenderer) hexPath(cell hexmap.Cell) *vector.Path {
	x, y := r.layout.ToScreen(cell)
	path := &vector.Path{}
	for i, p := range r.layout.Corners(x, y) {
		if i == 0 {
			path.MoveTo(float32(p[0]), float32(p[1]))
		} else {
			path.LineTo(float32(p[0]), float32(p[1]))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) terrainFill(t hexmap.Terrain) color.RGBA {
	if int(t) < len(r.colors.Terrain) {
		return r.colors.Terrain[t]
	}
	return r.colors.UnknownColor
}

func (r *HexRenderer) fillPath(target *ebiten.Image, path *vector.Path, clr color.RGBA) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	alpha := r.colors.FillAlpha
	for i := range r.fillVs {
		// вершины в premultiplied alpha
		r.fillVs[i].ColorR = float32(clr.R) / 255 * alpha
		r.fillVs[i].ColorG = float32(clr.G) / 255 * alpha
		r.fillVs[i].ColorB = float32(clr.B) / 255 * alpha
		r.fillVs[i].ColorA = alpha
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) strokePath(target *ebiten.Image, path *vector.Path, clr color.RGBA, width float32) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(clr.R) / 255
		r.strokeVs[i].ColorG = float32(clr.G) / 255
		r.strokeVs[i].ColorB = float32(clr.B) / 255
		r.strokeVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
