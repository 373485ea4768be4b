// pkg/hexmap/grid.go
package hexmap

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be non-negative")
	ErrNilRandomSource   = errors.New("random source is nil")
)

// RandomSource supplies uniform draws in [0, 1). *rand.Rand and
// utils.PRNGService both satisfy it.
type RandomSource interface {
	Float64() float64
}

// Grid is the ordered, create-once list of cells on a rectangular offset
// layout. Cells are stored row-major.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell

	index map[string]int
}

// BuildGrid enumerates width*height cells row by row, converts each to cube
// coordinates centred on the origin and draws one terrain per cell from rng.
func BuildGrid(width, height int, rng RandomSource) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("build grid %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if rng == nil {
		return nil, ErrNilRandomSource
	}

	qOffset := width / 2
	rOffset := height / 2

	cells := make([]Cell, 0, width*height)
	index := make(map[string]int, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cube := OffsetToCube(col, row, qOffset, rOffset)
			cell := NewCell(cube, TerrainFor(rng.Float64()))
			index[cell.ID] = len(cells)
			cells = append(cells, cell)
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
		index:  index,
	}, nil
}

// MustBuildGrid is BuildGrid for startup code; it panics on bad dimensions.
func MustBuildGrid(width, height int, rng RandomSource) *Grid {
	g, err := BuildGrid(width, height, rng)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// Cell returns the i-th cell in stored order.
func (g *Grid) Cell(i int) Cell {
	return g.Cells[i]
}

// Index looks up a cell position by its "q,r,s" id.
func (g *Grid) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// TerrainCounts returns how many cells carry each terrain.
func (g *Grid) TerrainCounts() map[Terrain]int {
	counts := make(map[Terrain]int, len(Terrains))
	for _, c := range g.Cells {
		counts[c.Terrain]++
	}
	return counts
}
