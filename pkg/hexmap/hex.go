// pkg/hexmap/hex.go
package hexmap

import "fmt"

// Cube представляет гекс в кубических координатах (Q, R, S), Q+R+S == 0
type Cube struct {
	Q, R, S int
}

// NewCube builds a cube coordinate from its axial part, deriving S.
func NewCube(q, r int) Cube {
	return Cube{Q: q, R: r, S: -q - r}
}

// Valid reports whether the cube invariant holds.
func (c Cube) Valid() bool {
	return c.Q+c.R+c.S == 0
}

// ID возвращает ключ вида "q,r,s"
func (c Cube) ID() string {
	return fmt.Sprintf("%d,%d,%d", c.Q, c.R, c.S)
}

// OffsetToCube converts an odd-r offset position (col, row) to cube
// coordinates, shifted by (qOffset, rOffset) so the layout is centred on the
// origin. Rows share R; odd rows sit half a column to the right.
func OffsetToCube(col, row, qOffset, rOffset int) Cube {
	q := col - (row-(row&1))/2 - qOffset
	r := row - rOffset
	return NewCube(q, r)
}

// Cell is one generated hex. It is never mutated after BuildGrid returns.
type Cell struct {
	Q, R, S int
	ID      string
	Terrain Terrain
}

// NewCell derives the cell id from its coordinates.
func NewCell(c Cube, t Terrain) Cell {
	return Cell{Q: c.Q, R: c.R, S: c.S, ID: c.ID(), Terrain: t}
}

// Cube returns the cell position.
func (c Cell) Cube() Cube {
	return Cube{Q: c.Q, R: c.R, S: c.S}
}

// Coords formats the cell position the way the info panel shows it.
func (c Cell) Coords() string {
	return fmt.Sprintf("(%d, %d, %d)", c.Q, c.R, c.S)
}
