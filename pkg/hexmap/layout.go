// pkg/hexmap/layout.go
package hexmap

import "math"

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059

// CubeToScreen converts cube (q, r) to pixel coordinates for pointy-top hexes.
func CubeToScreen(q, r int, centerX, centerY, hexSize float64) (x, y float64) {
	x = centerX + hexSize*Sqrt3*(float64(q)+float64(r)/2)
	y = centerY + hexSize*1.5*float64(r)
	return
}

// PointInHex is an approximate containment test: a box clipped by a diagonal.
// It is not pixel-exact near the corners; hit-testing relies on this exact
// formula, so do not replace it with polygon math.
func PointInHex(px, py, hexCenterX, hexCenterY, hexSize float64) bool {
	dx := math.Abs(px - hexCenterX)
	dy := math.Abs(py - hexCenterY)
	return dx < hexSize*0.75 && dy < hexSize && dx+dy*Sqrt3/2 < hexSize*Sqrt3
}

// Layout bundles the screen-space constants shared by the renderer and the
// hit-tester.
type Layout struct {
	CenterX float64
	CenterY float64
	HexSize float64
}

// ToScreen returns the pixel centre of a cell.
func (l Layout) ToScreen(c Cell) (x, y float64) {
	return CubeToScreen(c.Q, c.R, l.CenterX, l.CenterY, l.HexSize)
}

// Contains runs PointInHex against the cell's centre.
func (l Layout) Contains(c Cell, px, py float64) bool {
	x, y := l.ToScreen(c)
	return PointInHex(px, py, x, y, l.HexSize)
}

// HitTest walks cells in stored order and returns the index of the first one
// containing (px, py).
func (l Layout) HitTest(cells []Cell, px, py float64) (int, bool) {
	for i, c := range cells {
		if l.Contains(c, px, py) {
			return i, true
		}
	}
	return -1, false
}

// Corners returns the six vertices of a pointy-top hexagon centred at (x, y),
// starting at -30° and going clockwise in screen space.
func (l Layout) Corners(x, y float64) [6][2]float64 {
	var pts [6][2]float64
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) - math.Pi/6
		pts[i] = [2]float64{
			x + l.HexSize*math.Cos(angle),
			y + l.HexSize*math.Sin(angle),
		}
	}
	return pts
}
