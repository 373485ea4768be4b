package hexmap

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// sequenceSource replays fixed draws, wrapping around.
type sequenceSource struct {
	draws []float64
	i     int
}

func (s *sequenceSource) Float64() float64 {
	v := s.draws[s.i%len(s.draws)]
	s.i++
	return v
}

func TestBuildGridCubeInvariant(t *testing.T) {
	for _, dims := range [][2]int{{10, 8}, {1, 1}, {7, 3}, {3, 7}, {0, 5}} {
		g, err := BuildGrid(dims[0], dims[1], rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("BuildGrid(%d, %d): %v", dims[0], dims[1], err)
		}
		for _, c := range g.Cells {
			if c.Q+c.R+c.S != 0 {
				t.Fatalf("cell %s breaks q+r+s=0", c.ID)
			}
		}
	}
}

func TestBuildGridSizeAndUniqueIDs(t *testing.T) {
	g := MustBuildGrid(10, 8, rand.New(rand.NewSource(7)))
	if g.Len() != 80 {
		t.Fatalf("got %d cells, want 80", g.Len())
	}
	seen := make(map[string]bool, g.Len())
	for i, c := range g.Cells {
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
		if c.ID != c.Cube().ID() {
			t.Errorf("cell %d id %q does not match coords %v", i, c.ID, c.Cube())
		}
		if j, ok := g.Index(c.ID); !ok || j != i {
			t.Errorf("Index(%q) = %d, %v; want %d", c.ID, j, ok, i)
		}
	}
}

func TestBuildGridRowMajorLayout(t *testing.T) {
	g := MustBuildGrid(10, 8, &sequenceSource{draws: []float64{0}})

	first := g.Cell(0)
	if first.Q != -5 || first.R != -4 || first.S != 9 {
		t.Fatalf("cell (0,0) = %v, want (-5,-4,9)", first.Cube())
	}
	if first.ID != "-5,-4,9" {
		t.Errorf("id = %q", first.ID)
	}

	tests := []struct {
		col, row int
		want     Cube
	}{
		{9, 0, Cube{4, -4, 0}},
		{0, 1, Cube{-5, -3, 8}},
		{0, 2, Cube{-6, -2, 8}},
		{0, 3, Cube{-6, -1, 7}},
		{5, 4, Cube{-2, 0, 2}},
		{9, 7, Cube{1, 3, -4}},
	}
	for _, tc := range tests {
		got := g.Cell(tc.row*g.Width + tc.col).Cube()
		if got != tc.want {
			t.Errorf("cell (%d,%d) = %v, want %v", tc.col, tc.row, got, tc.want)
		}
	}
}

func TestBuildGridRowsShareR(t *testing.T) {
	g := MustBuildGrid(6, 5, rand.New(rand.NewSource(3)))
	for row := 0; row < g.Height; row++ {
		r := g.Cell(row * g.Width).R
		for col := 1; col < g.Width; col++ {
			c := g.Cell(row*g.Width + col)
			if c.R != r {
				t.Fatalf("row %d: cell %s has r=%d, want %d", row, c.ID, c.R, r)
			}
			if prev := g.Cell(row*g.Width + col - 1); c.Q != prev.Q+1 {
				t.Fatalf("row %d: q does not step by one at col %d", row, col)
			}
		}
	}
}

func TestBuildGridEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		g, err := BuildGrid(dims[0], dims[1], &sequenceSource{draws: []float64{0.5}})
		if err != nil {
			t.Fatalf("BuildGrid(%d, %d): %v", dims[0], dims[1], err)
		}
		if g.Len() != 0 {
			t.Errorf("BuildGrid(%d, %d) produced %d cells", dims[0], dims[1], g.Len())
		}
	}
}

func TestBuildGridRejectsBadInput(t *testing.T) {
	if _, err := BuildGrid(-1, 3, &sequenceSource{draws: []float64{0}}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative width: err = %v", err)
	}
	if _, err := BuildGrid(3, -2, &sequenceSource{draws: []float64{0}}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative height: err = %v", err)
	}
	if _, err := BuildGrid(3, 3, nil); !errors.Is(err, ErrNilRandomSource) {
		t.Errorf("nil rng: err = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustBuildGrid did not panic")
		}
	}()
	MustBuildGrid(-1, -1, &sequenceSource{draws: []float64{0}})
}

func TestBuildGridTerrainFromDraws(t *testing.T) {
	src := &sequenceSource{draws: []float64{0.1, 0.45, 0.7, 0.95}}
	g := MustBuildGrid(4, 1, src)
	want := []Terrain{Water, Grass, Forest, Mountain}
	for i, c := range g.Cells {
		if c.Terrain != want[i] {
			t.Errorf("cell %d terrain = %v, want %v", i, c.Terrain, want[i])
		}
	}
	if src.i != 4 {
		t.Errorf("consumed %d draws, want one per cell", src.i)
	}
}

func TestTerrainFor(t *testing.T) {
	tests := []struct {
		draw float64
		want Terrain
	}{
		{0, Water},
		{0.2999, Water},
		{0.30, Grass},
		{0.5999, Grass},
		{0.60, Forest},
		{0.8499, Forest},
		{0.85, Mountain},
		{0.9999, Mountain},
	}
	for _, tc := range tests {
		if got := TerrainFor(tc.draw); got != tc.want {
			t.Errorf("TerrainFor(%v) = %v, want %v", tc.draw, got, tc.want)
		}
	}
}

func TestTerrainDistribution(t *testing.T) {
	const n = 100000
	rng := rand.New(rand.NewSource(42))
	counts := make(map[Terrain]int)
	for i := 0; i < n; i++ {
		counts[TerrainFor(rng.Float64())]++
	}
	want := map[Terrain]float64{Water: 0.30, Grass: 0.30, Forest: 0.25, Mountain: 0.15}
	for terrain, p := range want {
		got := float64(counts[terrain]) / n
		if math.Abs(got-p) > 0.01 {
			t.Errorf("%v share = %.4f, want %.2f±0.01", terrain, got, p)
		}
	}
}

func TestTerrainNames(t *testing.T) {
	for _, terrain := range Terrains {
		parsed, err := ParseTerrain(terrain.String())
		if err != nil || parsed != terrain {
			t.Errorf("ParseTerrain(%q) = %v, %v", terrain.String(), parsed, err)
		}
	}
	if got := Forest.Title(); got != "Forest" {
		t.Errorf("Forest.Title() = %q", got)
	}
	if _, err := ParseTerrain("lava"); err == nil {
		t.Error("ParseTerrain accepted an unknown name")
	}
}

func TestGridTerrainCounts(t *testing.T) {
	g := MustBuildGrid(4, 2, &sequenceSource{draws: []float64{0.1, 0.1, 0.5, 0.9}})
	counts := g.TerrainCounts()
	if counts[Water] != 4 || counts[Grass] != 2 || counts[Mountain] != 2 || counts[Forest] != 0 {
		t.Errorf("unexpected counts %v", counts)
	}
}

func TestCellCoords(t *testing.T) {
	c := NewCell(NewCube(-5, -4), Grass)
	if got := c.Coords(); got != "(-5, -4, 9)" {
		t.Errorf("Coords() = %q", got)
	}
}
