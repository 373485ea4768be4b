// pkg/hexmap/terrain.go
package hexmap

import (
	"fmt"
	"strings"
)

// Terrain is the classification assigned to a cell at generation time.
type Terrain uint8

const (
	Water Terrain = iota
	Grass
	Forest
	Mountain
)

// Terrains lists every terrain in threshold order.
var Terrains = []Terrain{Water, Grass, Forest, Mountain}

var terrainNames = [...]string{
	Water:    "water",
	Grass:    "grass",
	Forest:   "forest",
	Mountain: "mountain",
}

// terrainThresholds — кумулятивные границы для одного равномерного броска в [0,1).
// Последняя граница 1.0, так что любой бросок попадает в одну из корзин.
var terrainThresholds = [...]float64{
	Water:    0.30,
	Grass:    0.60,
	Forest:   0.85,
	Mountain: 1.00,
}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

// Title returns the capitalised name, e.g. "Forest".
func (t Terrain) Title() string {
	name := t.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseTerrain maps a lowercase name back to its Terrain.
func ParseTerrain(name string) (Terrain, error) {
	for i, n := range terrainNames {
		if n == name {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", name)
}

// TerrainFor buckets a draw from [0,1): water below 0.30, grass below 0.60,
// forest below 0.85, mountain otherwise. The first matching threshold wins.
func TerrainFor(draw float64) Terrain {
	for _, t := range Terrains[:len(Terrains)-1] {
		if draw < terrainThresholds[t] {
			return t
		}
	}
	return Mountain
}
