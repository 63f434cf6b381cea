package snowplow

import (
	"math/rand"

	"github.com/litla-gamaleigan/arcade/internal/config"
)

// CellKind is what currently occupies a grid cell.
type CellKind int

const (
	CellClear CellKind = iota
	CellSnow
	CellDeep // Needs two passes
	CellObstacle
)

// HiddenItem is something lost under the snow, revealed on clearing.
type HiddenItem struct {
	Name   string
	Points int
	Weight int
}

// hiddenItems is the rarity table for finds under the snow.
var hiddenItems = []HiddenItem{
	{Name: "Vettlingur", Points: 50, Weight: 30},
	{Name: "Harðfiskur", Points: 100, Weight: 25},
	{Name: "Sími", Points: 150, Weight: 15},
	{Name: "Lyklar", Points: 200, Weight: 14},
	{Name: "Húfa", Points: 500, Weight: 4},
	{Name: "Hundaskítur", Points: 10, Weight: 12},
}

// Cell is one tile of the street grid.
type Cell struct {
	Kind     CellKind
	Ice      bool    // Slippery once cleared
	Item     *HiddenItem
	EntityID uint64 // Round entity backing the snow, 0 when none
}

// Grid is the street being plowed.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid generates a street for the given level. The top-left cell is
// always clear so the plow has somewhere to start.
func NewGrid(rng *rand.Rand, cfg config.SnowConfig, level int) *Grid {
	g := &Grid{
		W:     cfg.GridW,
		H:     cfg.GridH,
		cells: make([]Cell, cfg.GridW*cfg.GridH),
	}

	obstacleChance := cfg.ObstacleBase + cfg.ObstacleStep*float64(level)
	for i := range g.cells {
		if i == 0 {
			continue
		}
		c := &g.cells[i]
		switch {
		case rng.Float64() < obstacleChance:
			c.Kind = CellObstacle
		case rng.Float64() < cfg.DeepChance:
			c.Kind = CellDeep
		default:
			c.Kind = CellSnow
		}
		if c.Kind != CellObstacle {
			c.Ice = rng.Float64() < cfg.IceChance
			if rng.Float64() < cfg.ItemChance {
				c.Item = drawItem(rng)
			}
		}
	}
	return g
}

// drawItem picks a hidden item by rarity weight.
func drawItem(rng *rand.Rand) *HiddenItem {
	total := 0
	for _, it := range hiddenItems {
		total += it.Weight
	}
	roll := rng.Intn(total)
	for i := range hiddenItems {
		roll -= hiddenItems[i].Weight
		if roll < 0 {
			return &hiddenItems[i]
		}
	}
	return &hiddenItems[0]
}

// At returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return nil
	}
	return &g.cells[y*g.W+x]
}

// SnowCount returns how many cells still carry snow. Deep snow counts
// once; it clears on the second pass.
func (g *Grid) SnowCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind == CellSnow || g.cells[i].Kind == CellDeep {
			n++
		}
	}
	return n
}
