// pkg/hexgrid/registry.go
package hexgrid

import (
	"log"
	"math"
)

// Terrain classifies a tile. The mobile unit is a vessel, so open water
// is the traversable class and land is not.
type Terrain uint8

const (
	TerrainWater Terrain = iota
	TerrainLand
)

func (t Terrain) String() string {
	if t == TerrainWater {
		return "water"
	}
	return "land"
}

// Tile is a single cell of the map. Terrain is fixed at registration;
// only Obstacle may change afterwards.
type Tile struct {
	Terrain  Terrain
	Obstacle bool
}

// Walkable reports whether a vessel may occupy this tile. It is always
// derived, never stored.
func (t *Tile) Walkable() bool {
	return t.Terrain == TerrainWater && !t.Obstacle
}

// cell is an integer world-space bucket used for reverse lookup.
type cell struct {
	X, Y int
}

// Grid owns the coordinate→tile mapping, a reverse index from rounded
// world positions back to coordinates, and the hex size used for
// world-space conversions. Not safe for concurrent mutation; callers
// sequence registration and searches on one goroutine.
type Grid struct {
	tiles   map[Hex]*Tile
	byCell  map[cell]Hex
	hexSize float64
}

// NewGrid creates an empty grid with the given hex size.
func NewGrid(hexSize float64) *Grid {
	return &Grid{
		tiles:   make(map[Hex]*Tile),
		byCell:  make(map[cell]Hex),
		hexSize: hexSize,
	}
}

// Register inserts or overwrites the tile at the given coordinate and
// indexes its world position for O(1) reverse lookup. A nil tile is
// logged and ignored.
func (g *Grid) Register(h Hex, tile *Tile) {
	if tile == nil {
		log.Printf("WARNING: attempted to register nil tile at %v, ignoring", h)
		return
	}
	if old, exists := g.tiles[h]; exists && old != nil {
		delete(g.byCell, g.cellOf(h))
	}
	g.tiles[h] = tile
	g.byCell[g.cellOf(h)] = h
}

// Unregister removes the tile at the given coordinate from both the
// forward mapping and the reverse index.
func (g *Grid) Unregister(h Hex) {
	if _, exists := g.tiles[h]; !exists {
		return
	}
	delete(g.byCell, g.cellOf(h))
	delete(g.tiles, h)
}

// Clear drops every registered tile. Maps are rebuilt wholesale on
// regeneration; partial invalidation is not supported.
func (g *Grid) Clear() {
	g.tiles = make(map[Hex]*Tile)
	g.byCell = make(map[cell]Hex)
}

// TileAt returns the tile at the coordinate, or nil if none is registered.
func (g *Grid) TileAt(h Hex) *Tile {
	return g.tiles[h]
}

// Contains reports whether a tile is registered at the coordinate.
func (g *Grid) Contains(h Hex) bool {
	_, exists := g.tiles[h]
	return exists
}

// IsWalkable reports whether a registered, walkable tile occupies the
// coordinate.
func (g *Grid) IsWalkable(h Hex) bool {
	if tile, exists := g.tiles[h]; exists {
		return tile.Walkable()
	}
	return false
}

// Len returns the number of registered tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Each calls fn for every registered coordinate/tile pair. Iteration
// order is unspecified.
func (g *Grid) Each(fn func(Hex, *Tile)) {
	for h, tile := range g.tiles {
		fn(h, tile)
	}
}

// HexToWorld returns the world-space center of the coordinate at the
// grid's current hex size.
func (g *Grid) HexToWorld(h Hex) (x, y float64) {
	return h.ToWorld(g.hexSize)
}

// WorldToHex returns the registered coordinate nearest to the given
// world position. An exact hit in the reverse index resolves in O(1);
// otherwise every registered tile is scanned for the closest center.
// The scan only fires for positions outside any tile's footprint, since
// generation populates the index for every tile exactly once. Returns
// the zero Hex when the grid is empty.
func (g *Grid) WorldToHex(x, y float64) Hex {
	if h, exists := g.byCell[cellAt(x, y)]; exists {
		return h
	}

	var nearest Hex
	best := math.MaxFloat64
	for h := range g.tiles {
		hx, hy := h.ToWorld(g.hexSize)
		dx := hx - x
		dy := hy - y
		if d := dx*dx + dy*dy; d < best {
			best = d
			nearest = h
		}
	}
	return nearest
}

// HexSize returns the current world-space scale factor.
func (g *Grid) HexSize() float64 {
	return g.hexSize
}

// SetHexSize changes the world-space scale factor and reindexes the
// reverse lookup. Tiles already converted to world positions elsewhere
// are not moved; change the size only together with a full regeneration.
func (g *Grid) SetHexSize(size float64) {
	if size <= 0 {
		log.Printf("WARNING: ignoring non-positive hex size %v", size)
		return
	}
	g.hexSize = size
	g.byCell = make(map[cell]Hex, len(g.tiles))
	for h := range g.tiles {
		g.byCell[g.cellOf(h)] = h
	}
}

func (g *Grid) cellOf(h Hex) cell {
	x, y := h.ToWorld(g.hexSize)
	return cellAt(x, y)
}

func cellAt(x, y float64) cell {
	return cell{X: int(math.Round(x)), Y: int(math.Round(y))}
}
