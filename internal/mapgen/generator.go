// internal/mapgen/generator.go
package mapgen

import (
	"errors"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"go-hexnav/pkg/hexgrid"
)

// ErrNoOpenWater is returned when the parameters leave no walkable tile
// to anchor the vessel on.
var ErrNoOpenWater = errors.New("mapgen: generated map has no open water")

// Generate rebuilds the grid as an archipelago: layered simplex noise
// produces an elevation field, a radial falloff keeps the rim open sea,
// and tiles above sea level become land. A fraction of the remaining
// water receives obstacles. Every tile is registered exactly once.
//
// Returns the spawn anchor: the walkable tile nearest the map center.
// Generation is deterministic for a fixed non-zero seed.
func Generate(grid *hexgrid.Grid, params Params) (hexgrid.Hex, error) {
	seed := params.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	noise := opensimplex.NewNormalized(seed)
	obstacles := rand.New(rand.NewSource(seed + 1))

	grid.Clear()

	radius := params.Radius
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			coord := hexgrid.Hex{Q: q, R: r}

			// Sample noise in continuous axial space.
			x := float64(q) + float64(r)*0.5
			y := float64(r) * hexgrid.Sqrt3 / 2

			elev := octaveNoise(noise, x, y, params.Octaves, params.Frequency, params.Persistence)

			// Push elevation down toward the rim so the border stays sea.
			distFromCenter := math.Sqrt(x*x+y*y) / float64(radius)
			elev *= 1.0 - math.Pow(distFromCenter, 3.0)*0.6

			tile := &hexgrid.Tile{Terrain: hexgrid.TerrainWater}
			if elev >= params.SeaLevel {
				tile.Terrain = hexgrid.TerrainLand
			} else if obstacles.Float64() < params.ObstacleDensity {
				tile.Obstacle = true
			}
			grid.Register(coord, tile)
		}
	}

	anchor, found := anchorTile(grid)
	if !found {
		return hexgrid.Hex{}, ErrNoOpenWater
	}

	// The far shore must be sailable from the anchor; carve a channel
	// when the noise happened to wall it off.
	if far, ok := farthestWater(grid, anchor); ok && !grid.HasPath(anchor, far) {
		for _, h := range anchor.LineTo(far) {
			grid.Register(h, &hexgrid.Tile{Terrain: hexgrid.TerrainWater})
		}
	}

	return anchor, nil
}

// octaveNoise layers several noise frequencies for natural coastlines.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}

// anchorTile returns the walkable tile nearest the map center.
func anchorTile(grid *hexgrid.Grid) (hexgrid.Hex, bool) {
	center := hexgrid.Hex{}
	var best hexgrid.Hex
	bestDist := math.MaxInt
	found := false
	grid.Each(func(h hexgrid.Hex, tile *hexgrid.Tile) {
		if !tile.Walkable() {
			return
		}
		if d := center.Distance(h); d < bestDist || (d == bestDist && lexLess(h, best)) {
			best = h
			bestDist = d
			found = true
		}
	})
	return best, found
}

// farthestWater returns the walkable tile farthest from the anchor.
func farthestWater(grid *hexgrid.Grid, anchor hexgrid.Hex) (hexgrid.Hex, bool) {
	var best hexgrid.Hex
	bestDist := -1
	grid.Each(func(h hexgrid.Hex, tile *hexgrid.Tile) {
		if !tile.Walkable() {
			return
		}
		if d := anchor.Distance(h); d > bestDist || (d == bestDist && lexLess(h, best)) {
			best = h
			bestDist = d
		}
	})
	return best, bestDist >= 0
}

// lexLess keeps tile selection independent of map iteration order.
func lexLess(a, b hexgrid.Hex) bool {
	if a.Q != b.Q {
		return a.Q < b.Q
	}
	return a.R < b.R
}
