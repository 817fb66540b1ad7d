// pkg/render/hex_renderer.go
package render

import (
	"image/color"
	"math"

	"go-hexnav/internal/config"
	"go-hexnav/pkg/hexgrid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HexRenderer pre-renders the static map once and redraws the cached
// image every frame. Rebuild must be called after regeneration.
type HexRenderer struct {
	grid         *hexgrid.Grid
	screenWidth  int
	screenHeight int
	whiteImg     *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	mapImage     *ebiten.Image
}

func NewHexRenderer(grid *hexgrid.Grid, screenWidth, screenHeight int) *HexRenderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	r := &HexRenderer{
		grid:         grid,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		whiteImg:     whiteImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.Rebuild()
	return r
}

// CameraOffset centers the grid origin on screen.
func (r *HexRenderer) CameraOffset() (x, y float64) {
	return float64(r.screenWidth) / 2, float64(r.screenHeight) / 2
}

// Rebuild re-renders the cached map image from the grid's current tiles.
func (r *HexRenderer) Rebuild() {
	r.mapImage.Fill(config.BackgroundColor)
	r.grid.Each(func(h hexgrid.Hex, tile *hexgrid.Tile) {
		r.drawHexFill(r.mapImage, h, tile)
	})
	r.grid.Each(func(h hexgrid.Hex, tile *hexgrid.Tile) {
		r.drawHexOutline(r.mapImage, h)
	})
}

// Draw blits the cached map and highlights the hovered hex, if any.
func (r *HexRenderer) Draw(screen *ebiten.Image, hovered *hexgrid.Hex) {
	screen.DrawImage(r.mapImage, nil)
	if hovered != nil && r.grid.Contains(*hovered) {
		r.fillHexPath(screen, *hovered, config.HoverColor)
	}
}

func tileColor(tile *hexgrid.Tile) color.RGBA {
	switch {
	case tile.Terrain == hexgrid.TerrainLand:
		return config.LandColor
	case tile.Obstacle:
		return config.ObstacleColor
	default:
		return config.WaterColor
	}
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, h hexgrid.Hex, tile *hexgrid.Tile) {
	r.fillHexPath(target, h, tileColor(tile))
}

func (r *HexRenderer) fillHexPath(target *ebiten.Image, h hexgrid.Hex, fillColor color.RGBA) {
	path := r.hexPath(h)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, h hexgrid.Hex) {
	path := r.hexPath(h)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: 1.5,
	})
	strokeColor := config.HexStrokeColor
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(strokeColor.R) / 255
		r.strokeVs[i].ColorG = float32(strokeColor.G) / 255
		r.strokeVs[i].ColorB = float32(strokeColor.B) / 255
		r.strokeVs[i].ColorA = float32(strokeColor.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) hexPath(h hexgrid.Hex) vector.Path {
	x, y := r.grid.HexToWorld(h)
	cx, cy := r.CameraOffset()
	x += cx
	y += cy

	size := r.grid.HexSize()
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := x + size*math.Cos(angle)
		py := y + size*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}
