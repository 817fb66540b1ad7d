// internal/system/render.go
package system

import (
	"go-hexnav/internal/config"
	"go-hexnav/internal/entity"
	"go-hexnav/pkg/hexgrid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws path overlays and circle entities on top of the
// pre-rendered map background.
type RenderSystem struct {
	ecs  *entity.ECS
	grid *hexgrid.Grid
}

func NewRenderSystem(ecs *entity.ECS, grid *hexgrid.Grid) *RenderSystem {
	return &RenderSystem{ecs: ecs, grid: grid}
}

// Draw renders active paths first so entities sit above their routes.
// cameraX/cameraY translate world space to screen space.
func (s *RenderSystem) Draw(screen *ebiten.Image, cameraX, cameraY float64) {
	for id, path := range s.ecs.Paths {
		if _, hasPos := s.ecs.Positions[id]; !hasPos {
			continue
		}
		for i := path.CurrentIndex; i < len(path.Hexes); i++ {
			x, y := s.grid.HexToWorld(path.Hexes[i])
			sx := float32(x + cameraX)
			sy := float32(y + cameraY)
			vector.DrawFilledCircle(screen, sx, sy, config.WaypointRadius, config.WaypointColor, true)
			if i > path.CurrentIndex {
				px, py := s.grid.HexToWorld(path.Hexes[i-1])
				vector.StrokeLine(screen,
					float32(px+cameraX), float32(py+cameraY), sx, sy,
					config.PathLineWidth, config.PathColor, true)
			}
		}
	}

	for id, render := range s.ecs.Renderables {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			sx := float32(pos.X + cameraX)
			sy := float32(pos.Y + cameraY)
			if render.HasStroke {
				vector.DrawFilledCircle(screen, sx, sy, render.Radius+2, config.HexStrokeColor, true)
			}
			vector.DrawFilledCircle(screen, sx, sy, render.Radius, render.Color, true)
		}
	}
}
