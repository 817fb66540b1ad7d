// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"go-hexnav/internal/config"
	"go-hexnav/pkg/hexgrid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// InfoPanel shows the hovered hex, its terrain, and the current route
// length in the screen corner.
type InfoPanel struct {
	X, Y int
}

func NewInfoPanel(x, y int) *InfoPanel {
	return &InfoPanel{X: x, Y: y}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, grid *hexgrid.Grid, hovered *hexgrid.Hex, pathLen int) {
	face := basicfont.Face7x13

	line := "hover: -"
	if hovered != nil {
		if tile := grid.TileAt(*hovered); tile != nil {
			state := tile.Terrain.String()
			if tile.Obstacle {
				state += ", obstacle"
			}
			line = fmt.Sprintf("hover: (%d, %d) %s", hovered.Q, hovered.R, state)
		} else {
			line = fmt.Sprintf("hover: (%d, %d) open sea", hovered.Q, hovered.R)
		}
	}
	text.Draw(screen, line, face, p.X, p.Y, config.TextColor)

	route := "route: -"
	if pathLen > 0 {
		route = fmt.Sprintf("route: %d hexes", pathLen)
	}
	text.Draw(screen, route, face, p.X, p.Y+16, config.TextColor)

	text.Draw(screen, "click: sail   R: regenerate", face, p.X, p.Y+32, config.TextColor)
}
