// component/movement.go
package component

import "go-hexnav/pkg/hexgrid"

// Position is a world-space position.
type Position struct {
	X, Y float64
}

// Velocity is movement speed in world units per second.
type Velocity struct {
	Speed float64
}

// Path is the route an entity is following, waypoint by waypoint.
type Path struct {
	Hexes        []hexgrid.Hex
	CurrentIndex int
}

// Done reports whether every waypoint has been consumed.
func (p *Path) Done() bool {
	return p.CurrentIndex >= len(p.Hexes)
}
