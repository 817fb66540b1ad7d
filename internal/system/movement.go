// internal/system/movement.go
package system

import (
	"math"

	"go-hexnav/internal/entity"
	"go-hexnav/internal/event"
	"go-hexnav/pkg/hexgrid"
)

// MovementSystem advances path-following entities toward the world
// position of their next waypoint and announces arrival at the final
// one. Paths come in as hex sequences; conversion to world space goes
// through the grid so a resized/regenerated map stays authoritative.
type MovementSystem struct {
	ecs    *entity.ECS
	grid   *hexgrid.Grid
	events *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, grid *hexgrid.Grid, events *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, grid: grid, events: events}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasVel || !hasPath || path.Done() {
			continue
		}

		targetHex := path.Hexes[path.CurrentIndex]
		tx, ty := s.grid.HexToWorld(targetHex)

		dx := tx - pos.X
		dy := ty - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		step := vel.Speed * deltaTime

		if dist <= step || dist == 0 {
			// Snap to the waypoint and take the next one this frame.
			pos.X = tx
			pos.Y = ty
			path.CurrentIndex++
			if path.Done() {
				delete(s.ecs.Paths, id)
				s.events.Dispatch(event.Event{Type: event.VesselArrived, Data: targetHex})
			}
			continue
		}

		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}
