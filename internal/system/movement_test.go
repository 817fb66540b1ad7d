package system

import (
	"math"
	"testing"

	"go-hexnav/internal/component"
	"go-hexnav/internal/entity"
	"go-hexnav/internal/event"
	"go-hexnav/pkg/hexgrid"
)

type arrivalRecorder struct {
	arrivals []hexgrid.Hex
}

func (r *arrivalRecorder) OnEvent(e event.Event) {
	if h, ok := e.Data.(hexgrid.Hex); ok {
		r.arrivals = append(r.arrivals, h)
	}
}

func rowGrid(t *testing.T, length int) *hexgrid.Grid {
	t.Helper()
	g := hexgrid.NewGrid(19)
	for q := 0; q < length; q++ {
		g.Register(hexgrid.Hex{Q: q}, &hexgrid.Tile{Terrain: hexgrid.TerrainWater})
	}
	return g
}

func TestMovementFollowsPathToArrival(t *testing.T) {
	grid := rowGrid(t, 3)
	ecs := entity.NewECS()
	events := event.NewDispatcher()
	recorder := &arrivalRecorder{}
	events.Subscribe(event.VesselArrived, recorder)

	goal := hexgrid.Hex{Q: 2}
	path := grid.FindPath(hexgrid.Hex{}, goal)
	if len(path) != 3 {
		t.Fatalf("unexpected test path %v", path)
	}

	id := ecs.NewEntity()
	sx, sy := grid.HexToWorld(hexgrid.Hex{})
	ecs.Positions[id] = &component.Position{X: sx, Y: sy}
	ecs.Velocities[id] = &component.Velocity{Speed: 50}
	ecs.Paths[id] = &component.Path{Hexes: path}

	movement := NewMovementSystem(ecs, grid, events)
	for i := 0; i < 1000; i++ {
		movement.Update(0.016)
		if _, stillMoving := ecs.Paths[id]; !stillMoving {
			break
		}
	}

	if _, stillMoving := ecs.Paths[id]; stillMoving {
		t.Fatal("vessel never finished its path")
	}
	gx, gy := grid.HexToWorld(goal)
	pos := ecs.Positions[id]
	if math.Abs(pos.X-gx) > 1e-9 || math.Abs(pos.Y-gy) > 1e-9 {
		t.Fatalf("vessel stopped at (%v, %v), want (%v, %v)", pos.X, pos.Y, gx, gy)
	}
	if len(recorder.arrivals) != 1 || recorder.arrivals[0] != goal {
		t.Fatalf("expected one arrival at %v, got %v", goal, recorder.arrivals)
	}
}

func TestMovementAdvancesBySpeed(t *testing.T) {
	grid := rowGrid(t, 2)
	ecs := entity.NewECS()
	movement := NewMovementSystem(ecs, grid, event.NewDispatcher())

	id := ecs.NewEntity()
	sx, sy := grid.HexToWorld(hexgrid.Hex{})
	ecs.Positions[id] = &component.Position{X: sx, Y: sy}
	ecs.Velocities[id] = &component.Velocity{Speed: 10}
	ecs.Paths[id] = &component.Path{Hexes: []hexgrid.Hex{{Q: 1}}}

	movement.Update(0.5)

	pos := ecs.Positions[id]
	dx := pos.X - sx
	dy := pos.Y - sy
	moved := math.Sqrt(dx*dx + dy*dy)
	if math.Abs(moved-5) > 1e-9 {
		t.Fatalf("expected 5 world units of travel, got %v", moved)
	}
	if _, stillMoving := ecs.Paths[id]; !stillMoving {
		t.Fatal("vessel must still be en route after a partial step")
	}
}

func TestMovementIgnoresEntitiesWithoutPath(t *testing.T) {
	grid := rowGrid(t, 1)
	ecs := entity.NewECS()
	movement := NewMovementSystem(ecs, grid, event.NewDispatcher())

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 3, Y: 4}
	ecs.Velocities[id] = &component.Velocity{Speed: 10}

	movement.Update(1)
	if pos := ecs.Positions[id]; pos.X != 3 || pos.Y != 4 {
		t.Fatalf("pathless entity moved to (%v, %v)", pos.X, pos.Y)
	}
}
