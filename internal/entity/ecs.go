// internal/entity/ecs.go
package entity

import (
	"go-hexnav/internal/component"
	"go-hexnav/internal/types"
)

// ECS stores components in per-type maps keyed by entity id.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

// NewEntity reserves and returns a fresh entity id.
func (e *ECS) NewEntity() types.EntityID {
	id := e.NextID
	e.NextID++
	return id
}

// RemoveEntity drops every component held for the id.
func (e *ECS) RemoveEntity(id types.EntityID) {
	delete(e.Positions, id)
	delete(e.Velocities, id)
	delete(e.Paths, id)
	delete(e.Renderables, id)
}
