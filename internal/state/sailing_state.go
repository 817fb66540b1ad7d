// internal/state/sailing_state.go
package state

import (
	"log"

	"go-hexnav/internal/component"
	"go-hexnav/internal/config"
	"go-hexnav/internal/entity"
	"go-hexnav/internal/event"
	"go-hexnav/internal/mapgen"
	"go-hexnav/internal/system"
	"go-hexnav/internal/types"
	"go-hexnav/internal/ui"
	"go-hexnav/pkg/hexgrid"
	"go-hexnav/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SailingState is the interactive voyage: click open water to route the
// vessel there, R regenerates the archipelago.
type SailingState struct {
	sm       *StateMachine
	grid     *hexgrid.Grid
	ecs      *entity.ECS
	events   *event.Dispatcher
	movement *system.MovementSystem
	entities *system.RenderSystem
	renderer *render.HexRenderer
	panel    *ui.InfoPanel
	params   mapgen.Params

	vessel      types.EntityID
	currentPath []hexgrid.Hex
	hovered     *hexgrid.Hex
}

func NewSailingState(sm *StateMachine) *SailingState {
	params, err := mapgen.LoadParams(config.DefaultParamsPath)
	if err != nil {
		log.Printf("WARNING: using default generation params: %v", err)
	}

	grid := hexgrid.NewGrid(config.HexSize)
	ecs := entity.NewECS()
	events := event.NewDispatcher()

	s := &SailingState{
		sm:       sm,
		grid:     grid,
		ecs:      ecs,
		events:   events,
		movement: system.NewMovementSystem(ecs, grid, events),
		entities: system.NewRenderSystem(ecs, grid),
		panel:    ui.NewInfoPanel(config.InfoPanelX, config.InfoPanelY),
		params:   params,
	}
	events.Subscribe(event.VesselArrived, s)

	s.regenerate()
	s.renderer = render.NewHexRenderer(grid, config.ScreenWidth, config.ScreenHeight)
	return s
}

// OnEvent clears the route overlay once the vessel reaches its goal.
func (s *SailingState) OnEvent(e event.Event) {
	if e.Type == event.VesselArrived {
		s.currentPath = nil
	}
}

func (s *SailingState) Enter() {}

func (s *SailingState) Update(deltaTime float64) {
	s.ecs.GameTime += deltaTime

	s.updateHover()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.handleClick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.regenerate()
		if s.renderer != nil {
			s.renderer.Rebuild()
		}
	}

	s.movement.Update(deltaTime)
}

func (s *SailingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderer.Draw(screen, s.hovered)
	cx, cy := s.renderer.CameraOffset()
	s.entities.Draw(screen, cx, cy)
	s.panel.Draw(screen, s.grid, s.hovered, len(s.currentPath))
}

func (s *SailingState) Exit() {
	s.events.Unsubscribe(event.VesselArrived, s)
}

func (s *SailingState) updateHover() {
	wx, wy := s.cursorWorld()
	h := hexgrid.FromWorld(wx, wy, s.grid.HexSize())
	if s.grid.Contains(h) {
		s.hovered = &h
	} else {
		s.hovered = nil
	}
}

// handleClick routes the vessel to the clicked hex. A click without a
// walkable route is announced and otherwise ignored; it must never
// interrupt the session.
func (s *SailingState) handleClick() {
	wx, wy := s.cursorWorld()
	target := hexgrid.FromWorld(wx, wy, s.grid.HexSize())
	if !s.grid.Contains(target) {
		return
	}

	pos := s.ecs.Positions[s.vessel]
	start := s.grid.WorldToHex(pos.X, pos.Y)

	path := s.grid.FindPath(start, target)
	if len(path) == 0 {
		log.Printf("no route from %v to %v", start, target)
		s.events.Dispatch(event.Event{Type: event.PathRejected, Data: event.ClickPayload{Target: target}})
		return
	}

	s.ecs.Paths[s.vessel] = &component.Path{Hexes: path}
	s.currentPath = path
	s.events.Dispatch(event.Event{Type: event.PathFound, Data: event.PathPayload{Path: path}})
}

// regenerate rebuilds the map wholesale and re-anchors the vessel.
func (s *SailingState) regenerate() {
	anchor, err := mapgen.Generate(s.grid, s.params)
	if err != nil {
		log.Fatalf("map generation failed: %v", err)
	}

	if s.vessel != 0 {
		s.ecs.RemoveEntity(s.vessel)
	}
	s.vessel = s.ecs.NewEntity()
	x, y := s.grid.HexToWorld(anchor)
	s.ecs.Positions[s.vessel] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[s.vessel] = &component.Velocity{Speed: config.VesselSpeed}
	s.ecs.Renderables[s.vessel] = &component.Renderable{
		Color:     config.VesselColor,
		Radius:    config.VesselRadius,
		HasStroke: true,
	}
	s.currentPath = nil
	s.events.Dispatch(event.Event{Type: event.MapRegenerated})
}

func (s *SailingState) cursorWorld() (float64, float64) {
	mx, my := ebiten.CursorPosition()
	return float64(mx) - float64(config.ScreenWidth)/2, float64(my) - float64(config.ScreenHeight)/2
}
