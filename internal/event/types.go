// internal/event/types.go
package event

import "go-hexnav/pkg/hexgrid"

const (
	PathFound      EventType = "PathFound"      // A route was computed for the vessel
	PathRejected   EventType = "PathRejected"   // Click had no walkable route
	MapRegenerated EventType = "MapRegenerated" // The grid was rebuilt wholesale
	VesselArrived  EventType = "VesselArrived"  // The vessel reached its final waypoint
)

// PathPayload accompanies PathFound.
type PathPayload struct {
	Path []hexgrid.Hex
}

// ClickPayload accompanies PathRejected.
type ClickPayload struct {
	Target hexgrid.Hex
}
