// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 19.0
	MapRadius    = 13

	MaxDeltaTime = 0.06

	VesselSpeed  = 160.0 // world units per second
	VesselRadius = 8.0

	WaypointRadius = 3.5
	PathLineWidth  = 2.0

	InfoPanelX = 10
	InfoPanelY = 20
)

// DefaultParamsPath is where the sailing state looks for generator
// overrides; compiled-in defaults apply when the file is absent.
const DefaultParamsPath = "assets/mapgen.yaml"

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WaterColor      = color.RGBA{52, 96, 146, 220}
	LandColor       = color.RGBA{110, 96, 60, 220}
	ObstacleColor   = color.RGBA{150, 70, 70, 255}
	HexStrokeColor  = color.RGBA{30, 44, 66, 255}
	VesselColor     = color.RGBA{240, 240, 240, 255}
	PathColor       = color.RGBA{255, 215, 0, 200}
	WaypointColor   = color.RGBA{255, 215, 0, 120}
	TextColor       = color.RGBA{240, 240, 240, 255}
	HoverColor      = color.RGBA{255, 255, 255, 60}
)
