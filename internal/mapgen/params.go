// internal/mapgen/params.go
package mapgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params controls archipelago generation. All values have workable
// defaults; a YAML file can override any subset of them.
type Params struct {
	Radius          int     `yaml:"radius"`           // hex grid radius
	Seed            int64   `yaml:"seed"`             // 0 = random each run
	SeaLevel        float64 `yaml:"sea_level"`        // elevation threshold for land
	Octaves         int     `yaml:"octaves"`          // noise octaves
	Frequency       float64 `yaml:"frequency"`        // base noise frequency
	Persistence     float64 `yaml:"persistence"`      // octave amplitude falloff
	ObstacleDensity float64 `yaml:"obstacle_density"` // fraction of water tiles with a buoy/wreck
}

// DefaultParams returns the compiled-in generation parameters: a mostly
// open sea with scattered islands and sparse obstacles.
func DefaultParams() Params {
	return Params{
		Radius:          13,
		Seed:            0,
		SeaLevel:        0.62,
		Octaves:         4,
		Frequency:       0.09,
		Persistence:     0.5,
		ObstacleDensity: 0.04,
	}
}

// LoadParams reads parameter overrides from a YAML file. Fields absent
// from the file keep their defaults.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("failed to read generation params: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return DefaultParams(), fmt.Errorf("failed to unmarshal generation params: %w", err)
	}
	if err := params.validate(); err != nil {
		return DefaultParams(), err
	}
	return params, nil
}

func (p Params) validate() error {
	if p.Radius < 1 {
		return fmt.Errorf("radius must be positive, got %d", p.Radius)
	}
	if p.SeaLevel < 0 || p.SeaLevel > 1 {
		return fmt.Errorf("sea_level must be in [0, 1], got %v", p.SeaLevel)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("octaves must be positive, got %d", p.Octaves)
	}
	if p.ObstacleDensity < 0 || p.ObstacleDensity > 1 {
		return fmt.Errorf("obstacle_density must be in [0, 1], got %v", p.ObstacleDensity)
	}
	return nil
}
