package assets

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout describes the ocean, the boat and the islands with their docks.
type Layout struct {
	Bounds  Bounds   `yaml:"bounds"`
	Spawn   Spawn    `yaml:"spawn"`
	Boat    Boat     `yaml:"boat"`
	Models  Models   `yaml:"models"`
	Font    string   `yaml:"font"`
	Islands []Island `yaml:"islands"`
}

type Bounds struct {
	MinX  float32 `yaml:"min_x"`
	MinZ  float32 `yaml:"min_z"`
	Width float32 `yaml:"width"`
	Depth float32 `yaml:"depth"`
	Cell  int     `yaml:"cell"`
}

type Spawn struct {
	Position [3]float32 `yaml:"position"`
	YawDeg   float32    `yaml:"yaw_deg"`
}

type Boat struct {
	Mass        float32    `yaml:"mass"`
	Inertia     float32    `yaml:"inertia"`
	HalfExtents [2]float32 `yaml:"half_extents"` // x, z
}

// ModelRef names a binary glTF file and the scene inside it to show.
type ModelRef struct {
	File  string `yaml:"file"`
	Scene string `yaml:"scene"`
}

type Models struct {
	Boat ModelRef `yaml:"boat"`
	Map  ModelRef `yaml:"map"`
}

type Island struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Solid    [2]float32 `yaml:"solid"` // half extents x, z; zero means no collider
	Dock     Dock       `yaml:"dock"`
	Cards    []Card     `yaml:"cards"`
}

// Dock is the sensor region next to an island, relative to the island.
type Dock struct {
	Offset      [3]float32 `yaml:"offset"`
	HalfExtents [2]float32 `yaml:"half_extents"`
}

// Card is one entry on a dock's notice board.
type Card struct {
	PersonName string `yaml:"person_name"`
	Task       string `yaml:"task"`
}

// LoadLayout reads and validates a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return ParseLayout(data)
}

func ParseLayout(data []byte) (*Layout, error) {
	l := defaultLayout()
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Layout) Validate() error {
	if l.Bounds.Width <= 0 || l.Bounds.Depth <= 0 {
		return fmt.Errorf("layout bounds must be positive, got %gx%g", l.Bounds.Width, l.Bounds.Depth)
	}
	if l.Boat.Mass <= 0 || l.Boat.Inertia <= 0 {
		return fmt.Errorf("boat mass and inertia must be positive")
	}
	if l.Boat.HalfExtents[0] <= 0 || l.Boat.HalfExtents[1] <= 0 {
		return fmt.Errorf("boat half_extents must be positive")
	}
	if strings.TrimSpace(l.Models.Boat.File) == "" || strings.TrimSpace(l.Models.Map.File) == "" {
		return fmt.Errorf("layout must name boat and map model files")
	}
	seen := map[string]bool{}
	for i, isl := range l.Islands {
		name := strings.TrimSpace(isl.Name)
		if name == "" {
			return fmt.Errorf("island %d has no name", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate island %q", name)
		}
		seen[name] = true
		if isl.Dock.HalfExtents[0] <= 0 || isl.Dock.HalfExtents[1] <= 0 {
			return fmt.Errorf("island %q dock half_extents must be positive", name)
		}
	}
	return nil
}

// Island returns the island called name.
func (l *Layout) Island(name string) (Island, bool) {
	for _, isl := range l.Islands {
		if isl.Name == name {
			return isl, true
		}
	}
	return Island{}, false
}

func defaultLayout() *Layout {
	return &Layout{
		Bounds: Bounds{MinX: -200, MinZ: -200, Width: 400, Depth: 400, Cell: 4},
		Boat:   Boat{Mass: 1, Inertia: 0.4, HalfExtents: [2]float32{0.6, 1.4}},
	}
}
