package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type HeroSpec struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Speed         int    `yaml:"speed"`
	JumpPower     int    `yaml:"jump_power"`
	ProbeDistance int    `yaml:"probe_distance"`
	Color         string `yaml:"color"`
}

type AudioSpec struct {
	Item string `yaml:"item"`
	Goal string `yaml:"goal"`
}

// GameSpec holds the session-wide tuning read from game.yaml.
type GameSpec struct {
	Name           string    `yaml:"name"`
	Title          string    `yaml:"title"`
	Subtitle       string    `yaml:"subtitle"`
	FPS            int       `yaml:"fps"`
	Viewport       [2]int    `yaml:"viewport"`
	ClearedSeconds float64   `yaml:"cleared_seconds"`
	DeathMargin    int       `yaml:"death_margin"`
	Background     string    `yaml:"background"`
	Hero           HeroSpec  `yaml:"hero"`
	Levels         []string  `yaml:"levels"`
	Audio          AudioSpec `yaml:"audio"`
}

// ClearedFrames is the CLEARED countdown length in frames.
func (g GameSpec) ClearedFrames() int {
	return int(float64(g.FPS) * g.ClearedSeconds)
}

func (g GameSpec) Validate() error {
	switch {
	case g.FPS <= 0:
		return fmt.Errorf("prefabs: game fps must be positive, got %d", g.FPS)
	case g.Viewport[0] <= 0 || g.Viewport[1] <= 0:
		return fmt.Errorf("prefabs: game viewport must be positive, got %v", g.Viewport)
	case g.ClearedSeconds < 0:
		return fmt.Errorf("prefabs: cleared_seconds must not be negative")
	case g.Hero.Width <= 0 || g.Hero.Height <= 0:
		return fmt.Errorf("prefabs: hero size must be positive")
	case len(g.Levels) == 0:
		return fmt.Errorf("prefabs: game lists no levels")
	}
	return nil
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Hero.ProbeDistance <= 0 {
		spec.Hero.ProbeDistance = 2
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type KindSpec struct {
	Size  [2]float64 `yaml:"size"`
	Value int        `yaml:"value"`
	Color string     `yaml:"color"`
}

// KindsSpec maps kind tags used in level documents to their size and look.
type KindsSpec struct {
	Name  string              `yaml:"name"`
	Tiles map[string]KindSpec `yaml:"tiles"`
	Items map[string]KindSpec `yaml:"items"`
}

func LoadKindsSpec() (*KindsSpec, error) {
	spec, err := LoadSpec[KindsSpec]("kinds.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
