package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultLayout []byte

// SurfaceSpec describes where one playfield is shown in the window.
type SurfaceSpec struct {
	ID      string  `yaml:"id"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Scale   float64 `yaml:"scale"`
	Animate bool    `yaml:"animate"`
	Sweep   float64 `yaml:"sweep"`
	Span    float64 `yaml:"span"`
}

// Layout is the set of surfaces in binding order.
type Layout struct {
	Surfaces []SurfaceSpec `yaml:"surfaces"`
}

var (
	ErrNoSurfaces  = errors.New("layout: no surfaces")
	ErrDuplicateID = errors.New("layout: duplicate surface id")
)

// Default returns the layout compiled into the binary.
func Default() (*Layout, error) {
	l, err := Parse(defaultLayout)
	if err != nil {
		return nil, fmt.Errorf("layout: default: %w", err)
	}
	return l, nil
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout: %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: unmarshal: %w", err)
	}
	for i := range l.Surfaces {
		if l.Surfaces[i].Scale == 0 {
			l.Surfaces[i].Scale = 1
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks ids and numeric ranges.
func (l *Layout) Validate() error {
	if len(l.Surfaces) == 0 {
		return ErrNoSurfaces
	}
	seen := make(map[string]struct{}, len(l.Surfaces))
	for i, s := range l.Surfaces {
		if s.ID == "" {
			return fmt.Errorf("layout: surface %d has no id", i)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Scale <= 0 {
			return fmt.Errorf("layout: surface %q: scale must be positive, got %v", s.ID, s.Scale)
		}
		if s.Animate && (s.Sweep <= 0 || s.Span <= 0) {
			return fmt.Errorf("layout: surface %q: animated surface needs positive sweep and span", s.ID)
		}
	}
	return nil
}

// Find returns the spec with the given id.
func (l *Layout) Find(id string) (SurfaceSpec, bool) {
	for _, s := range l.Surfaces {
		if s.ID == id {
			return s, true
		}
	}
	return SurfaceSpec{}, false
}
