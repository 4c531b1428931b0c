// Package preset loads named menu configurations from TOML files.
//
// A preset file holds one table per preset:
//
//	[presets.fan]
//	mode = "arc"
//	start_angle = 0.0
//	end_angle = 3.14159
//	radius = 120.0
//	winding = "clockwise"
//	center = [200.0, 200.0]
//	items = ["copy", "paste", "share"]
//
//	[presets.toolbar]
//	mode = "straight"
//	direction = "right"
//	spacing = 10.0
//	primary_size = 50.0
//	satellite_size = 40.0
//	center = [40.0, 40.0]
//
// The default location is ~/.config/orbit/presets.toml (honoring
// XDG_CONFIG_HOME).
package preset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mkuchta/orbit/pkg/errors"
	"github.com/mkuchta/orbit/pkg/geom"
	"github.com/mkuchta/orbit/pkg/layout"
	"github.com/mkuchta/orbit/pkg/menu"
)

// appName is used for the config directory.
const appName = "orbit"

// Preset is one named menu configuration as declared in TOML.
type Preset struct {
	Mode          string     `toml:"mode"`
	Direction     string     `toml:"direction"`
	Winding       string     `toml:"winding"`
	Spacing       float64    `toml:"spacing"`
	PrimarySize   float64    `toml:"primary_size"`
	SatelliteSize float64    `toml:"satellite_size"`
	StartAngle    float64    `toml:"start_angle"`
	EndAngle      float64    `toml:"end_angle"`
	Radius        float64    `toml:"radius"`
	Center        [2]float64 `toml:"center"`
	Items         []string   `toml:"items"` // Optional default item labels
}

// Config converts the preset to a menu configuration.
func (p Preset) Config() menu.Config {
	return menu.Config{
		Mode:          p.Mode,
		Direction:     layout.Direction(p.Direction),
		Winding:       layout.Winding(p.Winding),
		Spacing:       p.Spacing,
		PrimarySize:   p.PrimarySize,
		SatelliteSize: p.SatelliteSize,
		StartAngle:    p.StartAngle,
		EndAngle:      p.EndAngle,
		Radius:        p.Radius,
		Center:        geom.Pt(p.Center[0], p.Center[1]),
	}
}

// file is the top-level TOML document.
type file struct {
	Presets map[string]Preset `toml:"presets"`
}

// Load reads a preset file. A missing file is not an error: it returns an
// empty map so callers can fall back to flags.
func Load(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]Preset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parse presets %s", path)
	}
	if f.Presets == nil {
		f.Presets = map[string]Preset{}
	}

	for name, p := range f.Presets {
		if err := errors.ValidatePresetName(name); err != nil {
			return nil, err
		}
		if p.Mode != "" {
			if err := errors.ValidateMode(p.Mode); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
			}
		}
	}

	return f.Presets, nil
}

// Lookup finds a preset by name in a loaded set.
func Lookup(presets map[string]Preset, name string) (Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return Preset{}, err
	}
	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetNotFound, "no preset named %q", name)
	}
	return p, nil
}

// DefaultPath returns the preset file location using the XDG standard
// (~/.config/orbit/presets.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "presets.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "presets.toml"), nil
}
