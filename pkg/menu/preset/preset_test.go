package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkuchta/orbit/pkg/errors"
	"github.com/mkuchta/orbit/pkg/menu"
)

const sampleTOML = `
[presets.fan]
mode = "arc"
start_angle = 0.0
end_angle = 3.14159
radius = 120.0
winding = "clockwise"
center = [200.0, 200.0]
items = ["copy", "paste", "share"]

[presets.toolbar]
mode = "straight"
direction = "right"
spacing = 10.0
primary_size = 50.0
satellite_size = 40.0
center = [40.0, 40.0]
`

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	presets, err := Load(writePresets(t, sampleTOML))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("loaded %d presets, want 2", len(presets))
	}

	fan, err := Lookup(presets, "fan")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if fan.Mode != menu.ModeArc {
		t.Errorf("fan mode = %q, want arc", fan.Mode)
	}
	if fan.Radius != 120 {
		t.Errorf("fan radius = %v, want 120", fan.Radius)
	}
	if len(fan.Items) != 3 {
		t.Errorf("fan items = %v, want 3 labels", fan.Items)
	}

	cfg := fan.Config()
	if cfg.Center.X != 200 || cfg.Center.Y != 200 {
		t.Errorf("fan center = %v, want (200,200)", cfg.Center)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	presets, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load of missing file should not error: %v", err)
	}
	if len(presets) != 0 {
		t.Errorf("expected empty preset map, got %d entries", len(presets))
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	if _, err := Load(writePresets(t, "not [valid toml")); err == nil {
		t.Error("invalid TOML should fail")
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	bad := `
[presets.weird]
mode = "spiral"
`
	_, err := Load(writePresets(t, bad))
	if !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("expected INVALID_PRESET, got %v", err)
	}
}

func TestLookupMissing(t *testing.T) {
	presets, err := Load(writePresets(t, sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Lookup(presets, "nonexistent")
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("expected PRESET_NOT_FOUND, got %v", err)
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if path != "/tmp/xdg/orbit/presets.toml" {
		t.Errorf("DefaultPath = %q", path)
	}
}
