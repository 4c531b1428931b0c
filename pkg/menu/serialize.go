package menu

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarshalPlan serializes a Plan to pretty-printed JSON bytes.
func MarshalPlan(p Plan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// UnmarshalPlan deserializes JSON bytes into a Plan.
// Validates that the mode is one of the known layout modes.
func UnmarshalPlan(data []byte) (Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("unmarshal plan: %w", err)
	}

	if p.Mode == "" {
		p.Mode = ModeStraight
	}
	if p.Mode != ModeStraight && p.Mode != ModeArc {
		return Plan{}, fmt.Errorf("plan has unknown mode %q", p.Mode)
	}

	return p, nil
}

// WritePlanFile writes a Plan to a JSON file.
func WritePlanFile(p Plan, path string) error {
	data, err := MarshalPlan(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadPlanFile reads a Plan from a JSON file.
func ReadPlanFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalPlan(data)
}
