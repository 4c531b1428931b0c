package errors

import (
	"regexp"
	"unicode"
)

// ValidateCount validates a satellite count supplied by a caller.
// The layout functions themselves accept any count (negative behaves like
// zero), but the CLI and API reject negatives so nonsense input surfaces
// early instead of silently producing an empty layout.
func ValidateCount(count int) error {
	if count < 0 {
		return New(ErrCodeInvalidCount, "count must be >= 0, got %d", count)
	}
	return nil
}

// validModes is the closed set of layout modes.
var validModes = map[string]bool{
	"straight": true,
	"arc":      true,
}

// ValidateMode validates a layout mode string.
func ValidateMode(mode string) error {
	if !validModes[mode] {
		return New(ErrCodeInvalidMode, "unknown mode %q (want straight or arc)", mode)
	}
	return nil
}

// validDirections is the closed set of straight-layout directions.
var validDirections = map[string]bool{
	"left":   true,
	"right":  true,
	"top":    true,
	"bottom": true,
}

// ValidateDirection validates a straight-layout direction string.
func ValidateDirection(dir string) error {
	if !validDirections[dir] {
		return New(ErrCodeInvalidDirection, "unknown direction %q (want left, right, top, or bottom)", dir)
	}
	return nil
}

// validWindings is the closed set of arc windings.
var validWindings = map[string]bool{
	"clockwise":        true,
	"counterClockwise": true,
}

// ValidateWinding validates an arc winding string.
func ValidateWinding(w string) error {
	if !validWindings[w] {
		return New(ErrCodeInvalidWinding, "unknown winding %q (want clockwise or counterClockwise)", w)
	}
	return nil
}

// presetNameRegex matches preset names safe to use as TOML table keys and
// file path components.
var presetNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidatePresetName validates a preset name for safety and correctness.
// Conservative on purpose: no empty names, no control characters, no path
// separators, maximum length of 64 characters.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPreset, "preset name contains invalid control characters")
		}
	}

	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q", name)
	}

	return nil
}

// planIDRegex matches plan IDs: UUIDs or short opaque identifiers.
var planIDRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)

// ValidatePlanID validates a plan identifier for safety.
// Plan IDs become file names and database keys, so reject anything that
// could be used for path traversal.
func ValidatePlanID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPlan, "plan id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidPlan, "plan id too long (max 128 characters)")
	}

	if !planIDRegex.MatchString(id) {
		return New(ErrCodeInvalidPlan, "invalid plan id: %q", id)
	}

	return nil
}
