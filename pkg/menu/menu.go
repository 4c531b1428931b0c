package menu

import (
	"github.com/google/uuid"

	"github.com/mkuchta/orbit/pkg/errors"
	"github.com/mkuchta/orbit/pkg/geom"
	"github.com/mkuchta/orbit/pkg/layout"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Layout modes.
const (
	ModeStraight = "straight"
	ModeArc      = "arc"
)

// =============================================================================
// Item - Satellite Descriptor
// =============================================================================

// Item describes one satellite button of a menu.
type Item struct {
	ID    string  `json:"id" bson:"id"`
	Label string  `json:"label,omitempty" bson:"label,omitempty"`
	Size  float64 `json:"size,omitempty" bson:"size,omitempty"` // Diameter override; 0 means use Config.SatelliteSize
}

// NewItem creates an item with a fresh UUID and the given label.
func NewItem(label string) Item {
	return Item{ID: uuid.NewString(), Label: label}
}

// =============================================================================
// Config - Menu Description
// =============================================================================

// Config fully describes how a menu's satellites are arranged around its
// anchor. Mode selects which of the two spec families applies:
//
//	straight: Direction, Spacing, PrimarySize, SatelliteSize
//	arc:      StartAngle, EndAngle, Radius, Winding
//
// Center is shared by both modes. Fields irrelevant to the selected mode are
// ignored, so a single Config can round-trip through presets unchanged.
type Config struct {
	Mode          string           `json:"mode" bson:"mode"`
	Direction     layout.Direction `json:"direction,omitempty" bson:"direction,omitempty"`
	Winding       layout.Winding   `json:"winding,omitempty" bson:"winding,omitempty"`
	Spacing       float64          `json:"spacing,omitempty" bson:"spacing,omitempty"`
	PrimarySize   float64          `json:"primary_size,omitempty" bson:"primary_size,omitempty"`
	SatelliteSize float64          `json:"satellite_size,omitempty" bson:"satellite_size,omitempty"`
	StartAngle    float64          `json:"start_angle,omitempty" bson:"start_angle,omitempty"`
	EndAngle      float64          `json:"end_angle,omitempty" bson:"end_angle,omitempty"`
	Radius        float64          `json:"radius,omitempty" bson:"radius,omitempty"`
	Center        geom.Point       `json:"center" bson:"center"`
}

// StraightSpec derives the straight-layout spec for count satellites.
func (c Config) StraightSpec(count int) layout.StraightSpec {
	return layout.StraightSpec{
		Direction:     c.Direction,
		Spacing:       c.Spacing,
		PrimarySize:   c.PrimarySize,
		SatelliteSize: c.SatelliteSize,
		Count:         count,
		Center:        c.Center,
	}
}

// ArcSpec derives the arc-layout spec for count satellites.
func (c Config) ArcSpec(count int) layout.ArcSpec {
	return layout.ArcSpec{
		StartAngle: c.StartAngle,
		EndAngle:   c.EndAngle,
		Radius:     c.Radius,
		Count:      count,
		Center:     c.Center,
		Winding:    c.Winding,
	}
}

// Points runs the layout calculator selected by Mode for count satellites.
func (c Config) Points(count int) ([]geom.Point, error) {
	switch c.Mode {
	case ModeStraight:
		return layout.Straight(c.StraightSpec(count)), nil
	case ModeArc:
		return layout.Arc(c.ArcSpec(count)), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidMode, "unknown mode %q (want straight or arc)", c.Mode)
	}
}

// =============================================================================
// Plan - Computed Menu Layout
// =============================================================================

// Placement binds one item to its computed position. Order in a Plan is
// placement order: the first placement is nearest the anchor (straight) or at
// the start angle (arc).
type Placement struct {
	ItemID string     `json:"item_id" bson:"item_id"`
	Label  string     `json:"label,omitempty" bson:"label,omitempty"`
	Point  geom.Point `json:"point" bson:"point"`
}

// Plan is a computed menu layout, ready to apply to UI objects or persist.
type Plan struct {
	ID         string      `json:"id" bson:"_id"`
	Mode       string      `json:"mode" bson:"mode"`
	Center     geom.Point  `json:"center" bson:"center"`
	Placements []Placement `json:"placements" bson:"placements"`
}

// Count returns the number of placements.
func (p *Plan) Count() int { return len(p.Placements) }

// Points returns the placement positions in order.
func (p *Plan) Points() []geom.Point {
	pts := make([]geom.Point, len(p.Placements))
	for i, pl := range p.Placements {
		pts[i] = pl.Point
	}
	return pts
}

// Build computes a plan for the given items. The satellite count is
// len(items); items with empty IDs get fresh UUIDs so every placement is
// addressable. The plan itself gets a fresh UUID.
func Build(cfg Config, items []Item) (Plan, error) {
	points, err := cfg.Points(len(items))
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		ID:         uuid.NewString(),
		Mode:       cfg.Mode,
		Center:     cfg.Center,
		Placements: make([]Placement, len(items)),
	}
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		plan.Placements[i] = Placement{
			ItemID: id,
			Label:  item.Label,
			Point:  points[i],
		}
	}
	return plan, nil
}
