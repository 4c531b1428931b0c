package layout

import (
	"github.com/mkuchta/orbit/pkg/geom"
)

// Direction selects the axis and sign along which straight-line satellites
// are placed, relative to the anchor point.
type Direction string

// Placement directions for straight layouts.
const (
	Left   Direction = "left"
	Right  Direction = "right"
	Top    Direction = "top"
	Bottom Direction = "bottom"
)

// Winding is the sense in which angular increments are applied for arc
// layouts. On screen coordinates (y down) a clockwise winding sweeps
// visually downward from the start angle.
type Winding string

// Windings for arc layouts.
const (
	Clockwise        Winding = "clockwise"
	CounterClockwise Winding = "counterClockwise"
)

// StraightSpec describes a straight-line placement: Count satellites stepped
// away from Center along Direction. The step between consecutive positions is
// (PrimarySize+SatelliteSize)/2 + Spacing, so the first satellite clears the
// primary button and subsequent ones clear each other.
//
// No validation is performed. Negative Spacing is accepted and simply shrinks
// the step; avoiding overlap is the caller's concern.
type StraightSpec struct {
	Direction     Direction
	Spacing       float64
	PrimarySize   float64
	SatelliteSize float64
	Count         int
	Center        geom.Point
}

// Step returns the distance between consecutive positions.
func (s StraightSpec) Step() float64 {
	return (s.PrimarySize+s.SatelliteSize)/2 + s.Spacing
}

// ArcSpec describes an arc placement: Count satellites on the circle of
// Radius around Center, evenly spaced by index between StartAngle and
// EndAngle (radians). Winding applies the sign of the angular increments.
//
// No validation is performed. A negative Radius mirrors all positions
// through Center.
type ArcSpec struct {
	StartAngle float64
	EndAngle   float64
	Radius     float64
	Count      int
	Center     geom.Point
	Winding    Winding
}

// Straight computes the positions for a straight-line layout.
//
// Position i is Center offset by (i+1)*Step() along the spec's direction:
// the returned points form an arithmetic progression walking away from the
// anchor. The first point is nearest the center. Count <= 0 yields an empty
// slice; a zero step yields Count copies of Center.
func Straight(spec StraightSpec) []geom.Point {
	if spec.Count <= 0 {
		return nil
	}

	step := spec.Step()
	var dx, dy float64
	switch spec.Direction {
	case Left:
		dx = -step
	case Right:
		dx = step
	case Top:
		dy = -step
	case Bottom:
		dy = step
	}

	points := make([]geom.Point, spec.Count)
	pos := spec.Center
	for i := range points {
		pos = pos.Add(geom.Pt(dx, dy))
		points[i] = pos
	}
	return points
}

// Arc computes the positions for an arc layout.
//
// Position i sits at angle StartAngle + sign*(EndAngle-StartAngle)/(Count-1)*i,
// where sign is +1 for Clockwise and -1 for CounterClockwise. The first point
// is always at the start angle. Count <= 0 yields an empty slice. Count == 1
// yields the single point at the start angle; the even-spacing divisor
// (Count-1) is undefined there, so it is special-cased rather than letting the
// increment go infinite. Equal start and end angles yield coincident points.
func Arc(spec ArcSpec) []geom.Point {
	if spec.Count <= 0 {
		return nil
	}
	if spec.Count == 1 {
		return []geom.Point{geom.OnCircle(spec.Center, spec.Radius, spec.StartAngle)}
	}

	sign := 1.0
	if spec.Winding == CounterClockwise {
		sign = -1.0
	}
	increment := (spec.EndAngle - spec.StartAngle) / float64(spec.Count-1)

	points := make([]geom.Point, spec.Count)
	for i := range points {
		angle := spec.StartAngle + sign*increment*float64(i)
		points[i] = geom.OnCircle(spec.Center, spec.Radius, angle)
	}
	return points
}
