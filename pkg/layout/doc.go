// Package layout computes screen positions for satellite buttons fanning out
// from an anchor point.
//
// Two arrangements are supported:
//
//   - [Straight]: satellites placed along a single axis at fixed-step offsets
//     from the anchor, walking left, right, up, or down.
//   - [Arc]: satellites placed on a circle arc between a start and end angle,
//     evenly spaced by index, enumerated clockwise or counter-clockwise.
//
// Both functions are pure: they read their spec, allocate a fresh slice, and
// never fail. Degenerate inputs (zero count, single item, equal angles, zero
// or negative radius and spacing) resolve to well-defined geometric results
// rather than errors, so callers that need stricter input rules must validate
// before calling. Safe for concurrent use.
//
// # Example
//
//	points := layout.Straight(layout.StraightSpec{
//	    Direction:     layout.Right,
//	    Spacing:       10,
//	    PrimarySize:   50,
//	    SatelliteSize: 40,
//	    Count:         3,
//	    Center:        geom.Pt(0, 0),
//	})
//	// points = [(55,0) (110,0) (165,0)]
package layout
