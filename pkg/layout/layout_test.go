package layout

import (
	"math"
	"testing"

	"github.com/mkuchta/orbit/pkg/geom"
)

const tolerance = 1e-6

func pointsAlmostEqual(t *testing.T, got, want []geom.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > tolerance || math.Abs(got[i].Y-want[i].Y) > tolerance {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, got[i].X, got[i].Y, want[i].X, want[i].Y)
		}
	}
}

func TestStraight(t *testing.T) {
	tests := []struct {
		name string
		spec StraightSpec
		want []geom.Point
	}{
		{
			name: "right from origin",
			spec: StraightSpec{
				Direction:     Right,
				Spacing:       10,
				PrimarySize:   50,
				SatelliteSize: 40,
				Count:         3,
				Center:        geom.Pt(0, 0),
			},
			// step = (50+40)/2 + 10 = 55
			want: []geom.Point{{X: 55}, {X: 110}, {X: 165}},
		},
		{
			name: "bottom from offset center",
			spec: StraightSpec{
				Direction:     Bottom,
				Spacing:       10,
				PrimarySize:   50,
				SatelliteSize: 40,
				Count:         2,
				Center:        geom.Pt(5, 5),
			},
			want: []geom.Point{{X: 5, Y: 60}, {X: 5, Y: 115}},
		},
		{
			name: "left decreases x",
			spec: StraightSpec{
				Direction:     Left,
				Spacing:       0,
				PrimarySize:   20,
				SatelliteSize: 20,
				Count:         2,
				Center:        geom.Pt(100, 50),
			},
			want: []geom.Point{{X: 80, Y: 50}, {X: 60, Y: 50}},
		},
		{
			name: "top decreases y",
			spec: StraightSpec{
				Direction:     Top,
				Spacing:       5,
				PrimarySize:   10,
				SatelliteSize: 10,
				Count:         3,
				Center:        geom.Pt(0, 100),
			},
			want: []geom.Point{{Y: 85}, {Y: 70}, {Y: 55}},
		},
		{
			name: "zero step collapses onto center",
			spec: StraightSpec{
				Direction: Right,
				Count:     3,
				Center:    geom.Pt(7, 9),
			},
			want: []geom.Point{{X: 7, Y: 9}, {X: 7, Y: 9}, {X: 7, Y: 9}},
		},
		{
			name: "negative spacing shrinks the step",
			spec: StraightSpec{
				Direction:     Right,
				Spacing:       -20,
				PrimarySize:   50,
				SatelliteSize: 50,
				Count:         2,
				Center:        geom.Pt(0, 0),
			},
			// step = 50 - 20 = 30
			want: []geom.Point{{X: 30}, {X: 60}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pointsAlmostEqual(t, Straight(tt.spec), tt.want)
		})
	}
}

func TestStraightZeroCount(t *testing.T) {
	specs := []StraightSpec{
		{},
		{Direction: Left, Spacing: 10, PrimarySize: 50, SatelliteSize: 40, Center: geom.Pt(3, 4)},
		{Direction: Bottom, Count: -1},
	}
	for _, spec := range specs {
		if got := Straight(spec); len(got) != 0 {
			t.Errorf("Straight(count=%d) returned %d points, want 0", spec.Count, len(got))
		}
	}
}

func TestStraightStep(t *testing.T) {
	spec := StraightSpec{Spacing: 10, PrimarySize: 50, SatelliteSize: 40}
	if got := spec.Step(); got != 55 {
		t.Errorf("Step() = %v, want 55", got)
	}
}

func TestArc(t *testing.T) {
	tests := []struct {
		name string
		spec ArcSpec
		want []geom.Point
	}{
		{
			name: "half circle clockwise",
			spec: ArcSpec{
				StartAngle: 0,
				EndAngle:   math.Pi,
				Radius:     100,
				Count:      3,
				Center:     geom.Pt(0, 0),
				Winding:    Clockwise,
			},
			// angles 0, π/2, π
			want: []geom.Point{{X: 100}, {Y: 100}, {X: -100}},
		},
		{
			name: "half circle counter-clockwise",
			spec: ArcSpec{
				StartAngle: 0,
				EndAngle:   math.Pi,
				Radius:     100,
				Count:      3,
				Center:     geom.Pt(0, 0),
				Winding:    CounterClockwise,
			},
			// angles 0, -π/2, -π
			want: []geom.Point{{X: 100}, {Y: -100}, {X: -100}},
		},
		{
			name: "offset center",
			spec: ArcSpec{
				StartAngle: 0,
				EndAngle:   math.Pi / 2,
				Radius:     10,
				Count:      2,
				Center:     geom.Pt(50, 50),
				Winding:    Clockwise,
			},
			want: []geom.Point{{X: 60, Y: 50}, {X: 50, Y: 60}},
		},
		{
			name: "equal angles collapse onto the start point",
			spec: ArcSpec{
				StartAngle: math.Pi / 4,
				EndAngle:   math.Pi / 4,
				Radius:     100,
				Count:      3,
				Center:     geom.Pt(0, 0),
				Winding:    Clockwise,
			},
			want: []geom.Point{
				{X: 100 * math.Sqrt2 / 2, Y: 100 * math.Sqrt2 / 2},
				{X: 100 * math.Sqrt2 / 2, Y: 100 * math.Sqrt2 / 2},
				{X: 100 * math.Sqrt2 / 2, Y: 100 * math.Sqrt2 / 2},
			},
		},
		{
			name: "negative radius mirrors through center",
			spec: ArcSpec{
				StartAngle: 0,
				EndAngle:   math.Pi,
				Radius:     -100,
				Count:      2,
				Center:     geom.Pt(0, 0),
				Winding:    Clockwise,
			},
			want: []geom.Point{{X: -100}, {X: 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pointsAlmostEqual(t, Arc(tt.spec), tt.want)
		})
	}
}

func TestArcZeroCount(t *testing.T) {
	if got := Arc(ArcSpec{Radius: 100, Count: 0}); len(got) != 0 {
		t.Errorf("Arc(count=0) returned %d points, want 0", len(got))
	}
	if got := Arc(ArcSpec{Radius: 100, Count: -2}); len(got) != 0 {
		t.Errorf("Arc(count=-2) returned %d points, want 0", len(got))
	}
}

// A single satellite sits exactly at the start angle. The even-spacing
// divisor is count-1, so count=1 must not produce NaN or Inf coordinates.
func TestArcSingleSatellite(t *testing.T) {
	tests := []struct {
		name string
		spec ArcSpec
	}{
		{
			name: "clockwise",
			spec: ArcSpec{StartAngle: math.Pi / 3, EndAngle: math.Pi, Radius: 80, Count: 1, Center: geom.Pt(10, 20), Winding: Clockwise},
		},
		{
			name: "counter-clockwise",
			spec: ArcSpec{StartAngle: -math.Pi / 6, EndAngle: 2, Radius: 40, Count: 1, Center: geom.Pt(-5, 0), Winding: CounterClockwise},
		},
		{
			name: "zero radius",
			spec: ArcSpec{StartAngle: 1, EndAngle: 1, Count: 1, Center: geom.Pt(3, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Arc(tt.spec)
			if len(got) != 1 {
				t.Fatalf("got %d points, want 1", len(got))
			}
			if math.IsNaN(got[0].X) || math.IsNaN(got[0].Y) || math.IsInf(got[0].X, 0) || math.IsInf(got[0].Y, 0) {
				t.Fatalf("point is not finite: %v", got[0])
			}
			want := geom.OnCircle(tt.spec.Center, tt.spec.Radius, tt.spec.StartAngle)
			pointsAlmostEqual(t, got, []geom.Point{want})
		})
	}
}

// Every arc point lies on the circle: distance to center equals |radius|.
func TestArcPointsOnCircle(t *testing.T) {
	specs := []ArcSpec{
		{StartAngle: 0, EndAngle: 2 * math.Pi, Radius: 120, Count: 8, Center: geom.Pt(30, -10), Winding: Clockwise},
		{StartAngle: -1, EndAngle: 1, Radius: 55.5, Count: 5, Center: geom.Pt(0, 0), Winding: CounterClockwise},
		{StartAngle: 0.3, EndAngle: 4.1, Radius: -70, Count: 4, Center: geom.Pt(-3, 9), Winding: Clockwise},
		{StartAngle: 2, EndAngle: 2.5, Radius: 1, Count: 1, Center: geom.Pt(1, 1), Winding: Clockwise},
	}

	for _, spec := range specs {
		for i, p := range Arc(spec) {
			d := p.Distance(spec.Center)
			if math.Abs(d-math.Abs(spec.Radius)) > tolerance {
				t.Errorf("spec %+v point %d: distance %v, want %v", spec, i, d, math.Abs(spec.Radius))
			}
		}
	}
}

// Both calculators are pure: identical input yields identical output.
func TestIdempotence(t *testing.T) {
	straight := StraightSpec{Direction: Bottom, Spacing: 7, PrimarySize: 44, SatelliteSize: 36, Count: 4, Center: geom.Pt(12, 34)}
	a := Straight(straight)
	b := Straight(straight)
	pointsAlmostEqual(t, a, b)

	arc := ArcSpec{StartAngle: 0.5, EndAngle: 2.5, Radius: 90, Count: 6, Center: geom.Pt(-4, 4), Winding: CounterClockwise}
	c := Arc(arc)
	d := Arc(arc)
	pointsAlmostEqual(t, c, d)
}
