// Package geom provides the small 2-D primitives shared by the layout
// calculator and its consumers.
//
// Coordinates follow screen conventions: the origin is at the top-left and
// the y axis grows downward. Angles are in radians and measured with the
// standard trigonometric convention on that same coordinate space, so a
// positive angle sweeps toward positive y (visually downward).
package geom

import "math"

// Point is a position in 2-D screen space.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// OnCircle returns the point on the circle of radius r around center at the
// given angle (radians).
func OnCircle(center Point, r, angle float64) Point {
	return Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y + r*math.Sin(angle),
	}
}
