package layout

import "math"

// Point is a position in Cartesian plot space. The origin is the plot
// center; y grows toward the reference "up" direction (SVG sinks flip it).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Cartesian converts polar coordinates to a Cartesian point.
// The angle is measured clockwise from the up direction, so
// x = r·sin(theta) and y = r·cos(theta). Radius must be non-negative.
func Cartesian(r, theta float64) Point {
	return Point{X: r * math.Sin(theta), Y: r * math.Cos(theta)}
}

// Polar is the inverse of Cartesian. It returns the radius and the angle
// normalized to [0, 2π).
func Polar(p Point) (r, theta float64) {
	r = math.Hypot(p.X, p.Y)
	theta = math.Atan2(p.X, p.Y)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return r, theta
}
