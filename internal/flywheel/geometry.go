// Package flywheel lays out the equity flywheel diagram.
package flywheel

import (
	"math"
	"strconv"
)

// The diagram is drawn in a square viewBox with nodes on an ellipse.
const (
	ViewBox = 600.0
	centerX = 300.0
	centerY = 300.0
	radiusX = 230.0
	radiusY = 220.0
)

// Point is a position in viewBox coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodePosition places node i of n on the ellipse, starting at twelve o'clock
// and going clockwise.
func NodePosition(i, n int) Point {
	angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	return Point{
		X: centerX + radiusX*math.Cos(angle),
		Y: centerY + radiusY*math.Sin(angle),
	}
}

// CurvedPath returns an SVG quadratic curve from one point to another with
// the control point pushed offset units off the midpoint, perpendicular to
// the chord.
func CurvedPath(from, to Point, offset float64) string {
	mx := (from.X + to.X) / 2
	my := (from.Y + to.Y) / 2
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		length = 1
	}
	cx := mx + (-dy/length)*offset
	cy := my + (dx/length)*offset
	return "M " + num(from.X) + " " + num(from.Y) +
		" Q " + num(cx) + " " + num(cy) +
		" " + num(to.X) + " " + num(to.Y)
}

// Percent converts a viewBox coordinate to a percentage of the box.
func Percent(v float64) float64 {
	return v / ViewBox * 100
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
