package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Triple is anything that exposes x, y and z components. Point arithmetic
// accepts any Triple, not only other Points.
type Triple interface {
	XYZ() (x, y, z float64)
}

var _ Triple = Point{}

// Point is an x, y, z position. As the drawing model is 2D, z doubles as the
// z-order of whatever sits at the point.
type Point struct {
	X, Y, Z float64
}

// Zero returns the point at 0,0,0.
func Zero() Point {
	return Point{}
}

// At creates a point from its components.
func At(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// ParsePoint parses a comma-delimited "x,y" or "x,y,z" string. Missing
// components default to 0.
func ParsePoint(s string) (Point, error) {
	values, err := parseFloats(s, 3)
	if err != nil {
		return Point{}, fmt.Errorf("parsing point %q: %w", s, err)
	}
	var p Point
	components := []*float64{&p.X, &p.Y, &p.Z}
	for i, v := range values {
		*components[i] = v
	}
	return p, nil
}

// XYZ returns the components of p.
func (p Point) XYZ() (float64, float64, float64) {
	return p.X, p.Y, p.Z
}

// ZOrder is the z component read as a drawing order.
func (p Point) ZOrder() float64 {
	return p.Z
}

// Add returns the component-wise sum of p and v.
func (p Point) Add(v Triple) Point {
	x, y, z := v.XYZ()
	return Point{X: p.X + x, Y: p.Y + y, Z: p.Z + z}
}

// Sub returns the component-wise difference of p and v.
func (p Point) Sub(v Triple) Point {
	x, y, z := v.XYZ()
	return Point{X: p.X - x, Y: p.Y - y, Z: p.Z - z}
}

// String renders the point in the same form ParsePoint accepts, always with
// a decimal part ("1.0,2.0,3.0").
func (p Point) String() string {
	return formatFloat(p.X) + "," + formatFloat(p.Y) + "," + formatFloat(p.Z)
}

// parseFloats splits a comma list into at most max floats.
func parseFloats(s string, max int) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty value")
	}
	parts := strings.SplitN(s, ",", max)
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
