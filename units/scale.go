package units

import "fmt"

// Scale holds horizontal and vertical scale factors.
type Scale struct {
	X, Y float64
}

// ScaleOne is the identity scale.
func ScaleOne() Scale {
	return Scale{X: 1, Y: 1}
}

// ParseScale accepts "x,y" or a single factor applied to both axes.
func ParseScale(s string) (Scale, error) {
	values, err := parseFloats(s, 2)
	if err != nil {
		return Scale{}, fmt.Errorf("parsing scale %q: %w", s, err)
	}
	if len(values) == 1 {
		return Scale{X: values[0], Y: values[0]}, nil
	}
	return Scale{X: values[0], Y: values[1]}, nil
}

func (s Scale) String() string {
	return formatFloat(s.X) + "," + formatFloat(s.Y)
}

// Dimensions is a width and height pair.
type Dimensions struct {
	Width, Height float64
}

// ParseDimensions parses "width,height".
func ParseDimensions(s string) (Dimensions, error) {
	values, err := parseFloats(s, 2)
	if err != nil {
		return Dimensions{}, fmt.Errorf("parsing dimensions %q: %w", s, err)
	}
	if len(values) != 2 {
		return Dimensions{}, fmt.Errorf("parsing dimensions %q: want width,height", s)
	}
	return Dimensions{Width: values[0], Height: values[1]}, nil
}

func (d Dimensions) String() string {
	return formatFloat(d.Width) + "," + formatFloat(d.Height)
}

// Rectangle represents the bounds of a drawable element.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
