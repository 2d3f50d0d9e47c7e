package ui

import (
	"fmt"
	"strings"
)

// Align is a horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VerticalAlign is a vertical text alignment.
type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// ParseAlign reads "left", "center" or "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// ParseVerticalAlign reads "top", "center" or "bottom".
func ParseVerticalAlign(s string) (VerticalAlign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return AlignTop, nil
	case "center", "middle":
		return AlignMiddle, nil
	case "bottom":
		return AlignBottom, nil
	}
	return 0, fmt.Errorf("unknown vertical alignment %q", s)
}

func (a VerticalAlign) String() string {
	switch a {
	case AlignMiddle:
		return "center"
	case AlignBottom:
		return "bottom"
	}
	return "top"
}

// HorizontalOffset is the x at which a line starts for a block of text of
// the given width anchored at x.
func HorizontalOffset(align Align, x, width float64) float64 {
	switch align {
	case AlignCenter:
		return x - width/2
	case AlignRight:
		return x - width
	}
	return x
}

// VerticalOffset is the y of line i of n lines of height h anchored at y.
//
// Centering an odd number of lines measures from the middle of the middle
// line, so lines above it and below it use different terms.
func VerticalOffset(align VerticalAlign, y, h float64, i, n int) float64 {
	switch align {
	case AlignBottom:
		return y - h*float64(n-i)
	case AlignMiddle:
		if n%2 == 0 {
			return y - float64(n/2-i)*h
		}
		offset := n/2 - i
		if offset < 0 {
			return y - (float64(offset+1)*h - h/2)
		}
		return y - (float64(offset)*h + h/2)
	}
	return y + float64(i)*h
}
