// Package render turns a sampled wall-clock time into the circle geometry of
// a binary clock face. Everything here is pure arithmetic: the same time and
// bounds always produce the same list of draw commands.
package render

import (
	"fmt"
	"image/color"
	"time"
)

// Padding is the vertical gap, in pixels, split evenly above and below the
// circle grid.
const Padding = 10.0

const (
	bcdRows    = 4
	binaryRows = 6
)

// Mode selects how the time is encoded into circles.
type Mode int

const (
	// ModeBCD shows six columns, one per decimal digit of HHMMSS, each a
	// stack of four bits.
	ModeBCD Mode = iota
	// ModeBinary shows three columns holding hour, minute and second as
	// plain six-bit binary values.
	ModeBinary
)

func (m Mode) String() string {
	switch m {
	case ModeBCD:
		return "bcd"
	case ModeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ParseMode parses the textual mode names used in configuration.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "bcd":
		return ModeBCD, nil
	case "binary":
		return ModeBinary, nil
	default:
		return 0, fmt.Errorf("unknown display mode %q", s)
	}
}

// Bounds is the size of the drawing area in pixels.
type Bounds struct {
	Width  float64
	Height float64
}

// Circle is one filled-circle draw command. On selects the active color.
type Circle struct {
	X, Y, R float64
	On      bool
}

// Canvas is the single drawing capability the clock needs from a backend.
type Canvas interface {
	FillCircle(x, y, r float32, c color.Color)
}

// Digits decomposes t into the six decimal digits of HHMMSS. Each digit is
// in [0,9], so it fits in four bits.
func Digits(t time.Time) [6]int {
	h, m, s := t.Hour(), t.Minute(), t.Second()
	return [6]int{h / 10, h % 10, m / 10, m % 10, s / 10, s % 10}
}

// Grid lays out the circles for t in the given mode.
func Grid(m Mode, t time.Time, b Bounds) []Circle {
	if m == ModeBinary {
		return BinaryGrid(t, b)
	}
	return BCDGrid(t, b)
}

// BCDGrid lays out six columns of four circles, one column per digit of
// HHMMSS, most significant bit at the top. Always returns 24 circles.
func BCDGrid(t time.Time, b Bounds) []Circle {
	d := Digits(t)
	return grid(d[:], bcdRows, b)
}

// BinaryGrid lays out three columns of six circles holding hour, minute and
// second as whole binary values, most significant bit at the top.
func BinaryGrid(t time.Time, b Bounds) []Circle {
	return grid([]int{t.Hour(), t.Minute(), t.Second()}, binaryRows, b)
}

// grid places one column per value. The radius comes from the available
// height: (height - Padding) / (2*rows). Column i is centered at
// radius*(2i+1); rows start at Padding/2 + radius and step by a diameter.
func grid(values []int, rows int, b Bounds) []Circle {
	radius := (b.Height - Padding) / float64(2*rows)
	out := make([]Circle, 0, len(values)*rows)
	for i, v := range values {
		x := radius * float64(2*i+1)
		y := Padding/2 + radius
		for bit := rows - 1; bit >= 0; bit-- {
			out = append(out, Circle{
				X:  x,
				Y:  y,
				R:  radius,
				On: v&(1<<bit) != 0,
			})
			y += 2 * radius
		}
	}
	return out
}

// Draw emits one fill command per circle, lit circles in the active color
// and unlit ones in the inactive color.
func Draw(c Canvas, circles []Circle, active, inactive color.Color) {
	for _, circle := range circles {
		col := inactive
		if circle.On {
			col = active
		}
		c.FillCircle(float32(circle.X), float32(circle.Y), float32(circle.R), col)
	}
}
