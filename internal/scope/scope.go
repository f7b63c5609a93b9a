// Package scope draws telemetry channels as line plots on a gio graph.
package scope

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
)

// Bounds is the fixed data range shown by a graph.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultBounds fits a 30-sample window and the 0..10 amps / (RPM/2000)
// range.
var DefaultBounds = Bounds{XMin: 0, XMax: 30, YMin: 0, YMax: 10}

// Map converts a data point to a pixel position inside area. Y grows
// upwards in data space and downwards in pixel space.
func (b Bounds) Map(x, y float64, area image.Rectangle) f32.Point {
	w := float64(area.Dx())
	h := float64(area.Dy())

	px := float64(area.Min.X) + (x-b.XMin)/(b.XMax-b.XMin)*w
	py := float64(area.Max.Y) - (y-b.YMin)/(b.YMax-b.YMin)*h

	return f32.Pt(float32(px), float32(py))
}

// Theme holds the graph colors.
type Theme struct {
	Background color.NRGBA
	Tick       color.NRGBA
	Border     color.NRGBA
	Label      color.NRGBA
}

// DefaultTheme is a light theme with grey grid lines.
var DefaultTheme = Theme{
	Background: color.NRGBA{0xf8, 0xf8, 0xf2, 0xff},
	Tick:       color.NRGBA{0x80, 0x80, 0x80, 0xff},
	Border:     color.NRGBA{0x80, 0x80, 0x80, 0xff},
	Label:      color.NRGBA{0x44, 0x44, 0x44, 0xff},
}

// ticks returns the multiples of step within [lo, hi].
func ticks(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo {
		return nil
	}

	first := math.Ceil(lo/step) * step
	n := int(math.Floor((hi-first)/step+1e-9)) + 1

	out := make([]float64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, first+float64(i)*step)
	}
	return out
}

func fade(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint16(c.A) * uint16(alpha) / 255)
	return c
}
