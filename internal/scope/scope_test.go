package scope

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdb.so/solo-gio/internal/telemetry"
	"libdb.so/solo-gio/internal/window"
)

func TestBoundsMap(t *testing.T) {
	area := image.Rect(10, 20, 310, 220)

	tests := []struct {
		x, y float64
		want f32.Point
	}{
		{0, 0, f32.Pt(10, 220)},
		{30, 10, f32.Pt(310, 20)},
		{15, 5, f32.Pt(160, 120)},
		{30, 20, f32.Pt(310, -180)},
	}

	for _, test := range tests {
		assertPoint(t, test.want, DefaultBounds.Map(test.x, test.y, area))
	}
}

func assertPoint(t *testing.T, want, got f32.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-3, "y")
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 5, 10, 15, 20, 25, 30}, ticks(0, 30, 5))
	assert.Equal(t, []float64{0, 25}, ticks(0, 30, 25))
	assert.Len(t, ticks(0, 10, 1), 11)
	assert.Equal(t, []float64{2, 4}, ticks(1.5, 4.5, 2))
	assert.Empty(t, ticks(0.5, 0.7, 1))
	assert.Nil(t, ticks(0, 10, 0))
	assert.Nil(t, ticks(10, 0, 1))
}

func TestSmooth(t *testing.T) {
	assert.Nil(t, smooth(nil))
	assert.Nil(t, smooth([]f32.Point{{X: 1, Y: 1}}))

	pts := []f32.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 12, Y: 0}}
	segments := smooth(pts)
	require.Len(t, segments, 2)

	// Collinear points produce control points on the same line.
	assertPoint(t, f32.Pt(1, 0), segments[0].ctrl0)
	assertPoint(t, f32.Pt(4, 0), segments[0].ctrl1)
	assertPoint(t, pts[1], segments[0].to)
	assertPoint(t, f32.Pt(8, 0), segments[1].ctrl0)
	assertPoint(t, f32.Pt(11, 0), segments[1].ctrl1)
	assertPoint(t, pts[2], segments[1].to)
}

func TestSmoothPassesThroughPoints(t *testing.T) {
	pts := []f32.Point{{X: 0, Y: 5}, {X: 1, Y: 2}, {X: 2, Y: 8}, {X: 3, Y: 1}}
	for i, c := range smooth(pts) {
		assert.Equal(t, pts[i+1], c.to)
	}
}

func TestPoints(t *testing.T) {
	w := window.Shift(window.New(window.Size), 10)
	area := image.Rect(0, 0, 300, 100)

	pts := points(w, DefaultBounds, area)
	require.Len(t, pts, window.Size)

	assert.Equal(t, f32.Pt(0, 100), pts[0])
	assert.InDelta(t, 290, pts[window.Size-1].X, 1e-3)
	assert.InDelta(t, 0, pts[window.Size-1].Y, 1e-3)
}

func TestGraphPlotsInOrder(t *testing.T) {
	power := telemetry.NewChannel("power", 1)
	speed := telemetry.NewChannel("speed", telemetry.SpeedDivisor)

	g := NewGraph("Amps / RPM (/2k)")
	g.AddPlot(power, color.NRGBA{R: 1, A: 255})
	g.AddPlot(speed, color.NRGBA{G: 1, A: 255})

	plots := g.Plots()
	require.Len(t, plots, 2)
	assert.Same(t, power, plots[0].Channel)
	assert.Same(t, speed, plots[1].Channel)
	assert.Equal(t, DefaultBounds, g.Bounds)
}

func TestLegend(t *testing.T) {
	c := telemetry.NewChannel("speed", telemetry.SpeedDivisor)
	c.Push(3000)

	assert.Equal(t, "speed 1.50 (avg 1.50)", legend(c))
}

func TestFade(t *testing.T) {
	assert.Equal(t, uint8(0x60), fade(color.NRGBA{A: 0xff}, 0x60).A)
	assert.Equal(t, uint8(0x30), fade(color.NRGBA{A: 0x80}, 0x60).A)
}
