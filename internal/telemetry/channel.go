// Package telemetry samples the motor controller and feeds the chart
// windows.
package telemetry

import (
	"github.com/noriah/catnip/util"

	"libdb.so/solo-gio/internal/window"
)

// SpeedDivisor scales speed feedback (RPM) down to the chart's range.
const SpeedDivisor = 2000

// Channel is one telemetry stream drawn as one chart line.
type Channel struct {
	Name string
	// Divisor is applied to every raw reading before it is buffered.
	Divisor float64
	Window  window.Window

	stats  *util.MovingWindow
	mean   float64
	stddev float64
}

// NewChannel creates a channel with an all-zero window.
func NewChannel(name string, divisor float64) *Channel {
	return &Channel{
		Name:    name,
		Divisor: divisor,
		Window:  window.New(window.Size),
		stats:   util.NewMovingWindow(window.Size),
	}
}

// Push buffers raw / Divisor as the newest sample.
func (c *Channel) Push(raw float64) {
	v := raw / c.Divisor
	c.Window = window.Shift(c.Window, v)
	c.mean, c.stddev = c.stats.Update(v)
}

// Latest returns the newest buffered value.
func (c *Channel) Latest() float64 {
	return c.Window.Last()
}

// Stats returns the mean and standard deviation of the last window.Size
// scaled readings. These are not the statistics of the plotted window, which
// keeps its sticky first sample and its initial zeros.
func (c *Channel) Stats() (mean, stddev float64) {
	return c.mean, c.stddev
}
