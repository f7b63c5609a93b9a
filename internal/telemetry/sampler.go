package telemetry

import (
	"context"
	"time"

	"libdb.so/solo-gio/internal/solo"
)

// Interval is the poll cadence.
const Interval = 200 * time.Millisecond

// Sampler owns the device handle and both chart channels. It is not safe for
// concurrent use; Tick and any reader of the channels must run on the same
// goroutine.
type Sampler struct {
	Power *Channel
	Speed *Channel

	device solo.Device
}

// NewSampler creates a sampler reading from device. The power channel is
// created first so it takes the first palette color.
func NewSampler(device solo.Device) *Sampler {
	return &Sampler{
		Power:  NewChannel("power", 1),
		Speed:  NewChannel("speed", SpeedDivisor),
		device: device,
	}
}

// Channels returns the channels in creation order.
func (s *Sampler) Channels() []*Channel {
	return []*Channel{s.Power, s.Speed}
}

// Tick reads both feedback values and pushes them into their windows.
// Device errors are not inspected: whatever value came back is plotted.
func (s *Sampler) Tick() {
	power := s.device.QuadratureCurrentIqFeedback()
	speed := s.device.SpeedFeedback()

	_ = power.Err
	_ = speed.Err

	s.Power.Push(power.Value)
	s.Speed.Push(speed.Value)
}

// Clock delivers ticks every Interval into a single-slot channel and calls
// wake after each delivery so the UI loop can drain it. Ticks that arrive
// while one is still pending are dropped.
type Clock struct {
	C <-chan time.Time

	c    chan time.Time
	wake func()
}

// NewClock creates a clock. wake may be nil.
func NewClock(wake func()) *Clock {
	c := make(chan time.Time, 1)
	return &Clock{C: c, c: c, wake: wake}
}

// Run delivers ticks until ctx is done.
func (c *Clock) Run(ctx context.Context) error {
	ticker := time.NewTicker(Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			select {
			case c.c <- t:
			default:
			}
			if c.wake != nil {
				c.wake()
			}
		}
	}
}

// Poll runs s.Tick if a tick is pending and reports whether it did.
func (c *Clock) Poll(s *Sampler) bool {
	select {
	case <-c.C:
		s.Tick()
		return true
	default:
		return false
	}
}
