package telemetry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdb.so/solo-gio/internal/solo"
	"libdb.so/solo-gio/internal/window"
)

type stubDevice struct {
	power, speed solo.Reading
	reads        int
}

func (d *stubDevice) QuadratureCurrentIqFeedback() solo.Reading {
	d.reads++
	return d.power
}

func (d *stubDevice) SpeedFeedback() solo.Reading {
	d.reads++
	return d.speed
}

func TestSamplerTickScaling(t *testing.T) {
	dev := &stubDevice{
		power: solo.Reading{Value: 3.5},
		speed: solo.Reading{Value: 8000},
	}
	s := NewSampler(dev)

	s.Tick()

	assert.Equal(t, 2, dev.reads)
	assert.Equal(t, 3.5, s.Power.Latest())
	assert.Equal(t, 4.0, s.Speed.Latest())
}

func TestSamplerTickIgnoresErrors(t *testing.T) {
	dev := &stubDevice{
		power: solo.Reading{Value: 0, Err: solo.ErrAbnormal},
		speed: solo.Reading{Value: 0, Err: errors.New("port gone")},
	}
	s := NewSampler(dev)
	s.Power.Window[window.Size-1].Value = 9

	assert.NotPanics(t, s.Tick)

	assert.Zero(t, s.Power.Latest())
	assert.Zero(t, s.Speed.Latest())
	assert.Equal(t, 9.0, s.Power.Window[window.Size-2].Value)
}

func TestSamplerFirstTick(t *testing.T) {
	s := NewSampler(&stubDevice{power: solo.Reading{Value: 5.0}})
	s.Tick()

	values := s.Power.Window.Values()
	require.Len(t, values, window.Size)

	for i, v := range values[:window.Size-1] {
		assert.Zero(t, v, "index %d", i)
	}
	assert.Equal(t, 5.0, values[window.Size-1])
	assert.Equal(t, window.Size-1, s.Power.Window[window.Size-1].Index)
}

func TestSamplerChannelOrder(t *testing.T) {
	s := NewSampler(&stubDevice{})

	channels := s.Channels()
	require.Len(t, channels, 2)
	assert.Equal(t, "power", channels[0].Name)
	assert.Equal(t, "speed", channels[1].Name)
}

func TestChannelStats(t *testing.T) {
	c := NewChannel("speed", SpeedDivisor)

	c.Push(2000)
	c.Push(6000)

	mean, _ := c.Stats()
	assert.InDelta(t, 2.0, mean, 1e-9)

	// The plotted window still holds its initial zeros.
	var sum float64
	for _, v := range c.Window.Values() {
		sum += v
	}
	assert.InDelta(t, 4.0/window.Size, sum/window.Size, 1e-9)
}

func TestClockPoll(t *testing.T) {
	s := NewSampler(&stubDevice{power: solo.Reading{Value: 1}})

	var woken atomic.Int32
	clock := NewClock(func() { woken.Add(1) })

	assert.False(t, clock.Poll(s))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- clock.Run(ctx) }()

	require.Eventually(t, func() bool { return woken.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	assert.True(t, clock.Poll(s))
	assert.Equal(t, 1.0, s.Power.Latest())
	assert.False(t, clock.Poll(s))
}

func TestClockDropsTicksWhilePending(t *testing.T) {
	dev := &stubDevice{power: solo.Reading{Value: 2}}
	s := NewSampler(dev)

	var woken atomic.Int32
	clock := NewClock(func() { woken.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- clock.Run(ctx) }()

	require.Eventually(t, func() bool { return woken.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
	cancel()
	<-done

	for clock.Poll(s) {
	}

	assert.Equal(t, 2, dev.reads, "two intervals without a poll yield one tick")
	assert.Equal(t, []float64{0, 2}, s.Power.Window.Values()[window.Size-2:])
}
