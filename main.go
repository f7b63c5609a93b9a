package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"libdb.so/solo-gio/internal/flags"
	"libdb.so/solo-gio/internal/scope"
	"libdb.so/solo-gio/internal/solo"
	"libdb.so/solo-gio/internal/telemetry"
)

var (
	port     = "COM6"
	address  = uint8(0)
	baud     = flags.NewStringEnum("937500", "115200")
	logLevel = flags.NewStringEnum("info", "debug", "warn", "error")
	palette  = flags.NewArray(
		flags.MustParseColorNRGBA("#7dac9f"),
		flags.MustParseColorNRGBA("#dc7062"),
		flags.MustParseColorNRGBA("#66a8d4"),
		flags.MustParseColorNRGBA("#e5b060"),
		flags.MustParseColorNRGBA("#a58cc4"),
	)
)

func init() {
	pflag.StringVarP(&port, "port", "p", port, "serial port of the motor controller")
	pflag.Uint8VarP(&address, "address", "a", address, "device address of the motor controller")
	pflag.Var(baud, "baud", "UART baud rate")
	pflag.Var(palette, "color", "plot color, repeat to build a palette; colors cycle in channel order")
	pflag.Var(logLevel, "log-level", "log level")
}

func main() {
	pflag.Parse()

	level, err := log.ParseLevel(logLevel.Value)
	if err != nil {
		log.Fatal("invalid log level", "err", err)
	}
	log.SetLevel(level)

	rate, err := solo.ParseBaudRate(baud.Value)
	if err != nil {
		log.Fatal("invalid baud rate", "err", err)
	}

	device, err := solo.Open(port, address, rate)
	if err != nil {
		log.Fatal("cannot open motor controller", "port", port, "err", err)
	}

	log.Info("opened motor controller", "port", port, "address", address, "baud", rate)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("SOLO telemetry"),
			app.Size(unit.Dp(800), unit.Dp(480)),
		)

		err := run(ctx, w, device)
		device.Close()

		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()

	app.Main()
}

func run(ctx context.Context, w *app.Window, device solo.Device) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sampler := telemetry.NewSampler(device)

	graph := scope.NewGraph("Amps / RPM (/2k)")
	nextColor := palette.Cycle()
	for _, c := range sampler.Channels() {
		graph.AddPlot(c, nextColor().NRGBA())
	}

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	clock := telemetry.NewClock(w.Invalidate)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := clock.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		w.Perform(system.ActionClose)
		return nil
	})

	err := loop(w, &dashboard{th: th, graph: graph, clock: clock, sampler: sampler})
	cancel()

	return errors.Join(err, g.Wait())
}

// dashboard is the state driven by the window's event loop.
type dashboard struct {
	th      *material.Theme
	graph   *scope.Graph
	clock   *telemetry.Clock
	sampler *telemetry.Sampler
	ops     op.Ops
}

func loop(w *app.Window, d *dashboard) error {
	for {
		if done, err := d.handle(w.Event()); done {
			return err
		}
	}
}

// handle processes one window event and reports whether the window is gone.
// A pending tick is sampled on every event, not only on frames, since a
// hidden window receives invalidations as other events.
func (d *dashboard) handle(e event.Event) (done bool, err error) {
	d.clock.Poll(d.sampler)

	switch e := e.(type) {
	case app.DestroyEvent:
		return true, e.Err

	case app.FrameEvent:
		gtx := app.NewContext(&d.ops, e)
		layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return d.graph.Layout(gtx, d.th)
			}),
		)

		e.Frame(gtx.Ops)
	}

	return false, nil
}
