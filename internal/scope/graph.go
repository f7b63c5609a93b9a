package scope

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"libdb.so/solo-gio/internal/telemetry"
	"libdb.so/solo-gio/internal/window"
)

// Plot is one channel drawn as a smooth line.
type Plot struct {
	Color   color.NRGBA
	Channel *telemetry.Channel
}

// Graph is a 2-D axes with fixed bounds holding any number of plots.
type Graph struct {
	YLabel string
	Bounds Bounds
	Theme  Theme

	XTicksMajor float64
	XTicksMinor float64
	YTicksMajor float64

	Padding   unit.Dp
	LineWidth unit.Dp
	TextSize  unit.Sp

	plots []Plot
}

// NewGraph creates a graph with the default bounds, theme and grid.
func NewGraph(ylabel string) *Graph {
	return &Graph{
		YLabel:      ylabel,
		Bounds:      DefaultBounds,
		Theme:       DefaultTheme,
		XTicksMajor: 25,
		XTicksMinor: 5,
		YTicksMajor: 1,
		Padding:     5,
		LineWidth:   2,
		TextSize:    12,
	}
}

// AddPlot adds a plot for c. Plots are drawn in the order they are added.
func (g *Graph) AddPlot(c *telemetry.Channel, col color.NRGBA) {
	g.plots = append(g.plots, Plot{Color: col, Channel: c})
}

// Plots returns the graph's plots.
func (g *Graph) Plots() []Plot {
	return g.plots
}

// Layout draws the graph filling the maximum constraints.
func (g *Graph) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, g.Theme.Background, clip.Rect{Max: size}.Op())

	pad := gtx.Dp(g.Padding)
	header := gtx.Sp(g.TextSize) * 2
	gutter := gtx.Sp(g.TextSize) * 3

	area := image.Rect(pad+gutter, pad+header, size.X-pad, size.Y-pad)
	if area.Empty() {
		return layout.Dimensions{Size: size}
	}

	g.drawGrid(gtx, area)
	g.drawYLabels(gtx, th, area)
	g.drawPlots(gtx, area)

	paint.FillShape(gtx.Ops, g.Theme.Border, clip.Stroke{
		Path:  clip.Rect(area).Path(),
		Width: 1,
	}.Op())

	hdr := op.Offset(image.Pt(pad, pad)).Push(gtx.Ops)
	hgtx := gtx
	hgtx.Constraints = layout.Constraints{Max: image.Pt(size.X-2*pad, header)}
	g.layoutHeader(hgtx, th)
	hdr.Pop()

	return layout.Dimensions{Size: size}
}

func (g *Graph) drawGrid(gtx layout.Context, area image.Rectangle) {
	b := g.Bounds

	var minor, major clip.Path
	minor.Begin(gtx.Ops)
	for _, x := range ticks(b.XMin, b.XMax, g.XTicksMinor) {
		from := b.Map(x, b.YMin, area)
		minor.MoveTo(from)
		minor.LineTo(f32.Pt(from.X, float32(area.Min.Y)))
	}
	minorSpec := minor.End()

	major.Begin(gtx.Ops)
	for _, x := range ticks(b.XMin, b.XMax, g.XTicksMajor) {
		from := b.Map(x, b.YMin, area)
		major.MoveTo(from)
		major.LineTo(f32.Pt(from.X, float32(area.Min.Y)))
	}
	for _, y := range ticks(b.YMin, b.YMax, g.YTicksMajor) {
		from := b.Map(b.XMin, y, area)
		major.MoveTo(from)
		major.LineTo(f32.Pt(float32(area.Max.X), from.Y))
	}
	majorSpec := major.End()

	paint.FillShape(gtx.Ops, fade(g.Theme.Tick, 0x60), clip.Stroke{Path: minorSpec, Width: 1}.Op())
	paint.FillShape(gtx.Ops, g.Theme.Tick, clip.Stroke{Path: majorSpec, Width: 1}.Op())
}

func (g *Graph) drawYLabels(gtx layout.Context, th *material.Theme, area image.Rectangle) {
	for _, y := range ticks(g.Bounds.YMin, g.Bounds.YMax, g.YTicksMajor) {
		lbl := g.label(th, strconv.FormatFloat(y, 'f', -1, 64), g.Theme.Label)

		ltx := gtx
		ltx.Constraints = layout.Constraints{Max: area.Min}

		m := op.Record(gtx.Ops)
		dims := lbl.Layout(ltx)
		call := m.Stop()

		pt := g.Bounds.Map(g.Bounds.XMin, y, area)
		at := image.Pt(
			area.Min.X-dims.Size.X-gtx.Dp(4),
			int(pt.Y)-dims.Size.Y/2,
		)

		stack := op.Offset(at).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
	}
}

func (g *Graph) drawPlots(gtx layout.Context, area image.Rectangle) {
	defer clip.Rect(area).Push(gtx.Ops).Pop()

	width := float32(gtx.Dp(g.LineWidth))

	for _, p := range g.plots {
		pts := points(p.Channel.Window, g.Bounds, area)
		paint.FillShape(gtx.Ops, p.Color, clip.Stroke{
			Path:  smoothPath(gtx.Ops, pts),
			Width: width,
		}.Op())
	}
}

func (g *Graph) layoutHeader(gtx layout.Context, th *material.Theme) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(g.plots)+1)

	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Right: 16}.Layout(gtx, g.label(th, g.YLabel, g.Theme.Label).Layout)
	}))

	for _, p := range g.plots {
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Right: 12}.Layout(gtx, g.label(th, legend(p.Channel), p.Color).Layout)
		}))
	}

	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (g *Graph) label(th *material.Theme, text string, col color.NRGBA) material.LabelStyle {
	lbl := material.Label(th, g.TextSize, text)
	lbl.Color = col
	lbl.Font.Weight = font.Bold
	lbl.MaxLines = 1
	return lbl
}

// points maps every sample of w into area.
func points(w window.Window, b Bounds, area image.Rectangle) []f32.Point {
	pts := make([]f32.Point, len(w))
	for i, s := range w {
		pts[i] = b.Map(float64(s.Index), s.Value, area)
	}
	return pts
}

func legend(c *telemetry.Channel) string {
	mean, _ := c.Stats()
	return fmt.Sprintf("%s %.2f (avg %.2f)", c.Name, c.Latest(), mean)
}
