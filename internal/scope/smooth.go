package scope

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// cubic is one Bézier segment ending at to.
type cubic struct {
	ctrl0, ctrl1, to f32.Point
}

// smooth converts a polyline into Catmull-Rom cubic segments passing
// through every point. The end points are duplicated as their own
// neighbors.
func smooth(pts []f32.Point) []cubic {
	if len(pts) < 2 {
		return nil
	}

	last := len(pts) - 1
	segments := make([]cubic, 0, last)

	for i := 0; i < last; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, last)]

		segments = append(segments, cubic{
			ctrl0: p1.Add(p2.Sub(p0).Mul(1.0 / 6)),
			ctrl1: p2.Sub(p3.Sub(p1).Mul(1.0 / 6)),
			to:    p2,
		})
	}

	return segments
}

func smoothPath(ops *op.Ops, pts []f32.Point) clip.PathSpec {
	var path clip.Path
	path.Begin(ops)

	if len(pts) > 0 {
		path.MoveTo(pts[0])
	}
	for _, c := range smooth(pts) {
		path.CubeTo(c.ctrl0, c.ctrl1, c.to)
	}

	return path.End()
}
