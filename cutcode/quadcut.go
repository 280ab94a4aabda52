package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// QuadCut is a quadratic Bézier cut through a single control point.
type QuadCut struct {
	CutObjectBase
	controlX, controlY int
}

// NewQuadCut constructs a QuadCut with rounded integer endpoints and control.
func NewQuadCut(start, control, end geom.Point, passes int) *QuadCut {
	c := control.Round()
	return &QuadCut{
		CutObjectBase: NewBase(start, end, passes),
		controlX:      int(c.X),
		controlY:      int(c.Y),
	}
}

// Control returns the (direction-independent) control point.
func (c *QuadCut) Control() geom.Point {
	return geom.Pt(float64(c.controlX), float64(c.controlY))
}

// Length approximates a quadratic Bézier's length as the control-polyline
// length |start-control| + |control-end|.
func (c *QuadCut) Length() float64 {
	ctrl := c.Control()
	return c.Start().Distance(ctrl) + ctrl.Distance(c.End())
}

func (c *QuadCut) Generator() []plot.Step {
	s, ctrl, e := c.Start(), c.Control(), c.End()
	return plot.QuadBezier(int(s.X), int(s.Y), int(ctrl.X), int(ctrl.Y), int(e.X), int(e.Y))
}

// Point evaluates the quadratic Bézier at parameter t in [0,1].
func (c *QuadCut) Point(t float64) geom.Point {
	s, ctrl, e := c.Start(), c.Control(), c.End()
	u := 1 - t
	return geom.Pt(
		u*u*s.X+2*u*t*ctrl.X+t*t*e.X,
		u*u*s.Y+2*u*t*ctrl.Y+t*t*e.Y,
	)
}

func (c *QuadCut) Flat() []CutObject { return scalarFlat(c) }
func (c *QuadCut) Candidate() []CutObject { return scalarCandidate(c) }
