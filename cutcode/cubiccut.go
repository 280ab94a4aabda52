package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// CubicCut is a cubic Bézier cut through two control points. Unlike
// QuadCut's single control point, CubicCut's two controls are
// direction-relative: C1 is always the control nearest the current Start,
// C2 the one nearest End, so Reverse (which only flips the Normal flag)
// keeps C1()/C2() consistent without touching stored coordinates.
type CubicCut struct {
	CutObjectBase
	control1X, control1Y int
	control2X, control2Y int
}

// NewCubicCut constructs a CubicCut with rounded integer endpoints and
// control points, control1 nearest start and control2 nearest end.
func NewCubicCut(start, control1, control2, end geom.Point, passes int) *CubicCut {
	c1 := control1.Round()
	c2 := control2.Round()
	return &CubicCut{
		CutObjectBase: NewBase(start, end, passes),
		control1X:     int(c1.X), control1Y: int(c1.Y),
		control2X: int(c2.X), control2Y: int(c2.Y),
	}
}

// C1 returns the control point nearest the current Start.
func (c *CubicCut) C1() geom.Point {
	if c.Normal() {
		return geom.Pt(float64(c.control1X), float64(c.control1Y))
	}
	return geom.Pt(float64(c.control2X), float64(c.control2Y))
}

// C2 returns the control point nearest the current End.
func (c *CubicCut) C2() geom.Point {
	if c.Normal() {
		return geom.Pt(float64(c.control2X), float64(c.control2Y))
	}
	return geom.Pt(float64(c.control1X), float64(c.control1Y))
}

func (c *CubicCut) Length() float64 {
	c1, c2 := c.C1(), c.C2()
	return c.Start().Distance(c1) + c1.Distance(c2) + c2.Distance(c.End())
}

func (c *CubicCut) Generator() []plot.Step {
	s, c1, c2, e := c.Start(), c.C1(), c.C2(), c.End()
	return plot.CubicBezier(
		int(s.X), int(s.Y),
		int(c1.X), int(c1.Y),
		int(c2.X), int(c2.Y),
		int(e.X), int(e.Y),
	)
}

// Point evaluates the cubic Bézier at parameter t in [0,1].
func (c *CubicCut) Point(t float64) geom.Point {
	s, c1, c2, e := c.Start(), c.C1(), c.C2(), c.End()
	u := 1 - t
	return geom.Pt(
		u*u*u*s.X+3*u*u*t*c1.X+3*u*t*t*c2.X+t*t*t*e.X,
		u*u*u*s.Y+3*u*u*t*c1.Y+3*u*t*t*c2.Y+t*t*t*e.Y,
	)
}

func (c *CubicCut) Flat() []CutObject { return scalarFlat(c) }
func (c *CubicCut) Candidate() []CutObject { return scalarCandidate(c) }
