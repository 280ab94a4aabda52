package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// LineCut is a straight cut from Start to End, Bresenham-plottable.
type LineCut struct {
	CutObjectBase
}

// NewLineCut constructs a LineCut with passes desired burns.
func NewLineCut(start, end geom.Point, passes int) *LineCut {
	return &LineCut{CutObjectBase: NewBase(start, end, passes)}
}

func (c *LineCut) Length() float64 {
	return c.Start().Distance(c.End())
}

func (c *LineCut) Generator() []plot.Step {
	s, e := c.Start(), c.End()
	return plot.Line(int(s.X), int(s.Y), int(e.X), int(e.Y))
}

// Point linearly interpolates between Start and End at parameter t.
func (c *LineCut) Point(t float64) geom.Point {
	return c.Start().Lerp(c.End(), t)
}

func (c *LineCut) Flat() []CutObject { return scalarFlat(c) }
func (c *LineCut) Candidate() []CutObject { return scalarCandidate(c) }
