package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// RawCut is an ordered, non-shape list of (x, y, laser-on) steps — the
// output of a plotter already baked into device units, or imported
// raw-move data that doesn't correspond to a single geometric primitive.
//
// Reverse reverses the point list only; each point's laser-on flag stays
// attached to that point:
// laser-on is the step *into* a pixel, not out of it, so simple list
// reversal without flag-shifting is the correct convention for downstream
// devices that share that model.
type RawCut struct {
	CutObjectBase
	plot []plot.Step
}

// NewRawCut constructs an empty RawCut; points are added with Append.
func NewRawCut(passes int) *RawCut {
	if passes <= 0 {
		passes = 1
	}
	return &RawCut{
		CutObjectBase: CutObjectBase{passes: passes, passIndex: -1, normal: true, first: true, last: true},
	}
}

// Append adds one (x, y, laser-on) step to the end of the raw plot list.
func (c *RawCut) Append(x, y int, laserOn bool) {
	c.plot = append(c.plot, plot.Step{X: x, Y: y, On: laserOn})
}

// Extend appends a batch of steps in order.
func (c *RawCut) Extend(steps []plot.Step) {
	c.plot = append(c.plot, steps...)
}

// Len reports the number of recorded steps.
func (c *RawCut) Len() int { return len(c.plot) }

func (c *RawCut) Start() geom.Point {
	if len(c.plot) == 0 {
		return geom.Point{}
	}
	return geom.Pt(float64(c.plot[0].X), float64(c.plot[0].Y))
}

func (c *RawCut) End() geom.Point {
	if len(c.plot) == 0 {
		return geom.Point{}
	}
	last := c.plot[len(c.plot)-1]
	return geom.Pt(float64(last.X), float64(last.Y))
}

func (c *RawCut) SetStart(p geom.Point) {
	if len(c.plot) == 0 {
		c.plot = append(c.plot, plot.Step{X: int(p.X), Y: int(p.Y), On: true})
		return
	}
	c.plot[0].X, c.plot[0].Y = int(p.X), int(p.Y)
}

func (c *RawCut) SetEnd(p geom.Point) {
	if len(c.plot) == 0 {
		c.plot = append(c.plot, plot.Step{X: int(p.X), Y: int(p.Y), On: true})
		return
	}
	last := len(c.plot) - 1
	c.plot[last].X, c.plot[last].Y = int(p.X), int(p.Y)
}

// Length sums Euclidean distance between consecutive steps.
func (c *RawCut) Length() float64 {
	total := 0.0
	for i := 1; i < len(c.plot); i++ {
		a := geom.Pt(float64(c.plot[i-1].X), float64(c.plot[i-1].Y))
		b := geom.Pt(float64(c.plot[i].X), float64(c.plot[i].Y))
		total += a.Distance(b)
	}
	return total
}

// Generator returns the raw step list directly; it is already
// device-accurate pixel data.
func (c *RawCut) Generator() []plot.Step {
	out := make([]plot.Step, len(c.plot))
	copy(out, c.plot)
	return out
}

// Point returns the step nearest fractional position t along the list by
// index (RawCut has no closed-form parameterization).
func (c *RawCut) Point(t float64) geom.Point {
	if len(c.plot) == 0 {
		return geom.Point{}
	}
	idx := int(t * float64(len(c.plot)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.plot) {
		idx = len(c.plot) - 1
	}
	return geom.Pt(float64(c.plot[idx].X), float64(c.plot[idx].Y))
}

// Reverse reverses the step order in place; laser-on flags travel with
// their point (see type doc comment).
func (c *RawCut) Reverse() {
	for i, j := 0, len(c.plot)-1; i < j; i, j = i+1, j-1 {
		c.plot[i], c.plot[j] = c.plot[j], c.plot[i]
	}
}

func (c *RawCut) Flat() []CutObject { return scalarFlat(c) }
func (c *RawCut) Candidate() []CutObject { return scalarCandidate(c) }
