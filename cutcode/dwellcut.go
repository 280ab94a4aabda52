package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// DwellCut is a degenerate, standalone pause at a single point: the laser
// fires in place for a dwell period rather than traversing a path.
// First and Last are always true and it is never reversible.
type DwellCut struct {
	CutObjectBase
	DwellTime float64 // seconds the laser dwells at the point
}

// NewDwellCut constructs a DwellCut at p for the given dwell duration.
func NewDwellCut(p geom.Point, dwellTime float64, passes int) *DwellCut {
	base := NewBase(p, p, passes)
	base.first, base.last = true, true
	return &DwellCut{CutObjectBase: base, DwellTime: dwellTime}
}

func (c *DwellCut) Length() float64 { return 0 }

func (c *DwellCut) Generator() []plot.Step {
	s := c.Start()
	return []plot.Step{{X: int(s.X), Y: int(s.Y), On: true}}
}

func (c *DwellCut) Point(float64) geom.Point { return c.Start() }

func (c *DwellCut) Reversible() bool { return false }
func (c *DwellCut) Reverse() {} // no-op: a point has no direction

func (c *DwellCut) Flat() []CutObject { return scalarFlat(c) }
func (c *DwellCut) Candidate() []CutObject { return scalarCandidate(c) }
