package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// SetOriginCut is a zero-length, non-reversible marker that relocates the
// device's logical origin without burning. SetCurrent, when true, means
// "set origin to the device's current position" rather than to an
// explicit offset.
type SetOriginCut struct {
	CutObjectBase
	SetCurrent bool
}

// NewSetOriginCut constructs a SetOriginCut at the given offset.
func NewSetOriginCut(offset geom.Point, passes int) *SetOriginCut {
	base := NewBase(offset, offset, passes)
	base.first, base.last = true, true
	return &SetOriginCut{CutObjectBase: base}
}

// NewSetOriginCutToCurrent constructs a SetOriginCut that relocates the
// origin to wherever the device currently sits, ignoring any offset.
func NewSetOriginCutToCurrent(passes int) *SetOriginCut {
	c := NewSetOriginCut(geom.Point{}, passes)
	c.SetCurrent = true
	return c
}

func (c *SetOriginCut) Length() float64 { return 0 }

func (c *SetOriginCut) Generator() []plot.Step {
	s := c.Start()
	return []plot.Step{{X: int(s.X), Y: int(s.Y), On: false}}
}

func (c *SetOriginCut) Point(float64) geom.Point { return c.Start() }

func (c *SetOriginCut) Reversible() bool { return false }
func (c *SetOriginCut) Reverse() {}

func (c *SetOriginCut) Flat() []CutObject { return scalarFlat(c) }
func (c *SetOriginCut) Candidate() []CutObject { return scalarCandidate(c) }
