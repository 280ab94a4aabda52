package cutcode

import "github.com/katalvlaran/lasercore/geom"

// CutCode is the top-level CutGroup handed to the spooler: one CutCode per
// blobbed operation (or per merged run of compatible operations). Output
// gates whether the spooler should actually energize the laser for this
// run (some util ops produce CutCode purely to sequence console/motion
// commands). StartOverride, when non-nil on the plan's first CutCode, pins
// the optimizer's initial position instead of the default origin.
type CutCode struct {
	CutGroup

	Output        bool
	Mode          string
	StartOverride *geom.Point
}

// NewCutCode constructs an empty, output-enabled CutCode.
func NewCutCode(passes int) *CutCode {
	cc := &CutCode{CutGroup: *NewCutGroup(passes), Output: true}
	return cc
}

// Start returns StartOverride if set, otherwise the usual first-child
// derivation.
func (cc *CutCode) Start() geom.Point {
	if cc.StartOverride != nil {
		return *cc.StartOverride
	}
	return cc.CutGroup.Start()
}
