package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// CutGroup is an ordered collection of cuts or subgroups that preserves
// the relationship between members of a closed path, or any other set of
// cuts the planner wants treated as a unit (an op's cutcode, a piece, a
// hatch-fill skip group).
//
// Contains/Inside form the bidirectional containment DAG:
// populated once per contain.InnerFirstIdent call, read-only
// thereafter until Clear. Group-level Candidate here is the naive
// fallback — flatten every unburned descendant with no inner-first
// ordering; the policy-aware inner-first / grouped-inner traversal lives
// in package travel, operating directly on Children/Contains/Inside
// rather than through the CutObject interface, since it needs
// simultaneous visibility across many sibling groups that a single
// object's Candidate() cannot provide.
type CutGroup struct {
	CutObjectBase

	Children []CutObject

	Constrained bool
	BurnStarted bool
	Skip        bool
	Origin      *geom.Point

	// Contains holds groups nested inside this one (this group is outer);
	// Inside holds groups that contain this one (this group is inner).
	// Maintained as a bidirectional pair by contain.InnerFirstIdent.
	Contains []*CutGroup
	Inside   []*CutGroup
}

// NewCutGroup constructs an empty, open CutGroup.
func NewCutGroup(passes int) *CutGroup {
	if passes <= 0 {
		passes = 1
	}
	return &CutGroup{
		CutObjectBase: CutObjectBase{passes: passes, passIndex: -1, normal: true},
	}
}

// Append adds a child, sets its parent back-pointer, and links it into
// the subpath chain: the previous tail's Next becomes child, child's
// Previous becomes that tail. The travel optimizer walks these links to
// continue an interrupted subpath before searching for the nearest cut.
func (g *CutGroup) Append(child CutObject) {
	child.SetParent(g)
	if n := len(g.Children); n > 0 {
		// A multi-pass cut can be appended twice in a row; never self-link.
		if tail := g.Children[n-1]; tail != child {
			tail.SetNext(child)
			child.SetPrevious(tail)
		}
	}
	g.Children = append(g.Children, child)
}

func (g *CutGroup) Start() geom.Point {
	if len(g.Children) == 0 {
		return geom.Point{}
	}
	if g.Normal() {
		return g.Children[0].Start()
	}
	return g.Children[len(g.Children)-1].End()
}

func (g *CutGroup) End() geom.Point {
	if len(g.Children) == 0 {
		return geom.Point{}
	}
	if g.Normal() {
		return g.Children[len(g.Children)-1].End()
	}
	return g.Children[0].Start()
}

func (g *CutGroup) SetStart(p geom.Point) {
	if len(g.Children) == 0 {
		return
	}
	if g.Normal() {
		g.Children[0].SetStart(p)
	} else {
		g.Children[len(g.Children)-1].SetEnd(p)
	}
}

func (g *CutGroup) SetEnd(p geom.Point) {
	if len(g.Children) == 0 {
		return
	}
	if g.Normal() {
		g.Children[len(g.Children)-1].SetEnd(p)
	} else {
		g.Children[0].SetStart(p)
	}
}

// Length sums child lengths.
func (g *CutGroup) Length() float64 {
	total := 0.0
	for _, c := range g.Children {
		total += c.Length()
	}
	return total
}

// Generator concatenates children's generators in child order.
func (g *CutGroup) Generator() []plot.Step {
	out := make([]plot.Step, 0)
	for _, c := range g.Children {
		out = append(out, c.Generator()...)
	}
	return out
}

// Point is only meaningful for scalar cuts sampled during containment
// testing; for a group it linearly interpolates Start->End as a
// reasonable degenerate fallback.
func (g *CutGroup) Point(t float64) geom.Point {
	return g.Start().Lerp(g.End(), t)
}

// Reversible is always false: groups are reversed only by re-sequencing
// their children, never by flipping Normal.
func (g *CutGroup) Reversible() bool { return false }
func (g *CutGroup) Reverse() {}

// Flat depth-first flattens all descendant scalar cuts.
func (g *CutGroup) Flat() []CutObject {
	out := make([]CutObject, 0, len(g.Children))
	for _, c := range g.Children {
		out = append(out, c.Flat()...)
	}
	return out
}

// Candidate is the naive fallback: every unburned descendant scalar, no
// inner-first ordering. See type doc comment.
func (g *CutGroup) Candidate() []CutObject {
	out := make([]CutObject, 0)
	for _, c := range g.Flat() {
		if !c.IsBurned() {
			out = append(out, c)
		}
	}
	return out
}

// ContainsBurnedGroup reports whether any directly-contained inner group
// has begun burning.
func (g *CutGroup) ContainsBurnedGroup() bool {
	for _, inner := range g.Contains {
		if inner.BurnStarted {
			return true
		}
	}
	return false
}

// ContainsUnburnedGroup reports whether any directly-contained inner group
// still has unburned passes.
func (g *CutGroup) ContainsUnburnedGroup() bool {
	for _, inner := range g.Contains {
		if inner.BurnsDone() < inner.Passes() {
			return true
		}
	}
	return false
}

// Clear resets the containment relation, ready for a fresh
// inner_first_ident pass.
func (g *CutGroup) Clear() {
	g.Contains = nil
	g.Inside = nil
	g.Constrained = false
}
