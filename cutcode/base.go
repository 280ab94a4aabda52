package cutcode

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/plot"
)

// Settings carries the laser parameters (power, speed, frequency, ...) that
// apply to a cut. It is an opaque bag shared by pointer identity: many cuts
// produced by the same operation point at the exact same *Settings value,
// and the merge predicate (travel package) compares pointers, never
// contents, so settings identity survives op copies.
type Settings struct {
	Values map[string]any
}

// CutObject is the capability interface every cut primitive and CutGroup
// satisfies. Start/End/Reverse respect the object's current direction;
// Flat/Candidate are the traversal primitives the travel optimizer drives.
type CutObject interface {
	Start() geom.Point
	End() geom.Point
	SetStart(p geom.Point)
	SetEnd(p geom.Point)

	Length() float64
	Generator() []plot.Step
	Point(t float64) geom.Point

	Reverse()
	Reversible() bool

	// Flat yields this object if it is scalar, or all descendant scalars
	// depth-first if it is a CutGroup.
	Flat() []CutObject

	// Candidate yields this object iff it is not yet fully burned. Groups
	// delegate the inner-first/grouped-inner policy to the travel package;
	// this basic form only gates on burns-done-vs-passes.
	Candidate() []CutObject

	IsBurned() bool
	Passes() int
	SetPasses(n int)
	BurnsDone() int
	SetBurnsDone(n int)

	Parent() *CutGroup
	SetParent(g *CutGroup)

	Previous() CutObject
	SetPrevious(o CutObject)
	Next() CutObject
	SetNext(o CutObject)

	Normal() bool
	First() bool
	SetFirst(bool)
	Last() bool
	SetLast(bool)
	Closed() bool
	SetClosed(bool)

	OriginalOp() string
	SetOriginalOp(string)
	PassIndex() int
	SetPassIndex(int)

	Settings() *Settings
	SetSettings(*Settings)
}

// CutObjectBase implements the fields and bookkeeping shared by every
// scalar cut primitive. Integer primitives (LineCut, QuadCut, CubicCut,
// DwellCut, SetOriginCut) store startX/startY/endX/endY directly here;
// RawCut and CutGroup override Start/End/Length/Generator/Point because
// their geometry is not a single (start,end) pair.
//
// Parent is a plain pointer rather than an arena-index weak handle:
// Go's tracing garbage collector reclaims the parent<->child cycle, so a
// direct pointer carries no leak risk and keeping it avoids an
// indirection with no payoff in this runtime.
type CutObjectBase struct {
	startX, startY int
	endX, endY     int

	normal bool

	passes    int
	burnsDone int

	parent   *CutGroup
	previous CutObject
	next     CutObject

	first  bool
	last   bool
	closed bool

	originalOp string
	passIndex  int

	settings *Settings
}

// NewBase constructs a CutObjectBase with rounded integer endpoints,
// default passes=1, and normal direction.
func NewBase(start, end geom.Point, passes int) CutObjectBase {
	if passes <= 0 {
		passes = 1
	}
	s := start.Round()
	e := end.Round()
	return CutObjectBase{
		startX: int(s.X), startY: int(s.Y),
		endX: int(e.X), endY: int(e.Y),
		normal:    true,
		passes:    passes,
		passIndex: -1,
	}
}

func (b *CutObjectBase) Start() geom.Point {
	if b.normal {
		return geom.Pt(float64(b.startX), float64(b.startY))
	}
	return geom.Pt(float64(b.endX), float64(b.endY))
}

func (b *CutObjectBase) End() geom.Point {
	if b.normal {
		return geom.Pt(float64(b.endX), float64(b.endY))
	}
	return geom.Pt(float64(b.startX), float64(b.startY))
}

// SetStart respects the current direction: the underlying storage slot
// that setting mutates depends on normal.
func (b *CutObjectBase) SetStart(p geom.Point) {
	r := p.Round()
	if b.normal {
		b.startX, b.startY = int(r.X), int(r.Y)
	} else {
		b.endX, b.endY = int(r.X), int(r.Y)
	}
}

func (b *CutObjectBase) SetEnd(p geom.Point) {
	r := p.Round()
	if b.normal {
		b.endX, b.endY = int(r.X), int(r.Y)
	} else {
		b.startX, b.startY = int(r.X), int(r.Y)
	}
}

func (b *CutObjectBase) Reversible() bool { return true }

func (b *CutObjectBase) Reverse() { b.normal = !b.normal }

func (b *CutObjectBase) Normal() bool { return b.normal }

func (b *CutObjectBase) Passes() int { return b.passes }
func (b *CutObjectBase) SetPasses(n int) { b.passes = n }
func (b *CutObjectBase) BurnsDone() int { return b.burnsDone }
func (b *CutObjectBase) IsBurned() bool { return b.burnsDone >= b.passes }

// SetBurnsDone maintains the parent's burns_done as the minimum across
// children, and sets burn_started once any child has burned.
func (b *CutObjectBase) SetBurnsDone(n int) {
	b.burnsDone = n
	if b.parent == nil {
		return
	}
	if n == 0 {
		b.parent.burnsDone = 0
		b.parent.BurnStarted = false
		return
	}
	min := n
	for _, c := range b.parent.Children {
		if d := c.BurnsDone(); d < min {
			min = d
		}
	}
	b.parent.BurnStarted = true
	b.parent.burnsDone = min
}

func (b *CutObjectBase) Parent() *CutGroup { return b.parent }
func (b *CutObjectBase) SetParent(g *CutGroup) { b.parent = g }
func (b *CutObjectBase) Previous() CutObject { return b.previous }
func (b *CutObjectBase) SetPrevious(o CutObject) { b.previous = o }
func (b *CutObjectBase) Next() CutObject { return b.next }
func (b *CutObjectBase) SetNext(o CutObject) { b.next = o }

func (b *CutObjectBase) First() bool { return b.first }
func (b *CutObjectBase) SetFirst(v bool) { b.first = v }
func (b *CutObjectBase) Last() bool { return b.last }
func (b *CutObjectBase) SetLast(v bool) { b.last = v }
func (b *CutObjectBase) Closed() bool { return b.closed }
func (b *CutObjectBase) SetClosed(v bool) { b.closed = v }

func (b *CutObjectBase) OriginalOp() string { return b.originalOp }
func (b *CutObjectBase) SetOriginalOp(op string) { b.originalOp = op }
func (b *CutObjectBase) PassIndex() int { return b.passIndex }
func (b *CutObjectBase) SetPassIndex(idx int) { b.passIndex = idx }

func (b *CutObjectBase) Settings() *Settings { return b.settings }
func (b *CutObjectBase) SetSettings(s *Settings) { b.settings = s }

// scalarFlat and scalarCandidate are shared by every non-group CutObject:
// a scalar flattens to itself, and is its own sole candidate while unburned.
func scalarFlat(self CutObject) []CutObject { return []CutObject{self} }

func scalarCandidate(self CutObject) []CutObject {
	if self.IsBurned() {
		return nil
	}
	return []CutObject{self}
}
