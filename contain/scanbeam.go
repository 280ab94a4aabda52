package contain

import (
	"math"
	"sort"

	"github.com/katalvlaran/lasercore/geom"
)

// edge is one polygon side, normalized so lowY <= highY.
type edge struct {
	lowY, highY float64
	x0, y0      float64 // the low-Y endpoint
	invSlope    float64 // dx/dy; used to evaluate x at a given y
}

func newEdge(a, b geom.Point) (edge, bool) {
	if a.Y == b.Y {
		return edge{}, false // horizontal edges never change the crossing parity
	}
	lo, hi := a, b
	if lo.Y > hi.Y {
		lo, hi = hi, lo
	}
	return edge{
		lowY: lo.Y, highY: hi.Y,
		x0: lo.X, y0: lo.Y,
		invSlope: (hi.X - lo.X) / (hi.Y - lo.Y),
	}, true
}

func (e edge) xAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.invSlope
}

// Monotonizer is a scan-beam structure over a closed polygon's edges,
// indexed by y-extent. It supports CrossingCountLeft, counting edges whose
// span contains y and whose x-at-y lies left of the query x — the
// even-odd rule test used by IsPointInside.
//
// Edges are sorted lazily on first use;
// repeated queries at the same y reuse the previously computed
// active set instead of rescanning every edge.
type Monotonizer struct {
	edges  []edge
	sorted bool

	cachedY      float64
	cachedActive []edge
	haveCache    bool
}

// NewMonotonizer builds a Monotonizer from a closed polygon given as an
// ordered point loop (the edge from the last point back to the first is
// included automatically).
func NewMonotonizer(poly []geom.Point) *Monotonizer {
	m := &Monotonizer{edges: make([]edge, 0, len(poly))}
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if e, ok := newEdge(a, b); ok {
			m.edges = append(m.edges, e)
		}
	}
	return m
}

func (m *Monotonizer) ensureSorted() {
	if m.sorted {
		return
	}
	sort.Slice(m.edges, func(i, j int) bool { return m.edges[i].lowY < m.edges[j].lowY })
	m.sorted = true
}

// active returns the edges whose [lowY,highY) span contains y, caching
// the result for repeated queries at an identical y.
func (m *Monotonizer) active(y float64) []edge {
	m.ensureSorted()
	if m.haveCache && m.cachedY == y {
		return m.cachedActive
	}
	active := m.cachedActive[:0]
	for _, e := range m.edges {
		if y >= e.lowY && y < e.highY {
			active = append(active, e)
		}
	}
	m.cachedActive = active
	m.cachedY = y
	m.haveCache = true
	return active
}

// CrossingCountLeft returns how many active edges at height y have their
// x-at-y strictly left of x.
func (m *Monotonizer) CrossingCountLeft(x, y float64) int {
	count := 0
	for _, e := range m.active(y) {
		if e.xAtY(y) < x {
			count++
		}
	}
	return count
}

// IsPointInside reports whether (x,y) is inside the polygon under the
// even-odd scanline rule.
func (m *Monotonizer) IsPointInside(p geom.Point) bool {
	return m.CrossingCountLeft(p.X, p.Y)%2 == 1
}

// inflatePoly returns poly with every vertex pushed outward by delta
// device units along the ray from the polygon's centroid through that
// vertex. delta may be negative to shrink the polygon instead. A vertex
// coincident with the centroid (degenerate polygon) is left unmoved,
// since it has no outward direction to push along.
func inflatePoly(poly []geom.Point, delta float64) []geom.Point {
	if delta == 0 || len(poly) == 0 {
		return poly
	}
	centroid := geom.Point{}
	for _, p := range poly {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(poly)))

	out := make([]geom.Point, len(poly))
	for i, p := range poly {
		dir := p.Sub(centroid)
		d := dir.Distance(geom.Point{})
		if d == 0 {
			out[i] = p
			continue
		}
		out[i] = p.Add(dir.Scale(delta / d))
	}
	return out
}

// SampleUniform returns n points sampled at uniform parameter along poly's
// perimeter (treating it as a closed piecewise-linear path), used both to
// approximate a curved outer boundary with a dense polygon and to sample
// an inner path's test points.
func SampleUniform(poly []geom.Point, n int) []geom.Point {
	if len(poly) == 0 || n <= 0 {
		return nil
	}
	perim := make([]float64, len(poly))
	total := 0.0
	for i := range poly {
		total += poly[i].Distance(poly[(i+1)%len(poly)])
		perim[i] = total
	}
	if total == 0 {
		out := make([]geom.Point, n)
		for i := range out {
			out[i] = poly[0]
		}
		return out
	}

	out := make([]geom.Point, 0, n)
	for i := 0; i < n; i++ {
		target := total * float64(i) / float64(n)
		out = append(out, pointAtArcLength(poly, perim, target, total))
	}
	return out
}

func pointAtArcLength(poly []geom.Point, cumulative []float64, target, total float64) geom.Point {
	for i := range poly {
		segStart := 0.0
		if i > 0 {
			segStart = cumulative[i-1]
		}
		segEnd := cumulative[i]
		if target <= segEnd || i == len(poly)-1 {
			segLen := segEnd - segStart
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			if segLen <= 0 {
				return a
			}
			t := (target - segStart) / segLen
			return a.Lerp(b, math.Max(0, math.Min(1, t)))
		}
	}
	return poly[0]
}
