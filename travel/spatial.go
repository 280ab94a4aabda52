package travel

import (
	"math"

	"github.com/katalvlaran/lasercore/geom"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// cellKey identifies one bucket of the spatial grid partition, adapted
// from gridgraph's integer (x,y) cell addressing — here the cells are
// float-sized buckets over scene coordinates rather than unit terrain
// cells.
type cellKey struct{ cx, cy int }

// grid buckets candidates by their Start() point for fast ring-expansion
// nearest lookups, used by the spatial tier below KDTreeMinN candidates
// and as the fallback when the k-d tree finds nothing.
type grid struct {
	cellSize float64
	buckets  map[cellKey][]int // index into the backing candidate slice
}

func newGrid(cands []candidateCut, cellSize float64) *grid {
	g := &grid{cellSize: cellSize, buckets: make(map[cellKey][]int, len(cands))}
	for i, c := range cands {
		k := g.keyOf(c.obj.Start())
		g.buckets[k] = append(g.buckets[k], i)
	}
	return g
}

func (g *grid) keyOf(p geom.Point) cellKey {
	return cellKey{int(math.Floor(p.X / g.cellSize)), int(math.Floor(p.Y / g.cellSize))}
}

// nearestIndex expands outward ring by ring from pos's cell until no
// unscanned ring could hold a point closer than the best one found.
func (g *grid) nearestIndex(pos geom.Point, cands []candidateCut) (int, float64, bool) {
	origin := g.keyOf(pos)
	bestIdx := -1
	bestDist := math.Inf(1)

	for ring := 0; ; ring++ {
		// Every cell of this ring lies at least (ring-1) cell widths from
		// pos, and every later ring farther still.
		if bestIdx >= 0 && float64(ring-1)*g.cellSize >= bestDist {
			break
		}
		found := false
		for dx := -ring; dx <= ring; dx++ {
			for dy := -ring; dy <= ring; dy++ {
				if ring > 0 && abs(dx) != ring && abs(dy) != ring {
					continue // interior of this ring was already scanned
				}
				key := cellKey{origin.cx + dx, origin.cy + dy}
				bucket, ok := g.buckets[key]
				if !ok {
					continue
				}
				found = true
				for _, idx := range bucket {
					d := pos.Distance(cands[idx].obj.Start())
					if d < bestDist {
						bestDist, bestIdx = d, idx
					}
				}
			}
		}
		if ring > 4096 { // degenerate/empty grid guard
			break
		}
		if !found && bestIdx < 0 && ring > 0 && len(g.buckets) == 0 {
			break
		}
	}
	return bestIdx, bestDist, bestIdx >= 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// kdPoint is a 2-D kdtree.Comparable that carries the originating
// candidate's index, since gonum's built-in Point/Points types drop
// caller-defined identity once placed in the tree.
type kdPoint struct {
	x, y float64
	idx  int
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	if d == 0 {
		return p.x - q.x
	}
	return p.y - q.y
}

func (p kdPoint) Dims() int { return 2 }

func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	dx, dy := p.x-q.x, p.y-q.y
	return dx*dx + dy*dy
}

// kdPoints implements kdtree.Interface over a slice of kdPoint.
type kdPoints []kdPoint

func (ps kdPoints) Index(i int) kdtree.Comparable { return ps[i] }
func (ps kdPoints) Len() int { return len(ps) }

func (ps kdPoints) Slice(start, end int) kdtree.Interface { return ps[start:end] }

// Pivot partitions ps along dimension d and returns the index of the
// median element, as gonum's kdtree.Interface requires for tree
// construction. A full sort is more work than a true partition needs, but
// candidate counts at this tier (≤500) make the difference immaterial.
func (ps kdPoints) Pivot(d kdtree.Dim) int {
	less := func(i, j int) bool {
		if d == 0 {
			return ps[i].x < ps[j].x
		}
		return ps[i].y < ps[j].y
	}
	insertionSort(ps, less)
	return len(ps) / 2
}

func insertionSort(ps kdPoints, less func(i, j int) bool) {
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			ps[j], ps[j-1] = ps[j-1], ps[j]
		}
	}
}

// kdIndex wraps a built *kdtree.Tree for repeated nearest-point lookups
// against one fixed candidate snapshot.
type kdIndex struct {
	tree *kdtree.Tree
}

func newKDIndex(cands []candidateCut) *kdIndex {
	pts := make(kdPoints, len(cands))
	for i, c := range cands {
		s := c.obj.Start()
		pts[i] = kdPoint{x: s.X, y: s.Y, idx: i}
	}
	return &kdIndex{tree: kdtree.New(pts, false)}
}

func (k *kdIndex) nearestIndex(pos geom.Point) (int, float64, bool) {
	q := kdPoint{x: pos.X, y: pos.Y}
	got, distSq := k.tree.Nearest(q)
	if got == nil {
		return 0, 0, false
	}
	p := got.(kdPoint)
	return p.idx, math.Sqrt(distSq), true
}
