package raster

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
)

// Cluster is one spatially coherent group of raster children, ready to be
// replaced in the plan by a shallow-copied "op raster" referencing only
// these members.
type Cluster struct {
	Members []*cutcode.RasterCut
	Bounds  geom.BBox
}

// Bucket partitions children into clusters whose members' bounding boxes,
// expanded by margin, transitively overlap, then runs a confirmation pass
// that rejects clusters formed only because the running union bbox grew
// large enough to bridge two regions whose actual members never touch —
// a union-bbox-bloat false positive. A cluster that
// fails confirmation is split into its true connected components using
// only direct per-member bbox overlap, the same BFS-over-adjacency shape
// as gridgraph's ConnectedComponents.
func Bucket(children []*cutcode.RasterCut, margin float64) []Cluster {
	n := len(children)
	if n == 0 {
		return nil
	}

	bounds := make([]geom.BBox, n)
	for i, c := range children {
		bounds[i] = c.Bounds()
	}

	loose := looseMerge(bounds, margin)

	out := make([]Cluster, 0, len(loose))
	for _, members := range loose {
		for _, comp := range confirm(members, bounds, margin) {
			out = append(out, buildCluster(comp, children, bounds))
		}
	}
	return out
}

// looseMerge runs the cheap, bloat-prone pass: clusters start as
// singletons and merge whenever their accumulated union bbox (not the
// individual members') overlaps another cluster's.
func looseMerge(bounds []geom.BBox, margin float64) [][]int {
	n := len(bounds)
	clusters := make([][]int, n)
	unionBBox := make([]geom.BBox, n)
	for i := range bounds {
		clusters[i] = []int{i}
		unionBBox[i] = bounds[i].Expand(margin)
	}

	for {
		merged := false
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				if !unionBBox[i].Overlaps(unionBBox[j]) {
					continue
				}
				clusters[i] = append(clusters[i], clusters[j]...)
				unionBBox[i] = unionBBox[i].Union(unionBBox[j])

				clusters = append(clusters[:j], clusters[j+1:]...)
				unionBBox = append(unionBBox[:j], unionBBox[j+1:]...)
				merged = true
				break
			}
			if merged {
				break
			}
		}
		if !merged {
			break
		}
	}
	return clusters
}

// confirm reduces members to its true connected components under direct
// per-member bbox overlap (expanded by margin), discarding any bridging
// that only existed at the union level.
func confirm(members []int, bounds []geom.BBox, margin float64) [][]int {
	if len(members) <= 1 {
		return [][]int{members}
	}

	visited := make(map[int]bool, len(members))
	var comps [][]int
	for _, seed := range members {
		if visited[seed] {
			continue
		}
		queue := []int{seed}
		visited[seed] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			comp = append(comp, idx)
			for _, cand := range members {
				if visited[cand] {
					continue
				}
				if bounds[idx].Expand(margin).Overlaps(bounds[cand].Expand(margin)) {
					visited[cand] = true
					queue = append(queue, cand)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

func buildCluster(members []int, children []*cutcode.RasterCut, bounds []geom.BBox) Cluster {
	box := geom.EmptyBBox()
	out := make([]*cutcode.RasterCut, len(members))
	for i, idx := range members {
		out[i] = children[idx]
		box = box.Union(bounds[idx])
	}
	return Cluster{Members: out, Bounds: box}
}
