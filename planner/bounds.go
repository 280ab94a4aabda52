package planner

import "github.com/katalvlaran/lasercore/geom"

// viewportCorners returns the four corners of an axis-aligned box in a
// fixed winding order, ready to be transformed by a placement matrix.
func viewportCorners(box geom.BBox) [4]geom.Point {
	return [4]geom.Point{
		geom.Pt(box.MinX, box.MinY),
		geom.Pt(box.MaxX, box.MinY),
		geom.Pt(box.MaxX, box.MaxY),
		geom.Pt(box.MinX, box.MaxY),
	}
}

// computeBounds unions the device viewport, transformed by every
// placement's matrix, into one job bounding box, and returns the convex
// hull of every transformed corner as the job outline.
func computeBounds(placements []Placement, viewport geom.BBox) (geom.BBox, []geom.Point) {
	bounds := geom.EmptyBBox()
	pts := make([]geom.Point, 0, 4*len(placements))
	corners := viewportCorners(viewport)
	for _, pl := range placements {
		for _, c := range corners {
			tc := pl.Matrix.Apply(c)
			bounds = bounds.UnionPoint(tc)
			pts = append(pts, tc)
		}
	}
	return bounds, geom.ConvexHull(pts)
}

// Bounds returns the job bounds computed by the most recent Preprocess
// call.
func (p *CutPlan) Bounds() geom.BBox { return p.previousBounds }
