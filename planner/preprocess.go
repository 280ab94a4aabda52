package planner

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/op"
	"github.com/katalvlaran/lasercore/raster"
)

// Preprocess computes job bounds from the device
// viewport and every resolved placement matrix, optionally bucket raster
// ops, then for each placement push a wordlist frame and emit one
// (possibly coolant-bracketed) preprocessed copy of every op currently in
// Plan.
//
// placements may be empty, in which case a single identity-scaled
// placement stands in for it: a single identity-scaled scene-to-device
// matrix.
func (p *CutPlan) Preprocess(placements []Placement, deviceViewport geom.BBox) error {
	if len(placements) == 0 {
		placements = []Placement{{Matrix: geom.Identity()}}
	}

	p.previousBounds, p.Outline = computeBounds(placements, deviceViewport)

	if p.Options.RasterOptimisation {
		p.bucketRasterOps()
	}

	originals := p.opItems()
	out := make([]PlanItem, 0, len(p.Plan)*len(placements))

	for _, placement := range placements {
		release := p.WordList.Push(nil)
		for _, original := range originals {
			out = p.preprocessOneOp(out, original, placement.Matrix)
		}
		release()
		p.WordList.AdvanceAll()
	}

	p.Plan = out
	return nil
}

func (p *CutPlan) preprocessOneOp(out []PlanItem, original *op.Operation, matrix geom.Matrix) []PlanItem {
	declaresCoolant := original.Coolant != op.CoolantOff
	if declaresCoolant {
		out = append(out, consoleItem("coolant_on"))
	}

	clone := original.Copy()
	if clone.Preprocess != nil {
		clone.Preprocess(clone, matrix, p.log)
	}
	p.preprocessDescendants(clone, matrix)
	out = append(out, opItem(clone))

	if declaresCoolant {
		out = append(out, consoleItem("coolant_off"))
	}
	return out
}

// preprocessDescendants invokes every descendant's own preprocess hook,
// depth-first, after the node's own hook has already run (the node's
// geometry must be in its final placement-space form before any
// descendant that depends on it runs). Descendants carrying geometry are
// then simplified at Options.ReduceTolerance when Options.ReduceDetails
// is on, so downstream lowering sees the reduced polyline.
func (p *CutPlan) preprocessDescendants(node *op.Operation, matrix geom.Matrix) {
	for _, child := range node.Children {
		if child.Preprocess != nil {
			child.Preprocess(child, matrix, p.log)
		}
		if p.Options.ReduceDetails && len(child.Geometry) > 2 {
			child.Geometry = geom.Simplify(child.Geometry, p.Options.ReduceTolerance)
		}
		p.preprocessDescendants(child, matrix)
	}
}

// bucketRasterOps replaces each top-level "op raster" whose children
// lower to more than one spatially disjoint cluster (package raster) with
// one shallow-copied raster op per cluster, referencing only that
// cluster's members. An op whose children don't all
// lower to a single RasterCut each, or that clusters into one group, is
// left untouched.
func (p *CutPlan) bucketRasterOps() {
	out := make([]PlanItem, 0, len(p.Plan))
	for _, item := range p.Plan {
		if item.Op == nil || item.Op.Type != op.TypeRaster {
			out = append(out, item)
			continue
		}
		rasterOp := item.Op

		members := make([]*cutcode.RasterCut, 0, len(rasterOp.Children))
		owner := make(map[*cutcode.RasterCut]*op.Operation, len(rasterOp.Children))
		regular := true
		for _, child := range rasterOp.Children {
			if child.AsCutObjects == nil {
				regular = false
				break
			}
			var rc *cutcode.RasterCut
			if objs := child.AsCutObjects(child, p.Options.ClosedDistance, child.Passes); len(objs) == 1 {
				rc, _ = objs[0].(*cutcode.RasterCut)
			}
			if rc == nil {
				regular = false
				break
			}
			members = append(members, rc)
			owner[rc] = child
		}

		clusters := raster.Bucket(members, p.Options.RasterOptMargin)
		if !regular || len(clusters) <= 1 {
			out = append(out, item)
			continue
		}

		p.log("raster bucketing split one op into multiple sub-ops")
		for _, cl := range clusters {
			sub := *rasterOp
			sub.Children = make([]*op.Operation, 0, len(cl.Members))
			for _, rc := range cl.Members {
				sub.Children = append(sub.Children, owner[rc])
			}
			out = append(out, opItem(&sub))
		}
	}
	p.Plan = out
}
