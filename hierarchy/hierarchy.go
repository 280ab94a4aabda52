package hierarchy

import "github.com/katalvlaran/lasercore/cutcode"

// HierarchyContext builds and exposes the level structure over a set of
// top-level CutGroups that have already been through
// contain.InnerFirstIdent (so their Contains/Inside fields are
// populated).
type HierarchyContext struct {
	levels [][]*cutcode.CutGroup // levels[0] = outermost
}

// BuildHierarchy assigns each group a level equal to the number of
// distinct ancestors reachable through Inside (how many groups contain
// it): groups with no Inside are
// level 0, a group contained by exactly one outer group is level 1, and
// so on. Groups that are never the outer or inner side of any containment
// relation land at level 0 alongside true outermost shapes — there is
// nothing to nest them under.
func BuildHierarchy(groups []*cutcode.CutGroup) *HierarchyContext {
	hc := &HierarchyContext{}
	for _, g := range groups {
		level := depth(g)
		for len(hc.levels) <= level {
			hc.levels = append(hc.levels, nil)
		}
		hc.levels[level] = append(hc.levels[level], g)
	}
	return hc
}

// depth counts the distinct containing ancestors of g by following every
// Inside link transitively, so it does not depend on whether Inside lists
// only the immediate outer (a hand-built chain) or every outer that
// contains g (as contain.InnerFirstIdent records it). The visited set
// also stops a malformed, cyclic caller-supplied DAG from looping forever.
func depth(g *cutcode.CutGroup) int {
	seen := map[*cutcode.CutGroup]bool{g: true}
	queue := append([]*cutcode.CutGroup(nil), g.Inside...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		queue = append(queue, cur.Inside...)
	}
	return len(seen) - 1
}

// GetProcessingOrder returns every level, deepest (most-nested) first,
// ready for a hierarchical optimizer to iterate innermost to outermost.
func (hc *HierarchyContext) GetProcessingOrder() [][]*cutcode.CutGroup {
	out := make([][]*cutcode.CutGroup, len(hc.levels))
	for i, level := range hc.levels {
		out[len(hc.levels)-1-i] = level
	}
	return out
}

// LevelCount reports how many distinct nesting levels were found.
func (hc *HierarchyContext) LevelCount() int { return len(hc.levels) }
