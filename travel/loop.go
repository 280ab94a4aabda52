package travel

import "github.com/katalvlaran/lasercore/cutcode"

// LoopWrapper materializes one repetition of an op whose loops count
// exceeds 1. ExpandLoops lays a chain's wrappers out consecutively and
// CollapseLoops keeps only the first wrapper of each chain; the
// downstream device reconstructs the remaining physical passes via
// implicit_passes. Optimize and OptimizeJob take CutGroups, not wrappers,
// so the optimizer itself does not keep a chain together.
type LoopWrapper struct {
	*cutcode.CutCode

	// LoopIndex is this wrapper's zero-based position in its chain.
	LoopIndex int
	// Total is the chain's full loop count.
	Total int
}

// ExpandLoops replaces each items[i] whose loops[i] exceeds 1 with
// loops[i] consecutive LoopWrapper instances sharing the same underlying content.
// A non-positive loop count is treated as 1; the caller is expected to
// have already logged that condition to
// its diagnostic channel before calling this.
func ExpandLoops(items []*cutcode.CutCode, loops []int) []*LoopWrapper {
	out := make([]*LoopWrapper, 0, len(items))
	for i, cc := range items {
		n := 1
		if i < len(loops) && loops[i] > 1 {
			n = loops[i]
		}
		for idx := 0; idx < n; idx++ {
			out = append(out, &LoopWrapper{CutCode: cc, LoopIndex: idx, Total: n})
		}
	}
	return out
}

// CollapseLoops keeps only the first wrapper of every chain, in the order
// chains first appear, ready for the final spool stage.
func CollapseLoops(wrapped []*LoopWrapper) []*cutcode.CutCode {
	out := make([]*cutcode.CutCode, 0, len(wrapped))
	for _, w := range wrapped {
		if w.LoopIndex == 0 {
			out = append(out, w.CutCode)
		}
	}
	return out
}
