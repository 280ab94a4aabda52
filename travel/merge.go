package travel

import "github.com/katalvlaran/lasercore/cutcode"

const utilOpPrefix = "util "

func isUtilOp(originalOp string) bool {
	return len(originalOp) >= len(utilOpPrefix) && originalOp[:len(utilOpPrefix)] == utilOpPrefix
}

// ShouldMerge decides whether the accumulator acc may absorb next. Merge
// only when all hold: both sides are non-empty, neither side came from a
// util op, pass indices match (unless MergePasses), settings share
// identity (unless MergeOps), and a cut op only merges under InnerFirst.
func ShouldMerge(acc, next *cutcode.CutCode, opts Options) bool {
	if len(acc.Children) == 0 || len(next.Children) == 0 {
		return false
	}
	accOp := acc.OriginalOp()
	nextOp := next.OriginalOp()
	if isUtilOp(accOp) || isUtilOp(nextOp) {
		return false
	}
	if !opts.MergePasses && acc.PassIndex() != next.PassIndex() {
		return false
	}
	if !opts.MergeOps && acc.Settings() != next.Settings() {
		return false
	}
	if !opts.InnerFirst && accOp == "op cut" {
		return false
	}
	return true
}

// MergeCutCode concatenates cutcodes whenever ShouldMerge allows it,
// walking the blobbed plan in order. A merged accumulator becomes
// constrained if any item folded into it was constrained.
func MergeCutCode(items []*cutcode.CutCode, opts Options) []*cutcode.CutCode {
	if len(items) == 0 {
		return nil
	}
	out := make([]*cutcode.CutCode, 0, len(items))
	acc := items[0]
	for _, next := range items[1:] {
		if ShouldMerge(acc, next, opts) {
			if next.Constrained {
				acc.Constrained = true
			}
			for _, child := range next.Children {
				acc.Append(child)
			}
			continue
		}
		out = append(out, acc)
		acc = next
	}
	out = append(out, acc)
	return out
}
