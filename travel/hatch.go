package travel

import "github.com/katalvlaran/lasercore/cutcode"

// ExtractSkipGroups splits groups into non-skip and skip-marked sets so
// each can be optimized separately and the skip set appended after,
// keeping hatch fills out of the main ordering pass.
//
// Critical safety rule: if every group is skip-marked, extraction is a
// no-op — returning all of them as the "non-skip" set — rather than
// returning an empty non-skip set and risking a caller that optimizes
// only the non-skip half ending up with nothing at all.
func ExtractSkipGroups(groups []*cutcode.CutGroup) (nonSkip, skip []*cutcode.CutGroup) {
	for _, g := range groups {
		if g.Skip {
			skip = append(skip, g)
		} else {
			nonSkip = append(nonSkip, g)
		}
	}
	if len(nonSkip) == 0 {
		return groups, nil
	}
	return nonSkip, skip
}
