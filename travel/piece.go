package travel

import (
	"sort"

	"github.com/katalvlaran/lasercore/cutcode"
)

// pieceCategory classifies a group within a piece for the grouped-inner
// ordering: pure-inners first, then both, then standalones, then outers.
type pieceCategory int

const (
	catPureInner pieceCategory = iota // has Inside, no Contains
	catBoth                           // has both Inside and Contains
	catStandalone                     // has neither
	catOuter                          // has Contains, no Inside
)

func categoryOf(g *cutcode.CutGroup) pieceCategory {
	hasInside := len(g.Inside) > 0
	hasContains := len(g.Contains) > 0
	switch {
	case hasInside && !hasContains:
		return catPureInner
	case hasInside && hasContains:
		return catBoth
	case !hasInside && !hasContains:
		return catStandalone
	default:
		return catOuter
	}
}

// piece is a maximal set of top-level CutGroups related, directly or
// transitively, by containment — treated as one indivisible unit under
// grouped-inner mode: each outer with a non-empty Contains seeds a
// piece, and the inners it owns join that same piece. Members are sorted
// pure-inner -> both -> standalone -> outer,
// the order candidates() walks them in to yield inner-first
// within the piece.
type piece struct {
	members []*cutcode.CutGroup
}

// partitionPieces partitions groups into pieces via union-find over the
// Contains/Inside relation already populated by contain.InnerFirstIdent:
// any two groups connected by either relation land in the same piece.
// A group with no containment relation to anything else in groups becomes
// a singleton piece. Piece order follows the position of each piece's
// earliest member in groups.
func partitionPieces(groups []*cutcode.CutGroup) []*piece {
	index := make(map[*cutcode.CutGroup]int, len(groups))
	parent := make([]int, len(groups))
	for i, g := range groups {
		index[g] = i
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for i, g := range groups {
		for _, o := range g.Contains {
			if j, ok := index[o]; ok {
				union(i, j)
			}
		}
		for _, o := range g.Inside {
			if j, ok := index[o]; ok {
				union(i, j)
			}
		}
	}

	order := make([]int, 0, len(groups))
	byRoot := make(map[int][]*cutcode.CutGroup, len(groups))
	for i, g := range groups {
		r := find(i)
		if _, seen := byRoot[r]; !seen {
			order = append(order, r)
		}
		byRoot[r] = append(byRoot[r], g)
	}

	pieces := make([]*piece, 0, len(order))
	for _, r := range order {
		members := byRoot[r]
		sort.SliceStable(members, func(i, j int) bool {
			return categoryOf(members[i]) < categoryOf(members[j])
		})
		pieces = append(pieces, &piece{members: members})
	}
	return pieces
}

// singletonPieces wraps every group as its own single-member piece, used
// when grouped-inner mode is off: category ordering plays no role then,
// only the piece tag on each candidateCut for diagnostics/restriction.
func singletonPieces(groups []*cutcode.CutGroup) []*piece {
	pieces := make([]*piece, len(groups))
	for i, g := range groups {
		pieces[i] = &piece{members: []*cutcode.CutGroup{g}}
	}
	return pieces
}

// allBurned reports whether every scalar under every group in run has
// completed all its passes.
func allBurned(run []*cutcode.CutGroup) bool {
	for _, g := range run {
		for _, c := range g.Flat() {
			if !c.IsBurned() {
				return false
			}
		}
	}
	return true
}

// candidates returns p's eligible cuts for this round under grouped-inner
// gating: the earliest category (in pure-inner -> both -> standalone ->
// outer order) that is not yet fully burned. If that category currently
// has nothing eligible (its own inner dependencies, found via innerFirst
// gating inside collectFromGroup, have not finished), the result is
// empty rather than falling through to a later category — a later
// category's members must never surface before an earlier one completes.
func (p *piece) candidates(innerFirst, completePath bool) []candidateCut {
	runStart := 0
	for runStart < len(p.members) {
		cat := categoryOf(p.members[runStart])
		runEnd := runStart
		for runEnd < len(p.members) && categoryOf(p.members[runEnd]) == cat {
			runEnd++
		}
		run := p.members[runStart:runEnd]
		if !allBurned(run) {
			out := make([]candidateCut, 0)
			for _, g := range run {
				collectFromGroup(g, innerFirst, completePath, p, &out)
			}
			return out
		}
		runStart = runEnd
	}
	return nil
}
