package travel

import "github.com/katalvlaran/lasercore/cutcode"

// Literal op names, matching the convention already used in merge.go:
// travel only ever needs to compare against these two well-known values,
// so it is not worth importing the op package for them.
const (
	opCut     = "op cut"
	opEngrave = "op engrave"
)

// candidateCut pairs a scalar cut with the piece it was collected from, so
// the grouped-inner policy can restrict a round's search to the piece
// currently being worked and the restrictTo tie-break in selectNext can
// recover that piece's other members by identity.
type candidateCut struct {
	obj   cutcode.CutObject
	piece *piece
}

// eligible reports whether g itself is safe to draw candidates from under
// the inner-first constraint: every group it Contains must already be
// fully burned. A leaf (Contains == nil) trivially satisfies this.
//
// This deliberately ignores g.Constrained: that flag marks a group as
// someone else's inner content (set on the inner side of the containment
// DAG, not the outer side), so gating on it here would let an outer
// group's own Contains go unchecked whenever the DAG was built by the
// real identifier rather than a hand-built fixture.
func eligible(g *cutcode.CutGroup) bool {
	return !g.ContainsUnburnedGroup()
}

// completePathExempt reports whether g is subject to the complete_path
// policy: an open (non-closed) subgroup whose original op is
// not a cut or engrave pass contributes only its first and last unburned
// scalar cuts, never its interior ones — a hatch-fill or similar pass only
// needs the laser to land on its boundary, not retrace every scalar.
func completePathExempt(g *cutcode.CutGroup) bool {
	if g.Closed() {
		return false
	}
	op := g.OriginalOp()
	return op != opCut && op != opEngrave
}

// appendFirstLast appends g's first and last unburned scalar cuts, in
// flattened order, skipping the duplicate when only one unburned leaf
// remains.
func appendFirstLast(g *cutcode.CutGroup, owner *piece, out *[]candidateCut) {
	var first, last cutcode.CutObject
	for _, c := range g.Flat() {
		if c.IsBurned() {
			continue
		}
		if first == nil {
			first = c
		}
		last = c
	}
	if first == nil {
		return
	}
	*out = append(*out, candidateCut{obj: first, piece: owner})
	if last != first {
		*out = append(*out, candidateCut{obj: last, piece: owner})
	}
}

// collectFromGroup depth-first walks g, appending eligible unburned scalar
// candidates tagged with owner to out. innerFirst gates descent into a
// group whose own inner dependencies have not finished;
// completePath gates the first/last-only emission policy for exempt open
// subgroups.
func collectFromGroup(g *cutcode.CutGroup, innerFirst, completePath bool, owner *piece, out *[]candidateCut) {
	if innerFirst && !eligible(g) {
		return
	}
	if completePath && completePathExempt(g) {
		appendFirstLast(g, owner, out)
		return
	}
	for _, child := range g.Children {
		if sub, ok := child.(*cutcode.CutGroup); ok {
			collectFromGroup(sub, innerFirst, completePath, owner, out)
			continue
		}
		if !child.IsBurned() {
			*out = append(*out, candidateCut{obj: child, piece: owner})
		}
	}
}

// candidatesFor gathers this round's candidates across every piece. Under
// groupedInner, each piece gates itself to its earliest unexhausted
// category (pure-inner -> both -> standalone -> outer);
// otherwise every piece (a singleton wrapping one top-level group, when
// grouped-inner is off) contributes independently, same as the pre-piece
// behavior.
//
// If innerFirst leaves nothing eligible anywhere (every remaining piece is
// blocked on unfinished inner content, which cannot happen under a
// correctly-built containment DAG but is checked defensively), the whole
// scan retries without inner-first gating — the stall-breaking fallback
// that guarantees forward progress: no cut is ever suppressed.
func candidatesFor(pieces []*piece, innerFirst, groupedInner, completePath bool) []candidateCut {
	out := make([]candidateCut, 0)
	for _, p := range pieces {
		if groupedInner {
			out = append(out, p.candidates(innerFirst, completePath)...)
			continue
		}
		for _, g := range p.members {
			collectFromGroup(g, innerFirst, completePath, p, &out)
		}
	}
	if len(out) == 0 && innerFirst {
		return candidatesFor(pieces, false, groupedInner, completePath)
	}
	return out
}
