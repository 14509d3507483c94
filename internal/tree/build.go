package tree

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Entry is one member as seen by a rebuild, listed in registration order.
type Entry struct {
	MemberID   int64
	ReferrerID *int64
	Active     bool
}

type Report struct {
	Nodes   int
	Roots   int
	Orphans []int64
}

// Build places every entry breadth-first from the roots, so a referrer is
// always placed before the members it referred whatever the id order is.
// Entries whose referrer is not in the set become roots and are reported as
// orphans. business maps member id to its own principal.
func Build(entries []Entry, business map[int64]decimal.Decimal) (*Arena, Report) {
	known := make(map[int64]struct{}, len(entries))
	for _, e := range entries {
		known[e.MemberID] = struct{}{}
	}

	children := make(map[int64][]Entry)
	var queue []Entry
	var report Report
	for _, e := range entries {
		if e.ReferrerID == nil {
			queue = append(queue, e)
			continue
		}
		if _, ok := known[*e.ReferrerID]; !ok {
			report.Orphans = append(report.Orphans, e.MemberID)
			queue = append(queue, e)
			continue
		}
		children[*e.ReferrerID] = append(children[*e.ReferrerID], e)
	}

	arena := NewArena()
	placed := make(map[int64]struct{}, len(entries))
	place := func(e Entry) {
		parent := e.ReferrerID
		if parent != nil {
			if _, ok := placed[*parent]; !ok {
				parent = nil
			}
		}
		node, _ := arena.Insert(e.MemberID, parent, e.Active)
		if node.ParentID == nil {
			report.Roots++
		}
		placed[e.MemberID] = struct{}{}
	}

	drain := func() {
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			if _, done := placed[e.MemberID]; done {
				continue
			}
			place(e)
			queue = append(queue, children[e.MemberID]...)
		}
	}
	drain()

	// Anything left is unreachable from a root (a referral cycle). Break the
	// cycle at its earliest registered member so no member is lost.
	for _, e := range entries {
		if _, done := placed[e.MemberID]; done {
			continue
		}
		report.Orphans = append(report.Orphans, e.MemberID)
		e.ReferrerID = nil
		queue = append(queue, e)
		drain()
	}

	ids := make([]int64, 0, len(business))
	for id := range business {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		arena.AddBusiness(id, business[id])
	}

	report.Nodes = arena.Len()
	return arena, report
}
