package tree

import (
	"strings"
	"testing"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 {
	return &v
}

func TestPlace(t *testing.T) {
	root := Place(1, nil)
	assert.Equal(t, "/1/", root.Path)
	assert.Equal(t, 1, root.Level)
	assert.Nil(t, root.ParentID)
	assert.Empty(t, root.Ancestors)

	child := Place(7, &root)
	assert.Equal(t, "/1/7/", child.Path)
	assert.Equal(t, 2, child.Level)
	assert.Equal(t, int64(1), *child.ParentID)
	assert.Equal(t, []int64{1}, child.Ancestors)

	grandchild := Place(42, &child)
	assert.Equal(t, "/1/7/42/", grandchild.Path)
	assert.Equal(t, []int64{1, 7}, grandchild.Ancestors)
	assert.Equal(t, []int64{7, 1}, Upline(&grandchild))
	assert.True(t, IsDescendant(&grandchild, &root))
	assert.False(t, IsDescendant(&root, &root))
}

func TestArena_InsertUnderParent(t *testing.T) {
	arena := NewArena()
	m1, orphan := arena.Insert(1, nil, true)
	require.False(t, orphan)

	m2, orphan := arena.Insert(2, ptr(1), true)
	require.False(t, orphan)

	parent, ok := arena.Node(1)
	require.True(t, ok)
	assert.Equal(t, 1, parent.DirectReferrals)
	assert.Equal(t, 1, parent.TotalTeamSize)
	assert.Equal(t, 1, parent.ActiveTeamSize)
	assert.Equal(t, m1.Level+1, m2.Level)
	assert.Equal(t, m1.Path+"2/", m2.Path)
}

func TestArena_InactiveMemberNotCountedActive(t *testing.T) {
	arena := NewArena()
	arena.Insert(1, nil, true)
	arena.Insert(2, ptr(1), false)
	arena.Insert(3, ptr(2), true)

	root, _ := arena.Node(1)
	assert.Equal(t, 2, root.TotalTeamSize)
	assert.Equal(t, 1, root.ActiveTeamSize)
	assert.Equal(t, 1, root.DirectReferrals)
}

func TestArena_OrphanBecomesRoot(t *testing.T) {
	arena := NewArena()
	node, orphan := arena.Insert(5, ptr(99), true)

	assert.True(t, orphan)
	assert.Equal(t, 1, node.Level)
	assert.Equal(t, "/5/", node.Path)
	assert.Nil(t, node.ParentID)
}

func TestArena_TeamSizeMatchesPathPrefixCount(t *testing.T) {
	arena := NewArena()
	arena.Insert(1, nil, true)
	arena.Insert(2, ptr(1), true)
	arena.Insert(3, ptr(1), true)
	arena.Insert(4, ptr(2), true)
	arena.Insert(5, ptr(4), false)
	arena.Insert(6, ptr(3), true)
	arena.Insert(7, nil, true)
	arena.Insert(8, ptr(7), true)

	nodes := arena.Nodes()
	for _, anc := range nodes {
		prefixed := 0
		for _, n := range nodes {
			if strings.HasPrefix(n.Path, anc.Path) {
				prefixed++
			}
		}
		assert.Equal(t, prefixed-1, anc.TotalTeamSize, "node %d", anc.UserID)

		sum := 0
		for _, n := range nodes {
			if n.ParentID != nil && *n.ParentID == anc.UserID {
				sum += 1 + n.TotalTeamSize
			}
		}
		assert.Equal(t, sum, anc.TotalTeamSize, "node %d", anc.UserID)
	}
}

func TestArena_AddBusiness(t *testing.T) {
	arena := NewArena()
	arena.Insert(1, nil, true)
	arena.Insert(2, ptr(1), true)
	arena.Insert(3, ptr(2), true)

	arena.AddBusiness(3, decimal.NewFromInt(500))
	arena.AddBusiness(2, decimal.NewFromInt(100))
	arena.AddBusiness(404, decimal.NewFromInt(1))

	n1, _ := arena.Node(1)
	n2, _ := arena.Node(2)
	n3, _ := arena.Node(3)
	assert.True(t, decimal.NewFromInt(600).Equal(n1.TeamBusiness))
	assert.True(t, decimal.NewFromInt(500).Equal(n2.TeamBusiness))
	assert.True(t, n3.TeamBusiness.IsZero())
}

func TestBuild_MatchesIncrementalInserts(t *testing.T) {
	entries := []Entry{
		{MemberID: 1, Active: true},
		{MemberID: 2, ReferrerID: ptr(1), Active: true},
		{MemberID: 3, ReferrerID: ptr(1), Active: false},
		{MemberID: 4, ReferrerID: ptr(2), Active: true},
		{MemberID: 5, ReferrerID: ptr(4), Active: true},
		{MemberID: 6, Active: true},
		{MemberID: 7, ReferrerID: ptr(6), Active: true},
	}

	incremental := NewArena()
	for _, e := range entries {
		incremental.Insert(e.MemberID, e.ReferrerID, e.Active)
	}

	rebuilt, report := Build(entries, nil)
	assert.Equal(t, len(entries), report.Nodes)
	assert.Equal(t, 2, report.Roots)
	assert.Empty(t, report.Orphans)

	for _, want := range incremental.Nodes() {
		got, ok := rebuilt.Node(want.UserID)
		require.True(t, ok)
		assert.Equal(t, want.Path, got.Path, "node %d", want.UserID)
		assert.Equal(t, want.Level, got.Level, "node %d", want.UserID)
		assert.Equal(t, want.Ancestors, got.Ancestors, "node %d", want.UserID)
		assert.Equal(t, want.DirectReferrals, got.DirectReferrals, "node %d", want.UserID)
		assert.Equal(t, want.TotalTeamSize, got.TotalTeamSize, "node %d", want.UserID)
		assert.Equal(t, want.ActiveTeamSize, got.ActiveTeamSize, "node %d", want.UserID)
	}
}

func TestBuild_ReferrerRegisteredAfterReferee(t *testing.T) {
	// Member 3 was backfilled with a lower id than the member it points to.
	entries := []Entry{
		{MemberID: 1, Active: true},
		{MemberID: 3, ReferrerID: ptr(9), Active: true},
		{MemberID: 9, ReferrerID: ptr(1), Active: true},
	}

	arena, report := Build(entries, map[int64]decimal.Decimal{3: decimal.NewFromInt(50)})
	assert.Empty(t, report.Orphans)

	n3, _ := arena.Node(3)
	assert.Equal(t, "/1/9/3/", n3.Path)
	assert.Equal(t, 3, n3.Level)

	n1, _ := arena.Node(1)
	assert.Equal(t, 2, n1.TotalTeamSize)
	assert.True(t, decimal.NewFromInt(50).Equal(n1.TeamBusiness))
}

func TestBuild_OrphansAndCycles(t *testing.T) {
	entries := []Entry{
		{MemberID: 1, ReferrerID: ptr(100), Active: true},
		{MemberID: 2, ReferrerID: ptr(3), Active: true},
		{MemberID: 3, ReferrerID: ptr(2), Active: true},
	}

	arena, report := Build(entries, nil)
	assert.Equal(t, 3, report.Nodes)
	assert.ElementsMatch(t, []int64{1, 2}, report.Orphans)

	n2, _ := arena.Node(2)
	n3, _ := arena.Node(3)
	assert.Equal(t, 1, n2.Level)
	assert.Equal(t, "/2/3/", n3.Path)
}

func TestNest(t *testing.T) {
	arena := NewArena()
	arena.Insert(1, nil, true)
	arena.Insert(2, ptr(1), true)
	arena.Insert(3, ptr(1), true)
	arena.Insert(4, ptr(2), true)

	root, _ := arena.Node(1)
	var below []domain.TreeNode
	for _, n := range arena.Nodes() {
		if n.UserID != 1 {
			below = append(below, n)
		}
	}

	sub := Nest(root, below)
	assert.Equal(t, 4, sub.Count())
	require.Len(t, sub.Children, 2)
	assert.Equal(t, int64(2), sub.Children[0].Node.UserID)
	require.Len(t, sub.Children[0].Children, 1)
	assert.Equal(t, 2, sub.Children[0].Children[0].Depth)
}
