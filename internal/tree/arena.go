// Package tree holds the referral tree placement rules independent of storage.
// The same Place function positions a node during an incremental insert and
// during a full rebuild, so both paths produce identical nodes.
package tree

import (
	"strconv"
	"strings"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/shopspring/decimal"
)

const Separator = "/"

// Place returns the zeroed node a member gets under parent. A nil parent
// places the member at level 1.
func Place(memberID int64, parent *domain.TreeNode) domain.TreeNode {
	node := domain.TreeNode{
		UserID:       memberID,
		Level:        1,
		TeamBusiness: decimal.Zero,
	}
	if parent == nil {
		node.Path = Separator + strconv.FormatInt(memberID, 10) + Separator
		node.Ancestors = []int64{}
		return node
	}

	parentID := parent.UserID
	node.ParentID = &parentID
	node.Level = parent.Level + 1
	node.Path = parent.Path + strconv.FormatInt(memberID, 10) + Separator
	node.Ancestors = make([]int64, 0, len(parent.Ancestors)+1)
	node.Ancestors = append(node.Ancestors, parent.Ancestors...)
	node.Ancestors = append(node.Ancestors, parent.UserID)
	return node
}

// Upline returns ancestor ids nearest first: parent, grandparent, ... root.
func Upline(node *domain.TreeNode) []int64 {
	ids := make([]int64, len(node.Ancestors))
	for i, id := range node.Ancestors {
		ids[len(node.Ancestors)-1-i] = id
	}
	return ids
}

// IsDescendant reports whether node sits strictly below ancestor.
func IsDescendant(node, ancestor *domain.TreeNode) bool {
	return node.UserID != ancestor.UserID && strings.HasPrefix(node.Path, ancestor.Path)
}

// Arena is a flat, index-addressed tree used for rebuilds and in tests. Walking
// to the root is a loop over Ancestors, no path parsing.
type Arena struct {
	nodes []domain.TreeNode
	index map[int64]int
}

func NewArena() *Arena {
	return &Arena{index: make(map[int64]int)}
}

// Insert places memberID under parentID and bumps every ancestor's counters.
// A parent unknown to the arena yields a root-level node and orphan=true.
func (a *Arena) Insert(memberID int64, parentID *int64, active bool) (node domain.TreeNode, orphan bool) {
	var parent *domain.TreeNode
	if parentID != nil {
		if idx, ok := a.index[*parentID]; ok {
			parent = &a.nodes[idx]
		} else {
			orphan = true
		}
	}

	node = Place(memberID, parent)
	a.index[memberID] = len(a.nodes)
	a.nodes = append(a.nodes, node)

	for _, id := range node.Ancestors {
		anc := &a.nodes[a.index[id]]
		anc.TotalTeamSize++
		if active {
			anc.ActiveTeamSize++
		}
	}
	if parent != nil {
		a.nodes[a.index[parent.UserID]].DirectReferrals++
	}
	return node, orphan
}

// AddBusiness adds amount to the team business of every ancestor of memberID.
func (a *Arena) AddBusiness(memberID int64, amount decimal.Decimal) {
	idx, ok := a.index[memberID]
	if !ok {
		return
	}
	for _, id := range a.nodes[idx].Ancestors {
		anc := &a.nodes[a.index[id]]
		anc.TeamBusiness = anc.TeamBusiness.Add(amount)
	}
}

func (a *Arena) Node(memberID int64) (domain.TreeNode, bool) {
	idx, ok := a.index[memberID]
	if !ok {
		return domain.TreeNode{}, false
	}
	return a.nodes[idx], true
}

// Nodes returns the nodes in insertion order.
func (a *Arena) Nodes() []domain.TreeNode {
	out := make([]domain.TreeNode, len(a.nodes))
	copy(out, a.nodes)
	return out
}

func (a *Arena) Len() int {
	return len(a.nodes)
}
