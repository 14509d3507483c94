package tree

import "github.com/GlebRadaev/teamvest/internal/domain"

type Subtree struct {
	Node     domain.TreeNode `json:"node"`
	Depth    int             `json:"depth"`
	Children []*Subtree      `json:"children,omitempty"`
}

// Nest arranges a flat prefix-query result under root. Nodes must be ordered
// by level; nodes whose parent is absent from the set are dropped.
func Nest(root domain.TreeNode, nodes []domain.TreeNode) *Subtree {
	top := &Subtree{Node: root}
	byID := map[int64]*Subtree{root.UserID: top}
	for _, n := range nodes {
		if n.UserID == root.UserID || n.ParentID == nil {
			continue
		}
		parent, ok := byID[*n.ParentID]
		if !ok {
			continue
		}
		child := &Subtree{Node: n, Depth: n.Level - root.Level}
		parent.Children = append(parent.Children, child)
		byID[n.UserID] = child
	}
	return top
}

// Count returns the number of nodes in the subtree, root included.
func (s *Subtree) Count() int {
	n := 1
	for _, c := range s.Children {
		n += c.Count()
	}
	return n
}
