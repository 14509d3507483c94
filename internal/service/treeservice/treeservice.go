package treeservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/metrics"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/GlebRadaev/teamvest/internal/tree"
	"github.com/GlebRadaev/teamvest/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=treeservice.go -destination=mock_treeservice.go -package=treeservice

type TreeRepo interface {
	Lock(ctx context.Context) error
	LockShared(ctx context.Context) error
	FindByUserID(ctx context.Context, userID int64) (*domain.TreeNode, error)
	FindByUserIDs(ctx context.Context, ids []int64) ([]domain.TreeNode, error)
	Insert(ctx context.Context, node *domain.TreeNode) error
	IncrementAncestors(ctx context.Context, ids []int64, total, active int) error
	IncrementDirectReferrals(ctx context.Context, userID int64, delta int) error
	AddTeamBusiness(ctx context.Context, ids []int64, amount decimal.Decimal) error
	DeleteAll(ctx context.Context) error
	BulkInsert(ctx context.Context, nodes []domain.TreeNode) (int64, error)
	FindSubtree(ctx context.Context, path string, maxLevel int) ([]domain.TreeNode, error)
	LevelBreakdown(ctx context.Context, path string, level int) ([]domain.LevelStat, error)
}

type MemberRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
	ListForRebuild(ctx context.Context) ([]domain.Member, error)
}

type PrincipalRepo interface {
	PrincipalByMember(ctx context.Context) (map[int64]decimal.Decimal, error)
}

type StatsCache interface {
	Get(ctx context.Context, id int64, dest any) (bool, error)
	Set(ctx context.Context, id int64, value any) error
	Invalidate(ctx context.Context, ids ...int64) error
}

const (
	DefaultSubtreeDepth = 3
	MaxSubtreeDepth     = 10
)

type Position struct {
	Node         domain.TreeNode   `json:"node"`
	Upline       []domain.TreeNode `json:"upline"`
	ReferralCode string            `json:"referral_code"`
}

type TeamStats struct {
	MemberID        int64              `json:"member_id"`
	Level           int                `json:"level"`
	DirectReferrals int                `json:"direct_referrals"`
	TotalTeamSize   int                `json:"total_team_size"`
	ActiveTeamSize  int                `json:"active_team_size"`
	TeamBusiness    decimal.Decimal    `json:"team_business"`
	Levels          []domain.LevelStat `json:"levels"`
}

type RebuildReport struct {
	Nodes    int           `json:"nodes"`
	Roots    int           `json:"roots"`
	Orphans  []int64       `json:"orphans"`
	Duration time.Duration `json:"duration"`
}

type Service struct {
	tree      TreeRepo
	members   MemberRepo
	principal PrincipalRepo
	cache     StatsCache
	txManager pg.TXManager
}

func New(treeRepo TreeRepo, members MemberRepo, principal PrincipalRepo, cache StatsCache, txManager pg.TXManager) *Service {
	return &Service{
		tree:      treeRepo,
		members:   members,
		principal: principal,
		cache:     cache,
		txManager: txManager,
	}
}

// AddMember places memberID under parentID and updates every ancestor in the
// same transaction. A parentID without a tree node yields a root-level node.
func (s *Service) AddMember(ctx context.Context, memberID int64, parentID *int64) (*domain.TreeNode, error) {
	const op = "tree.AddMember"
	var node domain.TreeNode
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.tree.Lock(ctx); err != nil {
			return domain.Transient(op, err)
		}
		existing, err := s.tree.FindByUserID(ctx, memberID)
		if err != nil {
			return domain.Transient(op, err)
		}
		if existing != nil {
			return domain.NewStateConflictError(op, "member %d is already in the tree", memberID)
		}
		member, err := s.members.FindByID(ctx, memberID)
		if err != nil {
			return domain.Transient(op, err)
		}
		if member == nil {
			return domain.NewNotFoundError(op, "member %d not found", memberID)
		}

		var parent *domain.TreeNode
		if parentID != nil {
			parent, err = s.tree.FindByUserID(ctx, *parentID)
			if err != nil {
				return domain.Transient(op, err)
			}
			if parent == nil {
				zap.L().Warn("referrer has no tree node, placing member at root level",
					zap.Int64("memberID", memberID), zap.Int64("referrerID", *parentID))
			}
		}

		node = tree.Place(memberID, parent)
		if err := s.tree.Insert(ctx, &node); err != nil {
			return domain.Transient(op, err)
		}
		active := 0
		if member.Status == domain.MemberActive {
			active = 1
		}
		if err := s.tree.IncrementAncestors(ctx, node.Ancestors, 1, active); err != nil {
			return domain.Transient(op, err)
		}
		if parent != nil {
			if err := s.tree.IncrementDirectReferrals(ctx, parent.UserID, 1); err != nil {
				return domain.Transient(op, err)
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to add member to tree", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, err
	}
	s.invalidate(ctx, node.Ancestors...)
	return &node, nil
}

// RebuildTree recomputes every node from the member table under the exclusive
// tree lock. Readers see either the old tree or the new one.
func (s *Service) RebuildTree(ctx context.Context) (*RebuildReport, error) {
	const op = "tree.RebuildTree"
	start := time.Now()
	var (
		report tree.Report
		nodes  []domain.TreeNode
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.tree.Lock(ctx); err != nil {
			return domain.Transient(op, err)
		}
		members, err := s.members.ListForRebuild(ctx)
		if err != nil {
			return domain.Transient(op, err)
		}
		principal, err := s.principal.PrincipalByMember(ctx)
		if err != nil {
			return domain.Transient(op, err)
		}

		entries := make([]tree.Entry, len(members))
		for i, m := range members {
			entries[i] = tree.Entry{MemberID: m.ID, ReferrerID: m.ReferrerID, Active: m.Status == domain.MemberActive}
		}
		var arena *tree.Arena
		arena, report = tree.Build(entries, principal)
		nodes = arena.Nodes()

		if err := s.tree.DeleteAll(ctx); err != nil {
			return domain.Transient(op, err)
		}
		if _, err := s.tree.BulkInsert(ctx, nodes); err != nil {
			return domain.Transient(op, err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("tree rebuild failed", zap.Error(err))
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.TreeRebuildDuration.Observe(elapsed.Seconds())
	if len(report.Orphans) > 0 {
		zap.L().Warn("tree rebuild placed orphans at root level", zap.Int64s("memberIDs", report.Orphans))
	}
	ids := make([]int64, len(nodes))
	for i := range nodes {
		ids[i] = nodes[i].UserID
	}
	s.invalidate(ctx, ids...)
	zap.L().Info("tree rebuilt", zap.Int("nodes", report.Nodes), zap.Int("roots", report.Roots), zap.Duration("elapsed", elapsed))

	return &RebuildReport{Nodes: report.Nodes, Roots: report.Roots, Orphans: report.Orphans, Duration: elapsed}, nil
}

func (s *Service) node(ctx context.Context, op string, memberID int64) (*domain.TreeNode, error) {
	node, err := s.tree.FindByUserID(ctx, memberID)
	if err != nil {
		return nil, domain.Transient(op, err)
	}
	if node == nil {
		return nil, domain.NewNotFoundError(op, "member %d has no tree node", memberID)
	}
	return node, nil
}

// GetSubtree returns the subtree rooted at memberID down to maxDepth levels.
// maxDepth is clamped to [1, MaxSubtreeDepth]; zero selects the default.
func (s *Service) GetSubtree(ctx context.Context, memberID int64, maxDepth int) (*tree.Subtree, error) {
	const op = "tree.GetSubtree"
	switch {
	case maxDepth == 0:
		maxDepth = DefaultSubtreeDepth
	case maxDepth < 1:
		maxDepth = 1
	case maxDepth > MaxSubtreeDepth:
		maxDepth = MaxSubtreeDepth
	}
	root, err := s.node(ctx, op, memberID)
	if err != nil {
		return nil, err
	}
	nodes, err := s.tree.FindSubtree(ctx, root.Path, root.Level+maxDepth)
	if err != nil {
		return nil, domain.Transient(op, err)
	}
	return tree.Nest(*root, nodes), nil
}

func (s *Service) GetTreePosition(ctx context.Context, memberID int64) (*Position, error) {
	const op = "tree.GetTreePosition"
	node, err := s.node(ctx, op, memberID)
	if err != nil {
		return nil, err
	}
	upline := []domain.TreeNode{}
	if len(node.Ancestors) > 0 {
		upline, err = s.tree.FindByUserIDs(ctx, node.Ancestors)
		if err != nil {
			return nil, domain.Transient(op, err)
		}
	}
	return &Position{Node: *node, Upline: upline, ReferralCode: validate.ReferralCode(memberID)}, nil
}

// GetTeamStatistics serves from the cache when it can. A cache failure only
// costs a database read.
func (s *Service) GetTeamStatistics(ctx context.Context, memberID int64) (*TeamStats, error) {
	const op = "tree.GetTeamStatistics"
	var cached TeamStats
	hit, err := s.cache.Get(ctx, memberID, &cached)
	if err != nil {
		zap.L().Warn("team stats cache read failed", zap.Int64("memberID", memberID), zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	node, err := s.node(ctx, op, memberID)
	if err != nil {
		return nil, err
	}
	levels, err := s.tree.LevelBreakdown(ctx, node.Path, node.Level)
	if err != nil {
		return nil, domain.Transient(op, err)
	}
	if levels == nil {
		levels = []domain.LevelStat{}
	}
	stats := &TeamStats{
		MemberID:        memberID,
		Level:           node.Level,
		DirectReferrals: node.DirectReferrals,
		TotalTeamSize:   node.TotalTeamSize,
		ActiveTeamSize:  node.ActiveTeamSize,
		TeamBusiness:    node.TeamBusiness,
		Levels:          levels,
	}
	if err := s.cache.Set(ctx, memberID, stats); err != nil {
		zap.L().Warn("team stats cache write failed", zap.Int64("memberID", memberID), zap.Error(err))
	}
	return stats, nil
}

// StatusChanged moves the member in or out of every ancestor's active count.
func (s *Service) StatusChanged(ctx context.Context, memberID int64, from, to domain.MemberStatus) error {
	const op = "tree.StatusChanged"
	wasActive, isActive := from == domain.MemberActive, to == domain.MemberActive
	if wasActive == isActive {
		return nil
	}
	delta := 1
	if wasActive {
		delta = -1
	}

	var ancestors []int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.tree.LockShared(ctx); err != nil {
			return domain.Transient(op, err)
		}
		node, err := s.node(ctx, op, memberID)
		if err != nil {
			return err
		}
		ancestors = node.Ancestors
		return domain.Transient(op, s.tree.IncrementAncestors(ctx, node.Ancestors, 0, delta))
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, ancestors...)
	return nil
}

// AddTeamBusiness adds amount (negative to subtract) to every ancestor of
// memberID.
func (s *Service) AddTeamBusiness(ctx context.Context, memberID int64, amount decimal.Decimal) error {
	const op = "tree.AddTeamBusiness"
	var ancestors []int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.tree.LockShared(ctx); err != nil {
			return domain.Transient(op, err)
		}
		node, err := s.node(ctx, op, memberID)
		if err != nil {
			return err
		}
		ancestors = node.Ancestors
		return domain.Transient(op, s.tree.AddTeamBusiness(ctx, node.Ancestors, amount))
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, ancestors...)
	return nil
}

// Upline returns the ancestor ids of memberID nearest first.
func (s *Service) Upline(ctx context.Context, memberID int64) ([]int64, error) {
	node, err := s.node(ctx, "tree.Upline", memberID)
	if err != nil {
		return nil, err
	}
	return tree.Upline(node), nil
}

// Node returns the tree node of memberID.
func (s *Service) Node(ctx context.Context, memberID int64) (*domain.TreeNode, error) {
	return s.node(ctx, "tree.Node", memberID)
}

// invalidate drops cached stats once the enclosing transaction commits, so a
// reader can't refill the cache from rows that are not yet visible.
func (s *Service) invalidate(ctx context.Context, ids ...int64) {
	ctx = context.WithoutCancel(ctx)
	pg.AfterCommit(ctx, func() {
		if err := s.cache.Invalidate(ctx, ids...); err != nil {
			zap.L().Warn("team stats cache invalidation failed", zap.Int("keys", len(ids)), zap.Error(err))
		}
	})
}
