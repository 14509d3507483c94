package treerepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const nodeColumns = `user_id, parent_id, level, path, ancestors, direct_referrals, total_team_size,
		active_team_size, team_business, created_at, updated_at`

var copyColumns = []string{"user_id", "parent_id", "level", "path", "ancestors", "direct_referrals",
	"total_team_size", "active_team_size", "team_business", "created_at", "updated_at"}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanNode(row pgx.Row) (*domain.TreeNode, error) {
	var n domain.TreeNode
	err := row.Scan(&n.UserID, &n.ParentID, &n.Level, &n.Path, &n.Ancestors, &n.DirectReferrals, &n.TotalTeamSize,
		&n.ActiveTeamSize, &n.TeamBusiness, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.TreeNode, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get tree nodes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var nodes []domain.TreeNode
	for rows.Next() {
		n, err := scanNode(rows)
		if err != nil {
			zap.L().Error("can't scan tree node", zap.Error(err))
			return nil, err
		}
		nodes = append(nodes, *n)
	}
	return nodes, rows.Err()
}

// Lock serialises structural changes. Callers must be inside a transaction.
func (r *Repository) Lock(ctx context.Context) error {
	return pg.LockExclusive(ctx, r.db, pg.TreeLockKey)
}

// LockShared lets aggregate updates run together while excluding a rebuild.
func (r *Repository) LockShared(ctx context.Context) error {
	return pg.LockShared(ctx, r.db, pg.TreeLockKey)
}

func (r *Repository) FindByUserID(ctx context.Context, userID int64) (*domain.TreeNode, error) {
	node, err := scanNode(r.db.QueryRow(ctx, "SELECT "+nodeColumns+" FROM tree_nodes WHERE user_id = $1", userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find tree node", zap.Int64("memberID", userID), zap.Error(err))
		return nil, err
	}
	return node, nil
}

// FindByUserIDs returns the listed nodes shallowest first.
func (r *Repository) FindByUserIDs(ctx context.Context, ids []int64) ([]domain.TreeNode, error) {
	return r.list(ctx, "SELECT "+nodeColumns+" FROM tree_nodes WHERE user_id = ANY($1) ORDER BY level", ids)
}

func (r *Repository) Insert(ctx context.Context, node *domain.TreeNode) error {
	query := `
		INSERT INTO tree_nodes (user_id, parent_id, level, path, ancestors, direct_referrals, total_team_size,
			active_team_size, team_business)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, node.UserID, node.ParentID, node.Level, node.Path, node.Ancestors,
		node.DirectReferrals, node.TotalTeamSize, node.ActiveTeamSize, node.TeamBusiness).
		Scan(&node.CreatedAt, &node.UpdatedAt)
	if err != nil {
		zap.L().Error("can't insert tree node", zap.Int64("memberID", node.UserID), zap.Error(err))
		return err
	}
	return nil
}

// IncrementAncestors adds the deltas to every listed node in one statement.
func (r *Repository) IncrementAncestors(ctx context.Context, ids []int64, total, active int) error {
	if len(ids) == 0 {
		return nil
	}
	query := `
		UPDATE tree_nodes
		SET total_team_size = total_team_size + $2, active_team_size = active_team_size + $3, updated_at = now()
		WHERE user_id = ANY($1)
	`
	if _, err := r.db.Exec(ctx, query, ids, total, active); err != nil {
		zap.L().Error("can't update ancestor counters", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementDirectReferrals(ctx context.Context, userID int64, delta int) error {
	query := `
		UPDATE tree_nodes
		SET direct_referrals = direct_referrals + $2, updated_at = now()
		WHERE user_id = $1
	`
	if _, err := r.db.Exec(ctx, query, userID, delta); err != nil {
		zap.L().Error("can't update direct referrals", zap.Int64("memberID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddTeamBusiness(ctx context.Context, ids []int64, amount decimal.Decimal) error {
	if len(ids) == 0 {
		return nil
	}
	query := `
		UPDATE tree_nodes
		SET team_business = team_business + $2, updated_at = now()
		WHERE user_id = ANY($1)
	`
	if _, err := r.db.Exec(ctx, query, ids, amount); err != nil {
		zap.L().Error("can't update team business", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM tree_nodes"); err != nil {
		zap.L().Error("can't clear tree nodes", zap.Error(err))
		return err
	}
	return nil
}

// BulkInsert writes nodes with COPY.
func (r *Repository) BulkInsert(ctx context.Context, nodes []domain.TreeNode) (int64, error) {
	now := time.Now()
	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"tree_nodes"}, copyColumns,
		pgx.CopyFromSlice(len(nodes), func(i int) ([]any, error) {
			node := nodes[i]
			return []any{node.UserID, node.ParentID, node.Level, node.Path, node.Ancestors, node.DirectReferrals,
				node.TotalTeamSize, node.ActiveTeamSize, numeric(node.TeamBusiness), now, now}, nil
		}))
	if err != nil {
		zap.L().Error("can't copy tree nodes", zap.Error(err))
		return 0, err
	}
	return n, nil
}

// numeric converts for the binary COPY protocol, which has no text fallback
// for driver.Valuer types.
func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// FindSubtree returns the nodes under path down to maxLevel, ordered by level.
func (r *Repository) FindSubtree(ctx context.Context, path string, maxLevel int) ([]domain.TreeNode, error) {
	query := `
		SELECT ` + nodeColumns + `
		FROM tree_nodes
		WHERE path LIKE $1 || '%' AND level <= $2
		ORDER BY level, user_id
	`
	return r.list(ctx, query, path, maxLevel)
}

// LevelBreakdown groups the descendants of the node at path by depth below it.
func (r *Repository) LevelBreakdown(ctx context.Context, path string, level int) ([]domain.LevelStat, error) {
	query := `
		SELECT t.level - $2 AS depth,
			COUNT(*) AS members,
			COUNT(*) FILTER (WHERE m.status = 'active') AS active_members,
			COALESCE(SUM(p.principal), 0) AS business
		FROM tree_nodes t
		JOIN members m ON m.id = t.user_id
		LEFT JOIN (
			SELECT member_id, SUM(invested_amount) AS principal
			FROM investments
			WHERE status <> 'cancelled'
			GROUP BY member_id
		) p ON p.member_id = t.user_id
		WHERE t.path LIKE $1 || '%' AND t.level > $2
		GROUP BY t.level
		ORDER BY t.level
	`
	rows, err := r.db.Query(ctx, query, path, level)
	if err != nil {
		zap.L().Error("can't get level breakdown", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stats []domain.LevelStat
	for rows.Next() {
		var s domain.LevelStat
		if err := rows.Scan(&s.Depth, &s.Members, &s.ActiveMembers, &s.Business); err != nil {
			zap.L().Error("can't scan level breakdown", zap.Error(err))
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
