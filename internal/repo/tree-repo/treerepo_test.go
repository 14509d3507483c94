package treerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"user_id", "parent_id", "level", "path", "ancestors", "direct_referrals", "total_team_size",
	"active_team_size", "team_business", "created_at", "updated_at"}

type decimalArg struct{ want decimal.Decimal }

func (a decimalArg) Match(v any) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(a.want)
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func addNode(rows *pgxmock.Rows, id int64, parent *int64, level int, path string, ancestors []int64, total int) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(id, parent, level, path, ancestors, 0, total, total, decimal.Zero, now, now)
}

func TestRepository_Locks(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(pg.TreeLockKey).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock_shared($1)")).
		WithArgs(pg.TreeLockKey).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	require.NoError(t, repo.Lock(context.Background()))
	require.NoError(t, repo.LockShared(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	parent := int64(1)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  *domain.TreeNode
	}{
		{
			name: "Node found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM tree_nodes WHERE user_id = $1")).
					WithArgs(int64(2)).
					WillReturnRows(addNode(pgxmock.NewRows(columns), 2, &parent, 2, "/1/2/", []int64{1}, 0))
			},
			expected: &domain.TreeNode{UserID: 2, ParentID: &parent, Level: 2, Path: "/1/2/", Ancestors: []int64{1}},
		},
		{
			name: "Node not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM tree_nodes WHERE user_id = $1")).
					WithArgs(int64(2)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM tree_nodes WHERE user_id = $1")).
					WithArgs(int64(2)).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			node, err := repo.FindByUserID(context.Background(), 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expected == nil {
				assert.Nil(t, node)
			} else {
				require.NotNil(t, node)
				assert.Equal(t, tt.expected.Path, node.Path)
				assert.Equal(t, tt.expected.Level, node.Level)
				assert.Equal(t, tt.expected.Ancestors, node.Ancestors)
				assert.Equal(t, tt.expected.ParentID, node.ParentID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	parent := int64(1)
	now := time.Now()

	node := &domain.TreeNode{UserID: 2, ParentID: &parent, Level: 2, Path: "/1/2/", Ancestors: []int64{1}, TeamBusiness: decimal.Zero}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tree_nodes")).
		WithArgs(int64(2), &parent, 2, "/1/2/", []int64{1}, 0, 0, 0, decimal.Zero).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Insert(context.Background(), node))
	assert.Equal(t, now, node.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tree_nodes")).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	assert.Error(t, repo.Insert(context.Background(), node))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AncestorUpdates(t *testing.T) {
	repo, mock := NewMock(t)
	ids := []int64{1, 4}

	mock.ExpectExec(regexp.QuoteMeta("SET total_team_size = total_team_size + $2, active_team_size = active_team_size + $3")).
		WithArgs(ids, 1, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectExec(regexp.QuoteMeta("SET direct_referrals = direct_referrals + $2")).
		WithArgs(int64(4), 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("SET team_business = team_business + $2")).
		WithArgs(ids, decimalArg{want: decimal.NewFromInt(500)}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	ctx := context.Background()
	require.NoError(t, repo.IncrementAncestors(ctx, ids, 1, 1))
	require.NoError(t, repo.IncrementDirectReferrals(ctx, 4, 1))
	require.NoError(t, repo.AddTeamBusiness(ctx, ids, decimal.NewFromInt(500)))

	// A root has no ancestors; nothing is sent to the database.
	require.NoError(t, repo.IncrementAncestors(ctx, nil, 1, 1))
	require.NoError(t, repo.AddTeamBusiness(ctx, nil, decimal.NewFromInt(500)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RebuildStatements(t *testing.T) {
	repo, mock := NewMock(t)
	parent := int64(1)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tree_nodes")).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectCopyFrom(pgx.Identifier{"tree_nodes"}, copyColumns).
		WillReturnResult(2)

	ctx := context.Background()
	require.NoError(t, repo.DeleteAll(ctx))
	n, err := repo.BulkInsert(ctx, []domain.TreeNode{
		{UserID: 1, Level: 1, Path: "/1/", Ancestors: []int64{}, TotalTeamSize: 1, TeamBusiness: decimal.Zero},
		{UserID: 2, ParentID: &parent, Level: 2, Path: "/1/2/", Ancestors: []int64{1}, TeamBusiness: decimal.Zero},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindSubtree(t *testing.T) {
	repo, mock := NewMock(t)
	one, two := int64(1), int64(2)

	rows := pgxmock.NewRows(columns)
	addNode(rows, 1, nil, 1, "/1/", []int64{}, 2)
	addNode(rows, 2, &one, 2, "/1/2/", []int64{1}, 1)
	addNode(rows, 3, &two, 3, "/1/2/3/", []int64{1, 2}, 0)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE path LIKE $1 || '%' AND level <= $2 ORDER BY level, user_id")).
		WithArgs("/1/", 3).
		WillReturnRows(rows)

	nodes, err := repo.FindSubtree(context.Background(), "/1/", 3)
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, []int64{1, 2}, nodes[2].Ancestors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LevelBreakdown(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY t.level ORDER BY t.level")).
		WithArgs("/1/", 1).
		WillReturnRows(pgxmock.NewRows([]string{"depth", "members", "active_members", "business"}).
			AddRow(1, 2, 1, decimal.NewFromInt(1500)).
			AddRow(2, 1, 1, decimal.Zero))

	stats, err := repo.LevelBreakdown(context.Background(), "/1/", 1)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 1, stats[0].Depth)
	assert.Equal(t, 2, stats[0].Members)
	assert.Equal(t, 1, stats[0].ActiveMembers)
	assert.True(t, stats[0].Business.Equal(decimal.NewFromInt(1500)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
