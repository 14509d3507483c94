package planrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planColumnNames = []string{"id", "name", "daily_roi_percentage", "duration_days", "min_amount", "max_amount",
	"return_multiplier", "referral_boost_rate", "max_referral_boost", "active"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func starterRow() *pgxmock.Rows {
	return pgxmock.NewRows(planColumnNames).AddRow(int64(1), "starter", decimal.NewFromInt(1), 200,
		decimal.NewFromInt(10), decimal.NewFromInt(1000), decimal.NewFromInt(2),
		decimal.RequireFromString("0.01"), decimal.RequireFromString("0.1"), true)
}

func TestRepository_FindPlan(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Plan found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE id = $1")).
					WithArgs(int64(1)).
					WillReturnRows(starterRow())
			},
		},
		{
			name: "Plan not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE id = $1")).
					WithArgs(int64(1)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE id = $1")).
					WithArgs(int64(1)).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			plan, err := repo.FindPlan(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, plan)
			} else {
				require.NotNil(t, plan)
				assert.Equal(t, "starter", plan.Name)
				assert.Equal(t, 200, plan.DurationDays)
				assert.True(t, plan.DailyROIPercentage.Equal(decimal.NewFromInt(1)))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListPlans(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM plans WHERE active ORDER BY id")).
		WillReturnRows(starterRow())

	plans, err := repo.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListLevelConfigs(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM level_configs ORDER BY level")).
		WillReturnRows(pgxmock.NewRows([]string{"level", "commission_percentage", "active"}).
			AddRow(1, decimal.NewFromInt(10), true).
			AddRow(2, decimal.NewFromInt(5), false))

	levels, err := repo.ListLevelConfigs(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, 2, levels[1].Level)
	assert.False(t, levels[1].Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListBoosterLevels(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booster_levels ORDER BY level")).
		WillReturnError(errors.New("db error"))

	_, err := repo.ListBoosterLevels(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
