package commissionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type mocks struct {
	tree    *MockTree
	members *MockMemberRepo
	levels  *MockLevelRepo
	ledger  *MockLedger
}

func NewMock(t *testing.T, maxLevels int) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		tree:    NewMockTree(ctrl),
		members: NewMockMemberRepo(ctrl),
		levels:  NewMockLevelRepo(ctrl),
		ledger:  NewMockLedger(ctrl),
	}
	return New(m.tree, m.members, m.levels, m.ledger, maxLevels, d("5")), m
}

var defaultLevels = []domain.LevelConfig{
	{Level: 1, CommissionPercentage: d("10"), Active: true},
	{Level: 2, CommissionPercentage: d("5"), Active: true},
	{Level: 3, CommissionPercentage: d("3"), Active: false},
	{Level: 4, CommissionPercentage: d("2"), Active: true},
}

// recordPosts captures every posted entry in order.
func recordPosts(m mocks) *[]*domain.Transaction {
	var posted []*domain.Transaction
	m.ledger.EXPECT().Post(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
		posted = append(posted, tx)
		return tx, nil
	}).AnyTimes()
	return &posted
}

func TestDistributeLevelCommissions(t *testing.T) {
	tests := []struct {
		name      string
		maxLevels int
		upline    []int64
		statuses  map[int64]domain.MemberStatus
		want      []Payout
	}{
		{
			name:      "pays configured levels nearest first",
			maxLevels: 10,
			upline:    []int64{4, 3, 2, 1},
			statuses: map[int64]domain.MemberStatus{
				4: domain.MemberActive, 3: domain.MemberActive, 2: domain.MemberActive, 1: domain.MemberActive,
			},
			want: []Payout{
				{MemberID: 4, Level: 1, Amount: d("1")},
				{MemberID: 3, Level: 2, Amount: d("0.5")},
				{MemberID: 1, Level: 4, Amount: d("0.2")},
			},
		},
		{
			name:      "inactive ancestor is skipped but keeps its depth",
			maxLevels: 10,
			upline:    []int64{4, 3, 2, 1},
			statuses: map[int64]domain.MemberStatus{
				4: domain.MemberInactive, 3: domain.MemberActive, 2: domain.MemberActive, 1: domain.MemberBlocked,
			},
			want: []Payout{
				{MemberID: 3, Level: 2, Amount: d("0.5")},
			},
		},
		{
			name:      "max levels truncates the walk",
			maxLevels: 1,
			upline:    []int64{4, 3},
			statuses:  map[int64]domain.MemberStatus{4: domain.MemberActive},
			want: []Payout{
				{MemberID: 4, Level: 1, Amount: d("1")},
			},
		},
		{
			name:      "root earner pays nobody",
			maxLevels: 10,
			upline:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, tt.maxLevels)
			m.levels.EXPECT().ListLevelConfigs(gomock.Any()).Return(defaultLevels, nil)
			m.tree.EXPECT().Upline(gomock.Any(), int64(5)).Return(tt.upline, nil)
			if len(tt.upline) > 0 {
				m.members.EXPECT().Statuses(gomock.Any(), gomock.Any()).Return(tt.statuses, nil)
			}
			posted := recordPosts(m)

			payouts, err := service.DistributeLevelCommissions(context.Background(), 5, 77, d("10"))
			require.NoError(t, err)
			require.Len(t, payouts, len(tt.want))
			require.Len(t, *posted, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.MemberID, payouts[i].MemberID)
				assert.Equal(t, want.Level, payouts[i].Level)
				assert.True(t, want.Amount.Equal(payouts[i].Amount), "level %d: got %s", want.Level, payouts[i].Amount)

				entry := (*posted)[i]
				assert.Equal(t, domain.TxLevelCommission, entry.Type)
				assert.Equal(t, want.MemberID, entry.MemberID)
				assert.Equal(t, int64(5), *entry.RelatedMemberID)
				assert.Equal(t, int64(77), *entry.RelatedInvestmentID)
			}
		})
	}
}

func TestDistributeLevelCommissions_NothingToDo(t *testing.T) {
	t.Run("zero roi", func(t *testing.T) {
		service, _ := NewMock(t, 10)
		payouts, err := service.DistributeLevelCommissions(context.Background(), 5, 77, decimal.Zero)
		require.NoError(t, err)
		assert.Empty(t, payouts)
	})

	t.Run("no active level configs", func(t *testing.T) {
		service, m := NewMock(t, 10)
		m.levels.EXPECT().ListLevelConfigs(gomock.Any()).Return([]domain.LevelConfig{{Level: 1, CommissionPercentage: d("10")}}, nil)
		payouts, err := service.DistributeLevelCommissions(context.Background(), 5, 77, d("10"))
		require.NoError(t, err)
		assert.Empty(t, payouts)
	})
}

func TestDistributeLevelCommissions_Errors(t *testing.T) {
	t.Run("level config lookup fails", func(t *testing.T) {
		service, m := NewMock(t, 10)
		m.levels.EXPECT().ListLevelConfigs(gomock.Any()).Return(nil, errors.New("timeout"))
		_, err := service.DistributeLevelCommissions(context.Background(), 5, 77, d("10"))
		assert.ErrorIs(t, err, domain.ErrTransientStorage)
	})

	t.Run("post failure aborts the walk", func(t *testing.T) {
		service, m := NewMock(t, 10)
		m.levels.EXPECT().ListLevelConfigs(gomock.Any()).Return(defaultLevels, nil)
		m.tree.EXPECT().Upline(gomock.Any(), int64(5)).Return([]int64{4, 3}, nil)
		m.members.EXPECT().Statuses(gomock.Any(), []int64{4, 3}).
			Return(map[int64]domain.MemberStatus{4: domain.MemberActive, 3: domain.MemberActive}, nil)
		m.ledger.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil, domain.Transient("wallet.Post", errors.New("deadlock")))

		payouts, err := service.DistributeLevelCommissions(context.Background(), 5, 77, d("10"))
		assert.ErrorIs(t, err, domain.ErrTransientStorage)
		assert.Nil(t, payouts)
	})
}

func TestPayDirectBonus(t *testing.T) {
	t.Run("credits active parent", func(t *testing.T) {
		service, m := NewMock(t, 10)
		m.tree.EXPECT().Upline(gomock.Any(), int64(2)).Return([]int64{1}, nil)
		m.members.EXPECT().Statuses(gomock.Any(), []int64{1}).Return(map[int64]domain.MemberStatus{1: domain.MemberActive}, nil)
		posted := recordPosts(m)

		payout, err := service.PayDirectBonus(context.Background(), 2, 9, d("500"))
		require.NoError(t, err)
		require.NotNil(t, payout)
		assert.Equal(t, int64(1), payout.MemberID)
		assert.True(t, payout.Amount.Equal(d("25")))
		require.Len(t, *posted, 1)
		assert.Equal(t, domain.TxDirectBonus, (*posted)[0].Type)
	})

	t.Run("root member has no referrer", func(t *testing.T) {
		service, m := NewMock(t, 10)
		m.tree.EXPECT().Upline(gomock.Any(), int64(1)).Return(nil, nil)

		payout, err := service.PayDirectBonus(context.Background(), 1, 9, d("500"))
		require.NoError(t, err)
		assert.Nil(t, payout)
	})

	t.Run("blocked parent is not paid", func(t *testing.T) {
		service, m := NewMock(t, 10)
		m.tree.EXPECT().Upline(gomock.Any(), int64(2)).Return([]int64{1}, nil)
		m.members.EXPECT().Statuses(gomock.Any(), []int64{1}).Return(map[int64]domain.MemberStatus{1: domain.MemberBlocked}, nil)

		payout, err := service.PayDirectBonus(context.Background(), 2, 9, d("500"))
		require.NoError(t, err)
		assert.Nil(t, payout)
	})

	t.Run("disabled by zero percent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := New(NewMockTree(ctrl), NewMockMemberRepo(ctrl), NewMockLevelRepo(ctrl), NewMockLedger(ctrl), 10, decimal.Zero)

		payout, err := service.PayDirectBonus(context.Background(), 2, 9, d("500"))
		require.NoError(t, err)
		assert.Nil(t, payout)
	})
}
