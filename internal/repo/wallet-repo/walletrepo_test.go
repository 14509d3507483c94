package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "member_id", "main_balance", "roi_balance", "commission_balance", "bonus_balance",
	"total_earned", "total_withdrawn", "updated_at"}

type decimalArg struct{ want decimal.Decimal }

func (a decimalArg) Match(v any) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(a.want)
}

func dec(s string) decimalArg { return decimalArg{want: decimal.RequireFromString(s)} }

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func walletRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow(int64(1), int64(7),
		decimal.RequireFromString("100"), decimal.RequireFromString("10"), decimal.Zero, decimal.Zero,
		decimal.RequireFromString("10"), decimal.Zero, now)
}

func TestRepository_FindByMember(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Wallet found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallets WHERE member_id = $1")).
					WithArgs(int64(7)).
					WillReturnRows(walletRow(now))
			},
		},
		{
			name: "Wallet not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallets WHERE member_id = $1")).
					WithArgs(int64(7)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM wallets WHERE member_id = $1")).
					WithArgs(int64(7)).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wallet, err := repo.FindByMember(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, wallet)
			} else {
				require.NotNil(t, wallet)
				assert.Equal(t, int64(7), wallet.MemberID)
				assert.True(t, wallet.MainBalance.Equal(decimal.NewFromInt(100)))
				assert.True(t, wallet.ROIBalance.Equal(decimal.NewFromInt(10)))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByMemberForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM wallets WHERE member_id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(walletRow(time.Now()))

	wallet, err := repo.FindByMemberForUpdate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), wallet.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallets (member_id) VALUES ($1)")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), int64(7),
			decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, now))

	wallet, err := repo.Create(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, wallet.MainBalance.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	wallet := &domain.Wallet{
		MemberID:          7,
		MainBalance:       decimal.RequireFromString("90"),
		ROIBalance:        decimal.RequireFromString("10"),
		CommissionBalance: decimal.Zero,
		BonusBalance:      decimal.Zero,
		TotalEarned:       decimal.RequireFromString("10"),
		TotalWithdrawn:    decimal.Zero,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets SET main_balance = $1")).
					WithArgs(dec("90"), dec("10"), dec("0"), dec("0"), dec("10"), dec("0"), int64(7)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Missing wallet",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
					WithArgs(dec("90"), dec("10"), dec("0"), dec("0"), dec("10"), dec("0"), int64(7)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE wallets")).
					WithArgs(dec("90"), dec("10"), dec("0"), dec("0"), dec("10"), dec("0"), int64(7)).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), wallet)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
