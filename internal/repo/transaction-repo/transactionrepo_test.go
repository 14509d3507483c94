package transactionrepo

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

var columns = []string{"id", "member_id", "type", "amount", "fee_amount", "net_amount", "currency", "status", "source",
	"reference", "description", "related_member_id", "related_investment_id", "processed_by", "processed_at",
	"failure_reason", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func row(rows *pgxmock.Rows, id int64, typ domain.TransactionType, amount string, status domain.TransactionStatus, now time.Time) *pgxmock.Rows {
	a := decimal.RequireFromString(amount)
	var nilID *int64
	var nilStr *string
	var nilTime *time.Time
	return rows.AddRow(id, int64(7), typ, a, decimal.Zero, a, domain.DefaultCurrency, status, domain.SourceMain,
		"ref", "", nilID, nilID, nilStr, nilTime, nilStr, now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	entry := domain.NewTransaction(7, domain.TxDeposit, decimal.NewFromInt(100), decimal.Zero, domain.SourceMain)
	entry.Reference = "4f7c2c2e-3b1a-4f5e-9a8d-111111111111"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(int64(7), domain.TxDeposit, entry.Amount, entry.FeeAmount, entry.NetAmount, domain.DefaultCurrency,
			domain.TxCompleted, domain.SourceMain, entry.Reference, "", entry.RelatedMemberID, entry.RelatedInvestmentID,
			entry.ProcessedBy, entry.ProcessedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	created, err := repo.Create(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnError(errors.New("duplicate reference"))
	_, err = repo.Create(context.Background(), entry)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id = $1 FOR UPDATE")).
					WithArgs(int64(3)).
					WillReturnRows(row(pgxmock.NewRows(columns), 3, domain.TxWithdrawal, "50", domain.TxPending, now))
			},
		},
		{
			name: "Not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id = $1 FOR UPDATE")).
					WithArgs(int64(3)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE id = $1 FOR UPDATE")).
					WithArgs(int64(3)).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entry, err := repo.FindByIDForUpdate(context.Background(), 3)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, entry)
			} else {
				require.NotNil(t, entry)
				assert.Equal(t, domain.TxPending, entry.Status)
				assert.True(t, entry.Amount.Equal(decimal.NewFromInt(50)))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindCompletedByMember(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(columns)
	row(rows, 1, domain.TxDeposit, "100", domain.TxCompleted, now)
	row(rows, 2, domain.TxInvest, "60", domain.TxCompleted, now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1 AND status = 'completed' ORDER BY id ASC")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	entries, err := repo.FindCompletedByMember(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.TxInvest, entries[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByMember(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC LIMIT $2 OFFSET $3")).
		WithArgs(int64(7), 20, 40).
		WillReturnError(errors.New("db error"))

	_, err := repo.FindByMember(context.Background(), 7, 20, 40)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(columns)
	row(rows, 9, domain.TxWithdrawal, "25", domain.TxPending, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("WHERE type = $1 AND status = 'pending'")).
		WithArgs(domain.TxWithdrawal, 10).
		WillReturnRows(rows)

	entries, err := repo.FindPending(context.Background(), domain.TxWithdrawal, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(9), entries[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PendingSum(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0)")).
		WithArgs(int64(7), domain.SourceROI).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.RequireFromString("12.5")))

	sum, err := repo.PendingSum(context.Background(), 7, domain.SourceROI)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("12.5")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	by := "payout"

	entry := &domain.Transaction{ID: 4, Status: domain.TxCompleted, ProcessedBy: &by, ProcessedAt: &now}

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $5 AND status = 'pending'")).
		WithArgs(domain.TxCompleted, &by, &now, entry.FailureReason, int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	ok, err := repo.SetStatus(context.Background(), entry)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $5 AND status = 'pending'")).
		WithArgs(domain.TxCompleted, &by, &now, entry.FailureReason, int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	ok, err = repo.SetStatus(context.Background(), entry)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
