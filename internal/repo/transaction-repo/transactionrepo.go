package transactionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const transactionColumns = `id, member_id, type, amount, fee_amount, net_amount, currency, status, source,
		reference, description, related_member_id, related_investment_id, processed_by, processed_at,
		failure_reason, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.MemberID, &t.Type, &t.Amount, &t.FeeAmount, &t.NetAmount, &t.Currency, &t.Status, &t.Source,
		&t.Reference, &t.Description, &t.RelatedMemberID, &t.RelatedInvestmentID, &t.ProcessedBy, &t.ProcessedAt,
		&t.FailureReason, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

// Create appends an entry. The reference must be unique; re-posting the same
// reference fails on the unique constraint.
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (member_id, type, amount, fee_amount, net_amount, currency, status, source,
			reference, description, related_member_id, related_investment_id, processed_by, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, t.MemberID, t.Type, t.Amount, t.FeeAmount, t.NetAmount, t.Currency, t.Status, t.Source,
		t.Reference, t.Description, t.RelatedMemberID, t.RelatedInvestmentID, t.ProcessedBy, t.ProcessedAt).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Int64("memberID", t.MemberID), zap.String("type", string(t.Type)), zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = $1 FOR UPDATE", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock transaction", zap.Int64("transactionID", id), zap.Error(err))
		return nil, err
	}
	return t, nil
}

// FindByMember pages through a member's history, newest first.
func (r *Repository) FindByMember(ctx context.Context, memberID int64, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE member_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3
    `
	return r.list(ctx, query, memberID, limit, offset)
}

// FindCompletedByMember returns completed entries in posting order, the input
// of a wallet replay.
func (r *Repository) FindCompletedByMember(ctx context.Context, memberID int64) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE member_id = $1 AND status = 'completed'
        ORDER BY id ASC
    `
	return r.list(ctx, query, memberID)
}

func (r *Repository) FindPending(ctx context.Context, typ domain.TransactionType, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE type = $1 AND status = 'pending'
        ORDER BY id ASC
        LIMIT $2
    `
	return r.list(ctx, query, typ, limit)
}

// PendingSum is the amount reserved by pending withdrawals against source.
func (r *Repository) PendingSum(ctx context.Context, memberID int64, source string) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE member_id = $1 AND source = $2 AND type = 'withdrawal' AND status = 'pending'
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, memberID, source).Scan(&sum); err != nil {
		zap.L().Error("can't sum pending withdrawals", zap.Int64("memberID", memberID), zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

// SetStatus moves a pending entry to its terminal status and writes the
// processing trailer. It reports false when the entry was no longer pending.
func (r *Repository) SetStatus(ctx context.Context, t *domain.Transaction) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1, processed_by = $2, processed_at = $3, failure_reason = $4
		WHERE id = $5 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, t.Status, t.ProcessedBy, t.ProcessedAt, t.FailureReason, t.ID)
	if err != nil {
		zap.L().Error("can't update transaction status", zap.Int64("transactionID", t.ID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
