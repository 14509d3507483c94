package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"go.uber.org/zap"
)

const walletColumns = `id, member_id, main_balance, roi_balance, commission_balance, bonus_balance,
		total_earned, total_withdrawn, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.MemberID, &w.MainBalance, &w.ROIBalance, &w.CommissionBalance, &w.BonusBalance,
		&w.TotalEarned, &w.TotalWithdrawn, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) FindByMember(ctx context.Context, memberID int64) (*domain.Wallet, error) {
	query := "SELECT " + walletColumns + " FROM wallets WHERE member_id = $1"
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// FindByMemberForUpdate row-locks the wallet until the surrounding
// transaction ends.
func (r *Repository) FindByMemberForUpdate(ctx context.Context, memberID int64) (*domain.Wallet, error) {
	query := "SELECT " + walletColumns + " FROM wallets WHERE member_id = $1 FOR UPDATE"
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Create(ctx context.Context, memberID int64) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (member_id)
        VALUES ($1)
        RETURNING ` + walletColumns
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Update(ctx context.Context, wallet *domain.Wallet) error {
	query := `
		UPDATE wallets
		SET main_balance = $1, roi_balance = $2, commission_balance = $3, bonus_balance = $4,
			total_earned = $5, total_withdrawn = $6, updated_at = now()
		WHERE member_id = $7
	`
	tag, err := r.db.Exec(ctx, query, wallet.MainBalance, wallet.ROIBalance, wallet.CommissionBalance, wallet.BonusBalance,
		wallet.TotalEarned, wallet.TotalWithdrawn, wallet.MemberID)
	if err != nil {
		zap.L().Error("failed to update wallet", zap.Int64("memberID", wallet.MemberID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
