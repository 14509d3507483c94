package investmentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const investmentColumns = `id, member_id, plan_id, invested_amount, current_value, total_earned, status,
		start_date, end_date, last_roi_date, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(&inv.ID, &inv.MemberID, &inv.PlanID, &inv.InvestedAmount, &inv.CurrentValue, &inv.TotalEarned, &inv.Status,
		&inv.StartDate, &inv.EndDate, &inv.LastROIDate, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Investment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get investments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var investments []domain.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			zap.L().Error("can't scan investment row", zap.Error(err))
			return nil, err
		}
		investments = append(investments, *inv)
	}
	return investments, rows.Err()
}

func (r *Repository) find(ctx context.Context, query string, id int64) (*domain.Investment, error) {
	inv, err := scanInvestment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find investment", zap.Int64("investmentID", id), zap.Error(err))
		return nil, err
	}
	return inv, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Investment, error) {
	return r.find(ctx, "SELECT "+investmentColumns+" FROM investments WHERE id = $1", id)
}

// FindByIDForUpdate row-locks the investment; concurrent accruals of the same
// investment queue behind it.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Investment, error) {
	return r.find(ctx, "SELECT "+investmentColumns+" FROM investments WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) FindByMember(ctx context.Context, memberID int64) ([]domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE member_id = $1
        ORDER BY created_at DESC, id DESC
    `
	return r.list(ctx, query, memberID)
}

// FindDue selects investments still owed ROI for day. Advancing last_roi_date
// to day removes an investment from this set.
func (r *Repository) FindDue(ctx context.Context, day time.Time, limit int) ([]domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE status = 'active' AND (last_roi_date IS NULL OR last_roi_date < $1) AND end_date >= $1
        ORDER BY id ASC
        LIMIT $2
    `
	return r.list(ctx, query, day, limit)
}

func (r *Repository) FindDueByMember(ctx context.Context, memberID int64, day time.Time) ([]domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE member_id = $1 AND status = 'active' AND (last_roi_date IS NULL OR last_roi_date < $2) AND end_date >= $2
        ORDER BY id ASC
    `
	return r.list(ctx, query, memberID, day)
}

func (r *Repository) Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	query := `
        INSERT INTO investments (member_id, plan_id, invested_amount, current_value, total_earned, status, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query, inv.MemberID, inv.PlanID, inv.InvestedAmount, inv.CurrentValue, inv.TotalEarned,
		inv.Status, inv.StartDate, inv.EndDate).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save investment", zap.Int64("memberID", inv.MemberID), zap.Error(err))
		return nil, err
	}
	return inv, nil
}

func (r *Repository) Update(ctx context.Context, inv *domain.Investment) error {
	query := `
        UPDATE investments
        SET invested_amount = $1, current_value = $2, total_earned = $3, status = $4, last_roi_date = $5, updated_at = now()
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, inv.InvestedAmount, inv.CurrentValue, inv.TotalEarned, inv.Status, inv.LastROIDate, inv.ID)
	if err != nil {
		zap.L().Error("failed to update investment", zap.Int64("investmentID", inv.ID), zap.Error(err))
		return err
	}
	return nil
}

// CompleteExpired closes active investments whose term ended before day.
func (r *Repository) CompleteExpired(ctx context.Context, day time.Time) (int64, error) {
	query := `
        UPDATE investments
        SET status = 'completed', updated_at = now()
        WHERE status = 'active' AND end_date < $1
    `
	tag, err := r.db.Exec(ctx, query, day)
	if err != nil {
		zap.L().Error("failed to complete expired investments", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// PrincipalByMember sums the non-cancelled principal of every member.
func (r *Repository) PrincipalByMember(ctx context.Context) (map[int64]decimal.Decimal, error) {
	query := `
        SELECT member_id, SUM(invested_amount)
        FROM investments
        WHERE status <> 'cancelled'
        GROUP BY member_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't sum principal", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	principal := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var (
			memberID int64
			sum      decimal.Decimal
		)
		if err := rows.Scan(&memberID, &sum); err != nil {
			zap.L().Error("can't scan principal row", zap.Error(err))
			return nil, err
		}
		principal[memberID] = sum
	}
	return principal, rows.Err()
}
