package planrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const planColumns = `id, name, daily_roi_percentage, duration_days, min_amount, max_amount, return_multiplier,
		referral_boost_rate, max_referral_boost, active`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var p domain.Plan
	err := row.Scan(&p.ID, &p.Name, &p.DailyROIPercentage, &p.DurationDays, &p.MinAmount, &p.MaxAmount, &p.ReturnMultiplier,
		&p.ReferralBoostRate, &p.MaxReferralBoost, &p.Active)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindPlan(ctx context.Context, id int64) (*domain.Plan, error) {
	plan, err := scanPlan(r.db.QueryRow(ctx, "SELECT "+planColumns+" FROM plans WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find plan", zap.Int64("planID", id), zap.Error(err))
		return nil, err
	}
	return plan, nil
}

func (r *Repository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.db.Query(ctx, "SELECT "+planColumns+" FROM plans WHERE active ORDER BY id")
	if err != nil {
		zap.L().Error("can't list plans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			zap.L().Error("can't scan plan row", zap.Error(err))
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

// ListLevelConfigs returns every level config ordered by level, inactive ones
// included so callers can tell a disabled level from a missing one.
func (r *Repository) ListLevelConfigs(ctx context.Context) ([]domain.LevelConfig, error) {
	rows, err := r.db.Query(ctx, "SELECT level, commission_percentage, active FROM level_configs ORDER BY level")
	if err != nil {
		zap.L().Error("can't list level configs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var levels []domain.LevelConfig
	for rows.Next() {
		var lc domain.LevelConfig
		if err := rows.Scan(&lc.Level, &lc.CommissionPercentage, &lc.Active); err != nil {
			zap.L().Error("can't scan level config", zap.Error(err))
			return nil, err
		}
		levels = append(levels, lc)
	}
	return levels, rows.Err()
}

func (r *Repository) ListBoosterLevels(ctx context.Context) ([]domain.BoosterLevel, error) {
	rows, err := r.db.Query(ctx, "SELECT level, min_direct_referrals, min_team_business, boost_rate FROM booster_levels ORDER BY level")
	if err != nil {
		zap.L().Error("can't list booster levels", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var boosters []domain.BoosterLevel
	for rows.Next() {
		var b domain.BoosterLevel
		if err := rows.Scan(&b.Level, &b.MinDirectReferrals, &b.MinTeamBusiness, &b.BoostRate); err != nil {
			zap.L().Error("can't scan booster level", zap.Error(err))
			return nil, err
		}
		boosters = append(boosters, b)
	}
	return boosters, rows.Err()
}
