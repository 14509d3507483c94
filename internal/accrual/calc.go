package accrual

import (
	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/shopspring/decimal"
)

const scale = 8

var hundred = decimal.NewFromInt(100)

// Rate is the daily percentage applied to one investment and the boosts that
// went into it. Boosts are additive fractions of the base percentage.
type Rate struct {
	Base          decimal.Decimal `json:"base"`
	ReferralBoost decimal.Decimal `json:"referral_boost"`
	BoosterBoost  decimal.Decimal `json:"booster_boost"`
	BoosterLevel  int             `json:"booster_level,omitempty"`
	Effective     decimal.Decimal `json:"effective"`
}

// EffectiveRate computes base × (1 + referral boost + booster boost). The
// referral boost grows with direct referrals up to the plan maximum; the
// booster boost comes from the highest booster level whose thresholds the
// owner meets.
func EffectiveRate(plan *domain.Plan, node *domain.TreeNode, boosters []domain.BoosterLevel) Rate {
	r := Rate{
		Base:          plan.DailyROIPercentage,
		ReferralBoost: decimal.Zero,
		BoosterBoost:  decimal.Zero,
	}
	if node != nil {
		if plan.ReferralBoostRate.IsPositive() {
			r.ReferralBoost = plan.ReferralBoostRate.Mul(decimal.NewFromInt(int64(node.DirectReferrals)))
			if plan.MaxReferralBoost.IsPositive() && r.ReferralBoost.GreaterThan(plan.MaxReferralBoost) {
				r.ReferralBoost = plan.MaxReferralBoost
			}
		}
		for _, b := range boosters {
			if node.DirectReferrals < b.MinDirectReferrals || node.TeamBusiness.LessThan(b.MinTeamBusiness) {
				continue
			}
			if b.Level > r.BoosterLevel {
				r.BoosterLevel = b.Level
				r.BoosterBoost = b.BoostRate
			}
		}
	}
	r.Effective = r.Base.Mul(decimal.NewFromInt(1).Add(r.ReferralBoost).Add(r.BoosterBoost))
	return r
}

// Yield is one day of ROI split into the part the base rate earns and the
// part the boosts add.
type Yield struct {
	Base    decimal.Decimal
	Booster decimal.Decimal
	Total   decimal.Decimal
}

func DailyYield(principal decimal.Decimal, r Rate) Yield {
	total := principal.Mul(r.Effective).Div(hundred).Round(scale)
	base := principal.Mul(r.Base).Div(hundred).Round(scale)
	if base.GreaterThan(total) {
		base = total
	}
	return Yield{Base: base, Booster: total.Sub(base), Total: total}
}
