package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
	MemberBlocked  MemberStatus = "blocked"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberActive, MemberInactive, MemberBlocked:
		return true
	}
	return false
}

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type Member struct {
	ID           int64        `db:"id" json:"id"`
	Login        string       `db:"login" json:"login"`
	PasswordHash string       `db:"password_hash" json:"-"`
	ReferrerID   *int64       `db:"referrer_id" json:"referrer_id"`
	Status       MemberStatus `db:"status" json:"status"`
	Role         string       `db:"role" json:"role"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// TreeNode is the materialized-path position of a member. Ancestors holds the
// same ids as Path, root first, parent last.
type TreeNode struct {
	UserID          int64           `db:"user_id" json:"user_id"`
	ParentID        *int64          `db:"parent_id" json:"parent_id"`
	Level           int             `db:"level" json:"level"`
	Path            string          `db:"path" json:"path"`
	Ancestors       []int64         `db:"ancestors" json:"ancestors"`
	DirectReferrals int             `db:"direct_referrals" json:"direct_referrals"`
	TotalTeamSize   int             `db:"total_team_size" json:"total_team_size"`
	ActiveTeamSize  int             `db:"active_team_size" json:"active_team_size"`
	TeamBusiness    decimal.Decimal `db:"team_business" json:"team_business"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// LevelStat aggregates the members found at one depth below a node.
type LevelStat struct {
	Depth         int             `db:"depth" json:"depth"`
	Members       int             `db:"members" json:"members"`
	ActiveMembers int             `db:"active_members" json:"active_members"`
	Business      decimal.Decimal `db:"business" json:"business"`
}

type Plan struct {
	ID                 int64           `db:"id" json:"id"`
	Name               string          `db:"name" json:"name"`
	DailyROIPercentage decimal.Decimal `db:"daily_roi_percentage" json:"daily_roi_percentage"`
	DurationDays       int             `db:"duration_days" json:"duration_days"`
	MinAmount          decimal.Decimal `db:"min_amount" json:"min_amount"`
	MaxAmount          decimal.Decimal `db:"max_amount" json:"max_amount"`
	ReturnMultiplier   decimal.Decimal `db:"return_multiplier" json:"return_multiplier"`
	ReferralBoostRate  decimal.Decimal `db:"referral_boost_rate" json:"referral_boost_rate"`
	MaxReferralBoost   decimal.Decimal `db:"max_referral_boost" json:"max_referral_boost"`
	Active             bool            `db:"active" json:"active"`
}

// EarningsCap is the most ROI an investment of this plan may ever earn.
// A zero multiplier means uncapped and the returned ok is false.
func (p *Plan) EarningsCap(principal decimal.Decimal) (decimal.Decimal, bool) {
	if !p.ReturnMultiplier.IsPositive() {
		return decimal.Zero, false
	}
	return principal.Mul(p.ReturnMultiplier), true
}

type LevelConfig struct {
	Level                int             `db:"level" json:"level"`
	CommissionPercentage decimal.Decimal `db:"commission_percentage" json:"commission_percentage"`
	Active               bool            `db:"active" json:"active"`
}

type BoosterLevel struct {
	Level              int             `db:"level" json:"level"`
	MinDirectReferrals int             `db:"min_direct_referrals" json:"min_direct_referrals"`
	MinTeamBusiness    decimal.Decimal `db:"min_team_business" json:"min_team_business"`
	BoostRate          decimal.Decimal `db:"boost_rate" json:"boost_rate"`
}

type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentCancelled InvestmentStatus = "cancelled"
)

type Investment struct {
	ID             int64            `db:"id" json:"id"`
	MemberID       int64            `db:"member_id" json:"member_id"`
	PlanID         int64            `db:"plan_id" json:"plan_id"`
	InvestedAmount decimal.Decimal  `db:"invested_amount" json:"invested_amount"`
	CurrentValue   decimal.Decimal  `db:"current_value" json:"current_value"`
	TotalEarned    decimal.Decimal  `db:"total_earned" json:"total_earned"`
	Status         InvestmentStatus `db:"status" json:"status"`
	StartDate      time.Time        `db:"start_date" json:"start_date"`
	EndDate        time.Time        `db:"end_date" json:"end_date"`
	LastROIDate    *time.Time       `db:"last_roi_date" json:"last_roi_date"`
	CreatedAt      time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updated_at"`
}

// DueOn reports whether ROI for the given calendar date has not been applied yet
// and the investment is still running on that date.
func (i *Investment) DueOn(day time.Time) bool {
	if i.Status != InvestmentActive {
		return false
	}
	if i.EndDate.Before(day) {
		return false
	}
	return i.LastROIDate == nil || i.LastROIDate.Before(day)
}

// Date returns midnight UTC of t's calendar date as seen in t's location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type TransactionType string

const (
	TxDeposit         TransactionType = "deposit"
	TxInvest          TransactionType = "invest"
	TxROIEarning      TransactionType = "roi_earning"
	TxLevelCommission TransactionType = "level_commission"
	TxDirectBonus     TransactionType = "direct_bonus"
	TxWithdrawal      TransactionType = "withdrawal"
	TxFee             TransactionType = "fee"
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxFailed    TransactionStatus = "failed"
	TxCancelled TransactionStatus = "cancelled"
)

// Balance sources named by withdrawal and fee entries.
const (
	SourceMain       = "main"
	SourceROI        = "roi"
	SourceCommission = "commission"
	SourceBonus      = "bonus"
)

const DefaultCurrency = "USDT"

type Transaction struct {
	ID                  int64             `db:"id" json:"id"`
	MemberID            int64             `db:"member_id" json:"member_id"`
	Type                TransactionType   `db:"type" json:"type"`
	Amount              decimal.Decimal   `db:"amount" json:"amount"`
	FeeAmount           decimal.Decimal   `db:"fee_amount" json:"fee_amount"`
	NetAmount           decimal.Decimal   `db:"net_amount" json:"net_amount"`
	Currency            string            `db:"currency" json:"currency"`
	Status              TransactionStatus `db:"status" json:"status"`
	Source              string            `db:"source" json:"source"`
	Reference           string            `db:"reference" json:"reference"`
	Description         string            `db:"description" json:"description"`
	RelatedMemberID     *int64            `db:"related_member_id" json:"related_member_id"`
	RelatedInvestmentID *int64            `db:"related_investment_id" json:"related_investment_id"`
	ProcessedBy         *string           `db:"processed_by" json:"processed_by"`
	ProcessedAt         *time.Time        `db:"processed_at" json:"processed_at"`
	FailureReason       *string           `db:"failure_reason" json:"failure_reason"`
	CreatedAt           time.Time         `db:"created_at" json:"created_at"`
}

// NewTransaction builds an entry with net = amount - fee.
func NewTransaction(memberID int64, typ TransactionType, amount, fee decimal.Decimal, source string) *Transaction {
	return &Transaction{
		MemberID:  memberID,
		Type:      typ,
		Amount:    amount,
		FeeAmount: fee,
		NetAmount: amount.Sub(fee),
		Currency:  DefaultCurrency,
		Status:    TxCompleted,
		Source:    source,
	}
}

type Wallet struct {
	ID                int64           `db:"id" json:"id"`
	MemberID          int64           `db:"member_id" json:"member_id"`
	MainBalance       decimal.Decimal `db:"main_balance" json:"main_balance"`
	ROIBalance        decimal.Decimal `db:"roi_balance" json:"roi_balance"`
	CommissionBalance decimal.Decimal `db:"commission_balance" json:"commission_balance"`
	BonusBalance      decimal.Decimal `db:"bonus_balance" json:"bonus_balance"`
	TotalEarned       decimal.Decimal `db:"total_earned" json:"total_earned"`
	TotalWithdrawn    decimal.Decimal `db:"total_withdrawn" json:"total_withdrawn"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}
