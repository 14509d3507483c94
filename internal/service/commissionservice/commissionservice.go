package commissionservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=commissionservice.go -destination=mock_commissionservice.go -package=commissionservice

type Tree interface {
	Upline(ctx context.Context, memberID int64) ([]int64, error)
}

type MemberRepo interface {
	Statuses(ctx context.Context, ids []int64) (map[int64]domain.MemberStatus, error)
}

type LevelRepo interface {
	ListLevelConfigs(ctx context.Context) ([]domain.LevelConfig, error)
}

type Ledger interface {
	Post(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error)
}

// Payout is one credit made to an upline member.
type Payout struct {
	MemberID int64           `json:"member_id"`
	Level    int             `json:"level"`
	Amount   decimal.Decimal `json:"amount"`
}

type Service struct {
	tree               Tree
	members            MemberRepo
	levels             LevelRepo
	ledger             Ledger
	maxLevels          int
	directBonusPercent decimal.Decimal
}

func New(tree Tree, members MemberRepo, levels LevelRepo, ledger Ledger, maxLevels int, directBonusPercent decimal.Decimal) *Service {
	return &Service{
		tree:               tree,
		members:            members,
		levels:             levels,
		ledger:             ledger,
		maxLevels:          maxLevels,
		directBonusPercent: directBonusPercent,
	}
}

var hundred = decimal.NewFromInt(100)

// DistributeLevelCommissions pays every eligible ancestor of earnerID its
// level percentage of roi. Ancestors are visited nearest first, so wallet
// locks are taken deeper to shallower. The walk stops past the deepest active
// level config. Members that are not active are skipped but still occupy
// their depth. Must run inside the ROI transaction.
func (s *Service) DistributeLevelCommissions(ctx context.Context, earnerID, investmentID int64, roi decimal.Decimal) ([]Payout, error) {
	const op = "commission.DistributeLevelCommissions"
	if !roi.IsPositive() || s.maxLevels <= 0 {
		return nil, nil
	}

	configs, err := s.levels.ListLevelConfigs(ctx)
	if err != nil {
		return nil, domain.Transient(op, err)
	}
	rates := make(map[int]decimal.Decimal, len(configs))
	deepest := 0
	for _, c := range configs {
		if c.Active && c.CommissionPercentage.IsPositive() {
			rates[c.Level] = c.CommissionPercentage
			deepest = max(deepest, c.Level)
		}
	}
	deepest = min(deepest, s.maxLevels)
	if deepest == 0 {
		return nil, nil
	}

	upline, err := s.tree.Upline(ctx, earnerID)
	if err != nil {
		return nil, err
	}
	if len(upline) > deepest {
		upline = upline[:deepest]
	}
	if len(upline) == 0 {
		return nil, nil
	}

	statuses, err := s.members.Statuses(ctx, upline)
	if err != nil {
		return nil, domain.Transient(op, err)
	}

	var payouts []Payout
	for i, ancestorID := range upline {
		level := i + 1
		rate, ok := rates[level]
		if !ok {
			continue
		}
		if statuses[ancestorID] != domain.MemberActive {
			zap.L().Debug("skipping commission for non-active ancestor",
				zap.Int64("memberID", ancestorID), zap.Int("level", level), zap.String("status", string(statuses[ancestorID])))
			continue
		}
		amount := roi.Mul(rate).Div(hundred).Round(8)
		if !amount.IsPositive() {
			continue
		}

		entry := domain.NewTransaction(ancestorID, domain.TxLevelCommission, amount, decimal.Zero, "")
		entry.RelatedMemberID = &earnerID
		entry.RelatedInvestmentID = &investmentID
		entry.Description = fmt.Sprintf("level %d commission from member %d", level, earnerID)
		if _, err := s.ledger.Post(ctx, entry); err != nil {
			return nil, err
		}
		payouts = append(payouts, Payout{MemberID: ancestorID, Level: level, Amount: amount})
	}
	return payouts, nil
}

// PayDirectBonus credits the direct referrer of memberID with a share of
// new principal. Nothing is paid to roots or to a referrer that is not active.
func (s *Service) PayDirectBonus(ctx context.Context, memberID, investmentID int64, principal decimal.Decimal) (*Payout, error) {
	const op = "commission.PayDirectBonus"
	if !s.directBonusPercent.IsPositive() || !principal.IsPositive() {
		return nil, nil
	}
	upline, err := s.tree.Upline(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if len(upline) == 0 {
		return nil, nil
	}
	parentID := upline[0]

	statuses, err := s.members.Statuses(ctx, []int64{parentID})
	if err != nil {
		return nil, domain.Transient(op, err)
	}
	if statuses[parentID] != domain.MemberActive {
		return nil, nil
	}

	amount := principal.Mul(s.directBonusPercent).Div(hundred).Round(8)
	if !amount.IsPositive() {
		return nil, nil
	}
	entry := domain.NewTransaction(parentID, domain.TxDirectBonus, amount, decimal.Zero, "")
	entry.RelatedMemberID = &memberID
	entry.RelatedInvestmentID = &investmentID
	entry.Description = fmt.Sprintf("direct bonus for investment %d of member %d", investmentID, memberID)
	if _, err := s.ledger.Post(ctx, entry); err != nil {
		return nil, err
	}
	return &Payout{MemberID: parentID, Level: 1, Amount: amount}, nil
}
