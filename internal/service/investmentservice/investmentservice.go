package investmentservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/GlebRadaev/teamvest/internal/service/commissionservice"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=investmentservice.go -destination=mock_investmentservice.go -package=investmentservice

type Repo interface {
	FindByID(ctx context.Context, id int64) (*domain.Investment, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Investment, error)
	FindByMember(ctx context.Context, memberID int64) ([]domain.Investment, error)
	FindDue(ctx context.Context, day time.Time, limit int) ([]domain.Investment, error)
	FindDueByMember(ctx context.Context, memberID int64, day time.Time) ([]domain.Investment, error)
	Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	Update(ctx context.Context, inv *domain.Investment) error
	CompleteExpired(ctx context.Context, day time.Time) (int64, error)
}

type PlanRepo interface {
	FindPlan(ctx context.Context, id int64) (*domain.Plan, error)
}

type MemberRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
}

type Ledger interface {
	Post(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error)
}

type Tree interface {
	AddTeamBusiness(ctx context.Context, memberID int64, amount decimal.Decimal) error
}

type Commissions interface {
	DistributeLevelCommissions(ctx context.Context, earnerID, investmentID int64, roi decimal.Decimal) ([]commissionservice.Payout, error)
	PayDirectBonus(ctx context.Context, memberID, investmentID int64, principal decimal.Decimal) (*commissionservice.Payout, error)
}

// ROIRequest describes one ROI application. AccrualDate is set by the accrual
// engine and makes the call idempotent per calendar date; manual admin
// corrections leave it nil. NewCurrentValue defaults to current value plus
// the applied amount.
type ROIRequest struct {
	InvestmentID    int64            `json:"investment_id"`
	Amount          decimal.Decimal  `json:"amount"`
	NewCurrentValue *decimal.Decimal `json:"new_current_value,omitempty"`
	AccrualDate     *time.Time       `json:"accrual_date,omitempty"`
	Description     string           `json:"description,omitempty"`
}

type ROIResult struct {
	Investment      domain.Investment          `json:"investment"`
	EntryID         int64                      `json:"entry_id,omitempty"`
	Applied         decimal.Decimal            `json:"applied"`
	Capped          bool                       `json:"capped"`
	Completed       bool                       `json:"completed"`
	Commissions     []commissionservice.Payout `json:"commissions,omitempty"`
	CommissionTotal decimal.Decimal            `json:"commission_total"`
}

type Service struct {
	repo        Repo
	plans       PlanRepo
	members     MemberRepo
	ledger      Ledger
	tree        Tree
	commissions Commissions
	txManager   pg.TXManager
	location    *time.Location
	now         func() time.Time
}

// New builds the service. Calendar dates (start, end and accrual dates) are
// taken in loc, the same zone the accrual engine uses; nil means UTC.
func New(repo Repo, plans PlanRepo, members MemberRepo, ledger Ledger, tree Tree, commissions Commissions, txManager pg.TXManager, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:        repo,
		plans:       plans,
		members:     members,
		ledger:      ledger,
		tree:        tree,
		commissions: commissions,
		txManager:   txManager,
		location:    loc,
		now:         time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.Date(s.now().In(s.location))
}

func (s *Service) plan(ctx context.Context, op string, id int64) (*domain.Plan, error) {
	plan, err := s.plans.FindPlan(ctx, id)
	if err != nil {
		return nil, domain.Transient(op, err)
	}
	if plan == nil {
		return nil, domain.NewNotFoundError(op, "plan %d not found", id)
	}
	return plan, nil
}

func (s *Service) lock(ctx context.Context, op string, id int64) (*domain.Investment, error) {
	inv, err := s.repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, domain.Transient(op, err)
	}
	if inv == nil {
		return nil, domain.NewNotFoundError(op, "investment %d not found", id)
	}
	return inv, nil
}

// principalEvent debits the owner's main balance for new principal, grows
// the upline's team business and pays the direct bonus.
func (s *Service) principalEvent(ctx context.Context, op string, inv *domain.Investment, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	entry := domain.NewTransaction(inv.MemberID, domain.TxInvest, amount, decimal.Zero, domain.SourceMain)
	entry.RelatedInvestmentID = &inv.ID
	entry.Description = description
	posted, err := s.ledger.Post(ctx, entry)
	if err != nil {
		return nil, err
	}
	if err := s.tree.AddTeamBusiness(ctx, inv.MemberID, amount); err != nil {
		return nil, err
	}
	if _, err := s.commissions.PayDirectBonus(ctx, inv.MemberID, inv.ID, amount); err != nil {
		return nil, err
	}
	return posted, nil
}

func checkBounds(op string, plan *domain.Plan, principal decimal.Decimal) error {
	if principal.LessThan(plan.MinAmount) {
		return domain.NewValidationError(op, "amount %s is below plan minimum %s", principal, plan.MinAmount)
	}
	if plan.MaxAmount.IsPositive() && principal.GreaterThan(plan.MaxAmount) {
		return domain.NewValidationError(op, "amount %s exceeds plan maximum %s", principal, plan.MaxAmount)
	}
	return nil
}

// Open creates an active investment funded from the member's main balance.
// The investment and its invest entry commit together.
func (s *Service) Open(ctx context.Context, memberID, planID int64, amount decimal.Decimal) (*domain.Investment, *domain.Transaction, error) {
	const op = "investment.Open"
	amount = amount.Round(8)
	if !amount.IsPositive() {
		return nil, nil, domain.NewValidationError(op, "amount must be positive, got %s", amount)
	}

	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, nil, domain.Transient(op, err)
	}
	if member == nil {
		return nil, nil, domain.NewNotFoundError(op, "member %d not found", memberID)
	}
	if member.Status != domain.MemberActive {
		return nil, nil, domain.NewStateConflictError(op, "member %d is %s", memberID, member.Status)
	}

	plan, err := s.plan(ctx, op, planID)
	if err != nil {
		return nil, nil, err
	}
	if !plan.Active {
		return nil, nil, domain.NewValidationError(op, "plan %d is not open for investment", planID)
	}
	if err := checkBounds(op, plan, amount); err != nil {
		return nil, nil, err
	}

	start := s.today()
	inv := &domain.Investment{
		MemberID:       memberID,
		PlanID:         planID,
		InvestedAmount: amount,
		CurrentValue:   amount,
		TotalEarned:    decimal.Zero,
		Status:         domain.InvestmentActive,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, plan.DurationDays),
	}

	var entry *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.repo.Create(ctx, inv)
		if err != nil {
			return domain.Transient(op, err)
		}
		inv = created
		entry, err = s.principalEvent(ctx, op, inv, amount, fmt.Sprintf("investment in plan %s", plan.Name))
		return err
	})
	if err != nil {
		zap.L().Error("failed to open investment", zap.Int64("memberID", memberID), zap.Int64("planID", planID), zap.Error(err))
		return nil, nil, err
	}
	zap.L().Info("investment opened", zap.Int64("investmentID", inv.ID), zap.Int64("memberID", memberID),
		zap.String("amount", amount.String()))
	return inv, entry, nil
}

// TopUp adds principal to an active investment. Only the owner or an admin
// may top up; other callers see the investment as missing.
func (s *Service) TopUp(ctx context.Context, callerID int64, isAdmin bool, investmentID int64, amount decimal.Decimal) (*domain.Investment, *domain.Transaction, error) {
	const op = "investment.TopUp"
	amount = amount.Round(8)
	if !amount.IsPositive() {
		return nil, nil, domain.NewValidationError(op, "amount must be positive, got %s", amount)
	}

	var (
		inv   *domain.Investment
		entry *domain.Transaction
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if inv, err = s.lock(ctx, op, investmentID); err != nil {
			return err
		}
		if !isAdmin && inv.MemberID != callerID {
			return domain.NewNotFoundError(op, "investment %d not found", investmentID)
		}
		if inv.Status != domain.InvestmentActive {
			return domain.NewStateConflictError(op, "investment %d is %s", investmentID, inv.Status)
		}
		plan, err := s.plan(ctx, op, inv.PlanID)
		if err != nil {
			return err
		}
		if err := checkBounds(op, plan, inv.InvestedAmount.Add(amount)); err != nil {
			return err
		}

		inv.InvestedAmount = inv.InvestedAmount.Add(amount)
		inv.CurrentValue = inv.CurrentValue.Add(amount)
		if err := s.repo.Update(ctx, inv); err != nil {
			return domain.Transient(op, err)
		}
		entry, err = s.principalEvent(ctx, op, inv, amount, fmt.Sprintf("top-up of investment %d", inv.ID))
		return err
	})
	if err != nil {
		zap.L().Warn("top-up rejected", zap.Int64("investmentID", investmentID), zap.Error(err))
		return nil, nil, err
	}
	return inv, entry, nil
}

// ApplyROI credits roi to the investment owner and pays level commissions on
// it, all in one transaction. Earnings never exceed the plan cap; reaching
// the cap or the end date completes the investment.
func (s *Service) ApplyROI(ctx context.Context, req ROIRequest) (*ROIResult, error) {
	const op = "investment.ApplyROI"
	amount := req.Amount.Round(8)
	if !amount.IsPositive() {
		return nil, domain.NewValidationError(op, "roi amount must be positive, got %s", req.Amount)
	}
	var day *time.Time
	if req.AccrualDate != nil {
		d := domain.Date(*req.AccrualDate)
		if d.After(s.today()) {
			return nil, domain.NewValidationError(op, "accrual date %s is in the future", d.Format(time.DateOnly))
		}
		day = &d
	}

	var result *ROIResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inv, err := s.lock(ctx, op, req.InvestmentID)
		if err != nil {
			return err
		}
		if inv.Status != domain.InvestmentActive {
			return domain.NewStateConflictError(op, "investment %d is %s", inv.ID, inv.Status)
		}
		if day != nil && inv.LastROIDate != nil && !inv.LastROIDate.Before(*day) {
			return domain.NewStateConflictError(op, "roi for investment %d already applied for %s", inv.ID, day.Format(time.DateOnly))
		}
		plan, err := s.plan(ctx, op, inv.PlanID)
		if err != nil {
			return err
		}

		res := &ROIResult{Applied: amount, CommissionTotal: decimal.Zero}
		if limit, ok := plan.EarningsCap(inv.InvestedAmount); ok {
			remaining := limit.Sub(inv.TotalEarned)
			if !remaining.GreaterThan(amount) {
				res.Applied = decimal.Max(remaining, decimal.Zero)
				res.Capped = true
			}
		}

		if res.Applied.IsPositive() {
			entry := domain.NewTransaction(inv.MemberID, domain.TxROIEarning, res.Applied, decimal.Zero, "")
			entry.RelatedInvestmentID = &inv.ID
			entry.Description = req.Description
			if entry.Description == "" {
				entry.Description = fmt.Sprintf("roi of investment %d", inv.ID)
			}
			posted, err := s.ledger.Post(ctx, entry)
			if err != nil {
				return err
			}
			res.EntryID = posted.ID

			if res.Commissions, err = s.commissions.DistributeLevelCommissions(ctx, inv.MemberID, inv.ID, res.Applied); err != nil {
				return err
			}
			for _, p := range res.Commissions {
				res.CommissionTotal = res.CommissionTotal.Add(p.Amount)
			}
		}

		inv.TotalEarned = inv.TotalEarned.Add(res.Applied)
		if req.NewCurrentValue != nil && !res.Capped {
			inv.CurrentValue = req.NewCurrentValue.Round(8)
		} else {
			inv.CurrentValue = inv.CurrentValue.Add(res.Applied)
		}
		if day != nil {
			inv.LastROIDate = day
			if !inv.EndDate.After(*day) {
				res.Completed = true
			}
		}
		if res.Capped {
			res.Completed = true
		}
		if res.Completed {
			inv.Status = domain.InvestmentCompleted
		}
		if err := s.repo.Update(ctx, inv); err != nil {
			return domain.Transient(op, err)
		}
		res.Investment = *inv
		result = res
		return nil
	})
	if err != nil {
		zap.L().Error("failed to apply roi", zap.Int64("investmentID", req.InvestmentID), zap.Error(err))
		return nil, err
	}
	if result.Completed {
		zap.L().Info("investment completed", zap.Int64("investmentID", req.InvestmentID), zap.Bool("capped", result.Capped))
	}
	return result, nil
}

// Cancel terminates an active investment. The principal stops counting
// towards the upline's team business.
func (s *Service) Cancel(ctx context.Context, investmentID int64) (*domain.Investment, error) {
	const op = "investment.Cancel"
	var inv *domain.Investment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if inv, err = s.lock(ctx, op, investmentID); err != nil {
			return err
		}
		if inv.Status != domain.InvestmentActive {
			return domain.NewStateConflictError(op, "investment %d is %s", investmentID, inv.Status)
		}
		inv.Status = domain.InvestmentCancelled
		if err := s.repo.Update(ctx, inv); err != nil {
			return domain.Transient(op, err)
		}
		return s.tree.AddTeamBusiness(ctx, inv.MemberID, inv.InvestedAmount.Neg())
	})
	if err != nil {
		zap.L().Error("failed to cancel investment", zap.Int64("investmentID", investmentID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("investment cancelled", zap.Int64("investmentID", investmentID))
	return inv, nil
}

// CompleteExpired completes every active investment whose end date is before
// day.
func (s *Service) CompleteExpired(ctx context.Context, day time.Time) (int64, error) {
	n, err := s.repo.CompleteExpired(ctx, domain.Date(day))
	if err != nil {
		return 0, domain.Transient("investment.CompleteExpired", err)
	}
	if n > 0 {
		zap.L().Info("expired investments completed", zap.Int64("count", n))
	}
	return n, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Investment, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Transient("investment.Get", err)
	}
	if inv == nil {
		return nil, domain.NewNotFoundError("investment.Get", "investment %d not found", id)
	}
	return inv, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID int64) ([]domain.Investment, error) {
	investments, err := s.repo.FindByMember(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get investments", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, domain.Transient("investment.ListByMember", err)
	}
	return investments, nil
}

// Due returns at most limit investments still owed ROI for day.
func (s *Service) Due(ctx context.Context, day time.Time, limit int) ([]domain.Investment, error) {
	investments, err := s.repo.FindDue(ctx, domain.Date(day), limit)
	if err != nil {
		return nil, domain.Transient("investment.Due", err)
	}
	return investments, nil
}

func (s *Service) DueForMember(ctx context.Context, memberID int64, day time.Time) ([]domain.Investment, error) {
	investments, err := s.repo.FindDueByMember(ctx, memberID, domain.Date(day))
	if err != nil {
		return nil, domain.Transient("investment.DueForMember", err)
	}
	return investments, nil
}

func (s *Service) Plan(ctx context.Context, id int64) (*domain.Plan, error) {
	return s.plan(ctx, "investment.Plan", id)
}
