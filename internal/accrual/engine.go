package accrual

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/metrics"
	"github.com/GlebRadaev/teamvest/internal/service/investmentservice"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=engine.go -destination=mock_engine.go -package=accrual

type Investments interface {
	Due(ctx context.Context, day time.Time, limit int) ([]domain.Investment, error)
	DueForMember(ctx context.Context, memberID int64, day time.Time) ([]domain.Investment, error)
	Plan(ctx context.Context, id int64) (*domain.Plan, error)
	ApplyROI(ctx context.Context, req investmentservice.ROIRequest) (*investmentservice.ROIResult, error)
	CompleteExpired(ctx context.Context, day time.Time) (int64, error)
}

type Tree interface {
	Node(ctx context.Context, memberID int64) (*domain.TreeNode, error)
}

type BoosterRepo interface {
	ListBoosterLevels(ctx context.Context) ([]domain.BoosterLevel, error)
}

type Sink interface {
	Publish(ctx context.Context, key string, value any) error
}

// Triggers recorded on run summaries.
const (
	TriggerSchedule = "schedule"
	TriggerAdmin    = "admin"
)

type ItemStatus string

const (
	ItemProcessed ItemStatus = "processed"
	ItemSkipped   ItemStatus = "skipped"
	ItemFailed    ItemStatus = "failed"
)

type ItemResult struct {
	InvestmentID int64           `json:"investment_id"`
	MemberID     int64           `json:"member_id"`
	Status       ItemStatus      `json:"status"`
	ROI          decimal.Decimal `json:"roi"`
	Base         decimal.Decimal `json:"base"`
	Booster      decimal.Decimal `json:"booster"`
	Commission   decimal.Decimal `json:"commission"`
	Rate         *Rate           `json:"rate,omitempty"`
	Completed    bool            `json:"completed,omitempty"`
	Error        string          `json:"error,omitempty"`
}

type Summary struct {
	RunID           string          `json:"run_id"`
	Date            string          `json:"date"`
	Trigger         string          `json:"trigger"`
	StartedAt       time.Time       `json:"started_at"`
	Duration        time.Duration   `json:"duration"`
	Due             int             `json:"due"`
	Processed       int             `json:"processed"`
	Failed          int             `json:"failed"`
	Skipped         int             `json:"skipped"`
	TotalROI        decimal.Decimal `json:"total_roi"`
	TotalBase       decimal.Decimal `json:"total_base"`
	TotalBooster    decimal.Decimal `json:"total_booster"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	Items           []ItemResult    `json:"items"`
	Errors          []string        `json:"errors,omitempty"`
}

func newSummary(trigger string, day, started time.Time) *Summary {
	return &Summary{
		RunID:           uuid.NewString(),
		Date:            day.Format(time.DateOnly),
		Trigger:         trigger,
		StartedAt:       started,
		TotalROI:        decimal.Zero,
		TotalBase:       decimal.Zero,
		TotalBooster:    decimal.Zero,
		TotalCommission: decimal.Zero,
	}
}

func (s *Summary) add(item ItemResult) {
	s.Items = append(s.Items, item)
	switch item.Status {
	case ItemProcessed:
		s.Processed++
		s.TotalROI = s.TotalROI.Add(item.ROI)
		s.TotalBase = s.TotalBase.Add(item.Base)
		s.TotalBooster = s.TotalBooster.Add(item.Booster)
		s.TotalCommission = s.TotalCommission.Add(item.Commission)
	case ItemSkipped:
		s.Skipped++
	case ItemFailed:
		s.Failed++
		s.Errors = append(s.Errors, fmt.Sprintf("investment %d: %s", item.InvestmentID, item.Error))
	}
}

// Self-service outcomes.
const (
	MemberNothingDue = "nothing_due"
	MemberProcessed  = "processed"
	MemberPartial    = "partial"
	MemberFailed     = "failed"
)

type MemberResult struct {
	MemberID int64           `json:"member_id"`
	Date     string          `json:"date"`
	Status   string          `json:"status"`
	TotalROI decimal.Decimal `json:"total_roi"`
	Items    []ItemResult    `json:"items"`
}

type BatchResult struct {
	InvestmentID int64                        `json:"investment_id"`
	Result       *investmentservice.ROIResult `json:"result,omitempty"`
	Error        string                       `json:"error,omitempty"`
}

type Config struct {
	Workers    int
	BatchLimit int
	Location   *time.Location
}

type Engine struct {
	investments Investments
	tree        Tree
	boosters    BoosterRepo
	sink        Sink
	workerPool  WorkerPoolI
	batchLimit  int
	location    *time.Location
	now         func() time.Time
}

var inFlight sync.Map

func New(cfg Config, investments Investments, tree Tree, boosters BoosterRepo, sink Sink) *Engine {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	limit := cfg.BatchLimit
	if limit <= 0 {
		limit = 10000
	}
	return &Engine{
		investments: investments,
		tree:        tree,
		boosters:    boosters,
		sink:        sink,
		workerPool:  NewWorkerPool(cfg.Workers),
		batchLimit:  limit,
		location:    loc,
		now:         time.Now,
	}
}

func (e *Engine) Close() {
	e.workerPool.Close()
}

// Today is the accrual calendar date in the configured time zone.
func (e *Engine) Today() time.Time {
	return domain.Date(e.now().In(e.location))
}

// plans memoises plan lookups for the duration of one run.
type plans struct {
	mu    sync.Mutex
	src   Investments
	cache map[int64]*domain.Plan
}

func (p *plans) get(ctx context.Context, id int64) (*domain.Plan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if plan, ok := p.cache[id]; ok {
		return plan, nil
	}
	plan, err := p.src.Plan(ctx, id)
	if err != nil {
		return nil, err
	}
	p.cache[id] = plan
	return plan, nil
}

func (e *Engine) newPlans() *plans {
	return &plans{src: e.investments, cache: make(map[int64]*domain.Plan)}
}

// accrue is the per-investment unit shared by the scheduled run and
// self-service processing. Each ApplyROI call is its own transaction.
func (e *Engine) accrue(ctx context.Context, inv domain.Investment, day time.Time, boosters []domain.BoosterLevel, plans *plans) ItemResult {
	item := ItemResult{
		InvestmentID: inv.ID,
		MemberID:     inv.MemberID,
		ROI:          decimal.Zero,
		Base:         decimal.Zero,
		Booster:      decimal.Zero,
		Commission:   decimal.Zero,
	}
	fail := func(err error) ItemResult {
		item.Status = ItemFailed
		item.Error = err.Error()
		zap.L().Error("accrual failed", zap.Int64("investmentID", inv.ID), zap.Int64("memberID", inv.MemberID), zap.Error(err))
		return item
	}

	if _, busy := inFlight.LoadOrStore(inv.ID, struct{}{}); busy {
		item.Status = ItemSkipped
		return item
	}
	defer inFlight.Delete(inv.ID)

	plan, err := plans.get(ctx, inv.PlanID)
	if err != nil {
		return fail(err)
	}
	node, err := e.tree.Node(ctx, inv.MemberID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fail(err)
	}

	rate := EffectiveRate(plan, node, boosters)
	yield := DailyYield(inv.InvestedAmount, rate)
	item.Rate = &rate
	if !yield.Total.IsPositive() {
		item.Status = ItemSkipped
		return item
	}

	res, err := e.investments.ApplyROI(ctx, investmentservice.ROIRequest{
		InvestmentID: inv.ID,
		Amount:       yield.Total,
		AccrualDate:  &day,
		Description:  "daily roi for " + day.Format(time.DateOnly),
	})
	switch {
	case errors.Is(err, domain.ErrStateConflict):
		zap.L().Debug("investment no longer due", zap.Int64("investmentID", inv.ID), zap.Error(err))
		item.Status = ItemSkipped
		return item
	case err != nil:
		return fail(err)
	}

	item.Status = ItemProcessed
	item.ROI = res.Applied
	item.Base = decimal.Min(yield.Base, res.Applied)
	item.Booster = res.Applied.Sub(item.Base)
	item.Commission = res.CommissionTotal
	item.Completed = res.Completed
	return item
}

func record(item ItemResult) {
	metrics.AccrualItems.WithLabelValues(string(item.Status)).Inc()
	if item.Status == ItemProcessed {
		metrics.AccrualAmount.WithLabelValues("roi").Add(item.ROI.InexactFloat64())
		metrics.AccrualAmount.WithLabelValues("booster").Add(item.Booster.InexactFloat64())
		metrics.AccrualAmount.WithLabelValues("commission").Add(item.Commission.InexactFloat64())
	}
}

// RunDailyAccrual applies today's ROI to every due investment. Items fail in
// isolation; an error is returned only when the run cannot start. Once
// started the run finishes the due set it selected even if ctx is cancelled.
func (e *Engine) RunDailyAccrual(ctx context.Context, trigger string) (*Summary, error) {
	started := e.now()
	day := e.Today()

	boosters, err := e.boosters.ListBoosterLevels(ctx)
	if err != nil {
		zap.L().Error("failed to load booster levels", zap.Error(err))
		return nil, domain.Transient("accrual.RunDailyAccrual", err)
	}
	due, err := e.investments.Due(ctx, day, e.batchLimit)
	if err != nil {
		zap.L().Error("failed to fetch due investments", zap.Error(err))
		return nil, err
	}
	if len(due) == e.batchLimit {
		zap.L().Warn("due set truncated, the rest is left for the next run", zap.Int("limit", e.batchLimit))
	}

	summary := newSummary(trigger, day, started)
	summary.Due = len(due)
	runCtx := context.WithoutCancel(ctx)
	plans := e.newPlans()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	collect := func(item ItemResult) {
		record(item)
		mu.Lock()
		summary.add(item)
		mu.Unlock()
	}
	for _, inv := range due {
		inv := inv
		wg.Add(1)
		err := e.workerPool.AddTask(runCtx, func() error {
			defer wg.Done()
			item := e.accrue(runCtx, inv, day, boosters, plans)
			collect(item)
			if item.Status == ItemFailed {
				return errors.New(item.Error)
			}
			return nil
		})
		if err != nil {
			wg.Done()
			collect(ItemResult{InvestmentID: inv.ID, MemberID: inv.MemberID, Status: ItemFailed, Error: err.Error()})
		}
	}
	wg.Wait()

	summary.Duration = e.now().Sub(started)
	metrics.AccrualRuns.WithLabelValues(trigger).Inc()
	metrics.AccrualDuration.Observe(summary.Duration.Seconds())

	zap.L().Info("daily accrual finished",
		zap.String("runID", summary.RunID),
		zap.String("date", summary.Date),
		zap.Int("due", summary.Due),
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.String("totalROI", summary.TotalROI.String()),
		zap.Duration("duration", summary.Duration),
	)
	if err := e.sink.Publish(runCtx, summary.RunID, summary); err != nil {
		zap.L().Error("failed to publish accrual summary", zap.String("runID", summary.RunID), zap.Error(err))
	}
	return summary, nil
}

// ProcessMember runs today's accrual for one member's due investments.
func (e *Engine) ProcessMember(ctx context.Context, memberID int64) (*MemberResult, error) {
	day := e.Today()
	result := &MemberResult{MemberID: memberID, Date: day.Format(time.DateOnly), TotalROI: decimal.Zero}

	due, err := e.investments.DueForMember(ctx, memberID, day)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		result.Status = MemberNothingDue
		return result, nil
	}
	boosters, err := e.boosters.ListBoosterLevels(ctx)
	if err != nil {
		return nil, domain.Transient("accrual.ProcessMember", err)
	}

	plans := e.newPlans()
	var processed, failed int
	for _, inv := range due {
		item := e.accrue(ctx, inv, day, boosters, plans)
		record(item)
		result.Items = append(result.Items, item)
		switch item.Status {
		case ItemProcessed:
			processed++
			result.TotalROI = result.TotalROI.Add(item.ROI)
		case ItemFailed:
			failed++
		}
	}

	switch {
	case failed == 0 && processed == 0:
		result.Status = MemberNothingDue
	case failed == 0:
		result.Status = MemberProcessed
	case processed == 0:
		result.Status = MemberFailed
	default:
		result.Status = MemberPartial
	}
	zap.L().Info("member accrual finished", zap.Int64("memberID", memberID), zap.String("status", result.Status),
		zap.String("totalROI", result.TotalROI.String()))
	return result, nil
}

// BatchApplyROI applies explicit ROI amounts. Every request succeeds or fails
// on its own; results are returned in request order.
func (e *Engine) BatchApplyROI(ctx context.Context, reqs []investmentservice.ROIRequest) []BatchResult {
	results := make([]BatchResult, len(reqs))
	runCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
	for i, req := range reqs {
		i, req := i, req
		results[i].InvestmentID = req.InvestmentID
		wg.Add(1)
		err := e.workerPool.AddTask(runCtx, func() error {
			defer wg.Done()
			res, err := e.investments.ApplyROI(runCtx, req)
			if err != nil {
				results[i].Error = err.Error()
				return err
			}
			results[i].Result = res
			return nil
		})
		if err != nil {
			wg.Done()
			results[i].Error = err.Error()
		}
	}
	wg.Wait()
	return results
}

// CompleteExpired closes investments whose term ended before today.
func (e *Engine) CompleteExpired(ctx context.Context) (int64, error) {
	return e.investments.CompleteExpired(ctx, e.Today())
}
