package accrual

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/teamvest/internal/lock"
	"go.uber.org/zap"
)

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=accrual

type Runner interface {
	Today() time.Time
	CompleteExpired(ctx context.Context) (int64, error)
	RunDailyAccrual(ctx context.Context, trigger string) (*Summary, error)
}

type Locker interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (*lock.Lease, error)
}

// Scheduler triggers the daily accrual on a ticker. With a Locker only one
// replica runs at a time; the others skip the tick.
type Scheduler struct {
	runner   Runner
	locker   Locker
	interval time.Duration
}

func NewScheduler(runner Runner, locker Locker, interval time.Duration) *Scheduler {
	return &Scheduler{runner: runner, locker: locker, interval: interval}
}

func LockKey(day time.Time) string {
	return "accrual:run:" + day.Format(time.DateOnly)
}

// Run ticks until ctx is canceled. A run in progress is finished before Run
// returns.
func (s *Scheduler) Run(ctx context.Context) {
	zap.L().Info("accrual scheduler started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping accrual scheduler")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs the expiry sweep and the accrual once. It reports whether the
// accrual ran.
func (s *Scheduler) Tick(ctx context.Context) bool {
	if s.locker != nil {
		key := LockKey(s.runner.Today())
		lease, err := s.locker.TryAcquire(ctx, key, s.interval)
		if errors.Is(err, lock.ErrNotAcquired) {
			zap.L().Debug("accrual is running elsewhere", zap.String("key", key))
			return false
		}
		if err != nil {
			zap.L().Error("failed to acquire accrual lock", zap.String("key", key), zap.Error(err))
			return false
		}
		defer func() {
			if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
				zap.L().Warn("failed to release accrual lock", zap.String("key", key), zap.Error(err))
			}
		}()
	}

	if _, err := s.runner.CompleteExpired(ctx); err != nil {
		zap.L().Error("expiry sweep failed", zap.Error(err))
	}
	if _, err := s.runner.RunDailyAccrual(ctx, TriggerSchedule); err != nil {
		zap.L().Error("daily accrual could not start", zap.Error(err))
		return false
	}
	return true
}
