package payout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/metrics"
	"github.com/GlebRadaev/teamvest/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=payout.go -destination=mock_payout.go -package=payout

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	processedBy   = "payout-worker"
)

// Transfer service statuses.
const (
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusProcessing = "PROCESSING"
)

// Outcomes recorded per withdrawal.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeDeferred  = "deferred"
	OutcomeError     = "error"
)

var processingWithdrawals sync.Map

var errRetryable = errors.New("transfer service unavailable")

type Wallet interface {
	PendingWithdrawals(ctx context.Context, limit int) ([]domain.Transaction, error)
	CompleteWithdrawal(ctx context.Context, id int64, processedBy string) (*domain.Transaction, error)
	FailWithdrawal(ctx context.Context, id int64, processedBy, reason string) (*domain.Transaction, error)
}

type Request struct {
	Reference string          `json:"reference"`
	MemberID  int64           `json:"member_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Source    string          `json:"source"`
}

type Response struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

type Service struct {
	url            string
	wallet         Wallet
	client         clients.HTTPClientI
	limit          int
	workers        int
	updateInterval time.Duration
	retryInterval  time.Duration

	// submitted holds withdrawals the transfer service accepted but has not
	// settled. They are polled instead of posted again.
	submitted sync.Map
}

func New(url string, wallet Wallet, client clients.HTTPClientI, interval time.Duration, workers int) *Service {
	if interval <= 0 {
		interval = time.Second * 10
	}
	return &Service{
		url:            url,
		wallet:         wallet,
		client:         client,
		limit:          500,
		workers:        max(workers, 1),
		updateInterval: interval,
		retryInterval:  retryInterval,
	}
}

// Run polls until ctx is canceled. The batch in progress is finished before
// Run returns.
func (s *Service) Run(ctx context.Context) {
	zap.L().Info("Payout worker started", zap.String("transferService", s.url))
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout worker")
			return
		case <-ticker.C:
			s.ProcessPending(ctx)
		}
	}
}

// ProcessPending settles one batch of pending withdrawals and returns the
// number of withdrawals per outcome.
func (s *Service) ProcessPending(ctx context.Context) map[string]int {
	entries, err := s.wallet.PendingWithdrawals(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending withdrawals", zap.Error(err))
		return nil
	}

	var (
		mu       sync.Mutex
		outcomes = map[string]int{}
		g        errgroup.Group
	)
	g.SetLimit(s.workers)
	for _, entry := range entries {
		entry := entry
		if _, loaded := processingWithdrawals.LoadOrStore(entry.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			defer processingWithdrawals.Delete(entry.ID)
			outcome, err := s.handleWithdrawal(ctx, entry)
			if err != nil {
				zap.L().Error("Failed to settle withdrawal", zap.Int64("transactionID", entry.ID), zap.Error(err))
			}
			metrics.PayoutsTotal.WithLabelValues(outcome).Inc()
			mu.Lock()
			outcomes[outcome]++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (s *Service) handleWithdrawal(ctx context.Context, entry domain.Transaction) (string, error) {
	_, polling := s.submitted.Load(entry.ID)
	call, err := s.transferCall(entry, polling)
	if err != nil {
		return OutcomeError, err
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return OutcomeDeferred, err
		}

		statusCode, respBody, respHeaders, err := call()
		if err != nil {
			if attempt < maxRetries {
				s.wait(ctx, s.retryInterval*time.Duration(attempt))
				continue
			}
			return OutcomeDeferred, fmt.Errorf("transfer %s failed after %d retries: %w", entry.Reference, maxRetries, err)
		}

		switch {
		case statusCode == http.StatusTooManyRequests:
			s.wait(ctx, s.retryAfter(entry, respHeaders, attempt))
			continue
		case statusCode >= http.StatusInternalServerError:
			zap.L().Warn("Transfer service error, retrying", zap.Int("status", statusCode), zap.Int64("transactionID", entry.ID), zap.Int("attempt", attempt))
			if attempt < maxRetries {
				s.wait(ctx, s.retryInterval*time.Duration(attempt))
				continue
			}
			return OutcomeDeferred, fmt.Errorf("transfer %s: %w (status %d)", entry.Reference, errRetryable, statusCode)
		case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
			return s.settle(ctx, entry, respBody)
		case polling:
			// The transfer service lost track of it; submit again next batch.
			s.submitted.Delete(entry.ID)
			zap.L().Warn("Transfer status lookup rejected", zap.Int("status", statusCode), zap.Int64("transactionID", entry.ID))
			return OutcomeDeferred, nil
		default:
			reason := fmt.Sprintf("transfer rejected with status %d", statusCode)
			if _, err := s.wallet.FailWithdrawal(ctx, entry.ID, processedBy, reason); err != nil {
				return OutcomeError, err
			}
			return OutcomeFailed, nil
		}
	}
	return OutcomeDeferred, fmt.Errorf("transfer %s: %w", entry.Reference, errRetryable)
}

// transferCall returns the request for the entry: a status lookup when the
// transfer was already submitted, a new transfer otherwise.
func (s *Service) transferCall(entry domain.Transaction, polling bool) (func() (int, []byte, http.Header, error), error) {
	if polling {
		statusURL := s.url + "/api/transfers/" + url.PathEscape(entry.Reference)
		return func() (int, []byte, http.Header, error) {
			return s.client.Get(statusURL, nil)
		}, nil
	}

	body, err := json.Marshal(Request{
		Reference: entry.Reference,
		MemberID:  entry.MemberID,
		Amount:    entry.NetAmount,
		Currency:  entry.Currency,
		Source:    entry.Source,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode transfer request: %w", err)
	}
	return func() (int, []byte, http.Header, error) {
		return s.client.Post(s.url+"/api/transfers", nil, body)
	}, nil
}

func (s *Service) settle(ctx context.Context, entry domain.Transaction, respBody []byte) (string, error) {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return OutcomeError, fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.Reference != entry.Reference {
		return OutcomeError, fmt.Errorf("reference mismatch: expected %s, got %s", entry.Reference, response.Reference)
	}

	if response.Status != StatusProcessing {
		s.submitted.Delete(entry.ID)
	}
	switch response.Status {
	case StatusCompleted:
		if _, err := s.wallet.CompleteWithdrawal(ctx, entry.ID, processedBy); err != nil {
			return OutcomeError, err
		}
		zap.L().Info("Withdrawal completed", zap.Int64("transactionID", entry.ID), zap.Int64("memberID", entry.MemberID))
		return OutcomeCompleted, nil
	case StatusFailed:
		reason := response.Reason
		if reason == "" {
			reason = "transfer failed"
		}
		if _, err := s.wallet.FailWithdrawal(ctx, entry.ID, processedBy, reason); err != nil {
			return OutcomeError, err
		}
		return OutcomeFailed, nil
	case StatusProcessing:
		s.submitted.Store(entry.ID, struct{}{})
		zap.L().Info("Transfer still processing", zap.Int64("transactionID", entry.ID))
		return OutcomeDeferred, nil
	default:
		zap.L().Warn("Unrecognized transfer status", zap.Int64("transactionID", entry.ID), zap.String("status", response.Status))
		return OutcomeDeferred, nil
	}
}

func (s *Service) retryAfter(entry domain.Transaction, respHeaders http.Header, attempt int) time.Duration {
	retryAfter := s.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int64("transactionID", entry.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	return retryAfter
}

func (s *Service) wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
