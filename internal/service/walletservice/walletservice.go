package walletservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/teamvest/internal/domain"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type WalletRepo interface {
	Create(ctx context.Context, memberID int64) (*domain.Wallet, error)
	FindByMember(ctx context.Context, memberID int64) (*domain.Wallet, error)
	FindByMemberForUpdate(ctx context.Context, memberID int64) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) error
}

type LedgerRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Transaction, error)
	FindByMember(ctx context.Context, memberID int64, limit, offset int) ([]domain.Transaction, error)
	FindCompletedByMember(ctx context.Context, memberID int64) ([]domain.Transaction, error)
	FindPending(ctx context.Context, typ domain.TransactionType, limit int) ([]domain.Transaction, error)
	PendingSum(ctx context.Context, memberID int64, source string) (decimal.Decimal, error)
	SetStatus(ctx context.Context, t *domain.Transaction) (bool, error)
}

// Scale is the number of decimal places every posted amount is rounded to.
const Scale = 8

const SystemProcessor = "system"

type Service struct {
	wallets    WalletRepo
	ledger     LedgerRepo
	txManager  pg.TXManager
	feePercent decimal.Decimal
	now        func() time.Time
}

func New(wallets WalletRepo, ledger LedgerRepo, txManager pg.TXManager, withdrawalFeePercent decimal.Decimal) *Service {
	return &Service{
		wallets:    wallets,
		ledger:     ledger,
		txManager:  txManager,
		feePercent: withdrawalFeePercent,
		now:        time.Now,
	}
}

func (s *Service) CreateWallet(ctx context.Context, memberID int64) (*domain.Wallet, error) {
	wallet, err := s.wallets.Create(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, domain.Transient("wallet.CreateWallet", err)
	}
	return wallet, nil
}

func (s *Service) GetWallet(ctx context.Context, memberID int64) (*domain.Wallet, error) {
	wallet, err := s.wallets.FindByMember(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, domain.Transient("wallet.GetWallet", err)
	}
	if wallet == nil {
		return nil, domain.NewNotFoundError("wallet.GetWallet", "wallet of member %d not found", memberID)
	}
	return wallet, nil
}

// Post writes a completed ledger entry and applies it to the row-locked
// wallet in the caller's transaction. It is the only path that moves a
// balance. Debits that would dip into funds reserved by pending withdrawals
// are rejected.
func (s *Service) Post(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error) {
	const op = "wallet.Post"
	if !entry.Amount.IsPositive() {
		return nil, domain.NewValidationError(op, "amount must be positive, got %s", entry.Amount)
	}
	if entry.Status != domain.TxCompleted {
		return nil, domain.NewValidationError(op, "only completed entries can be posted, got %s", entry.Status)
	}

	var posted *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.lockWallet(ctx, op, entry.MemberID)
		if err != nil {
			return err
		}
		if entry.Type == domain.TxInvest || entry.Type == domain.TxFee {
			source := entry.Source
			if entry.Type == domain.TxInvest {
				source = domain.SourceMain
			}
			if err := s.ensureAvailable(ctx, op, wallet, source, entry.Amount); err != nil {
				return err
			}
		}
		if err := wallet.Apply(entry); err != nil {
			return err
		}

		if entry.Reference == "" {
			entry.Reference = uuid.NewString()
		}
		if entry.ProcessedBy == nil {
			by := SystemProcessor
			entry.ProcessedBy = &by
		}
		now := s.now()
		entry.ProcessedAt = &now

		if posted, err = s.ledger.Create(ctx, entry); err != nil {
			return domain.Transient(op, err)
		}
		return domain.Transient(op, s.wallets.Update(ctx, wallet))
	})
	if err != nil {
		zap.L().Error("failed to post ledger entry", zap.Int64("memberID", entry.MemberID),
			zap.String("type", string(entry.Type)), zap.String("amount", entry.Amount.String()), zap.Error(err))
		return nil, err
	}
	return posted, nil
}

func (s *Service) lockWallet(ctx context.Context, op string, memberID int64) (*domain.Wallet, error) {
	wallet, err := s.wallets.FindByMemberForUpdate(ctx, memberID)
	if err != nil {
		return nil, domain.Transient(op, err)
	}
	if wallet == nil {
		return nil, domain.NewNotFoundError(op, "wallet of member %d not found", memberID)
	}
	return wallet, nil
}

func (s *Service) ensureAvailable(ctx context.Context, op string, wallet *domain.Wallet, source string, amount decimal.Decimal) error {
	balance, err := wallet.Balance(source)
	if err != nil {
		return err
	}
	reserved, err := s.ledger.PendingSum(ctx, wallet.MemberID, source)
	if err != nil {
		return domain.Transient(op, err)
	}
	if available := balance.Sub(reserved); amount.GreaterThan(available) {
		return domain.NewValidationError(op, "insufficient %s balance: available %s, requested %s", source, available, amount)
	}
	return nil
}

// Deposit credits the main balance after an external transfer was confirmed.
func (s *Service) Deposit(ctx context.Context, memberID int64, amount decimal.Decimal, processedBy, description string) (*domain.Transaction, error) {
	entry := domain.NewTransaction(memberID, domain.TxDeposit, amount.Round(Scale), decimal.Zero, domain.SourceMain)
	entry.Description = description
	if processedBy != "" {
		entry.ProcessedBy = &processedBy
	}
	return s.Post(ctx, entry)
}

// RequestWithdrawal reserves amount from source as a pending entry. The
// balance moves only when the withdrawal completes.
func (s *Service) RequestWithdrawal(ctx context.Context, memberID int64, source string, amount decimal.Decimal) (*domain.Transaction, error) {
	const op = "wallet.RequestWithdrawal"
	amount = amount.Round(Scale)
	if !amount.IsPositive() {
		return nil, domain.NewValidationError(op, "amount must be positive, got %s", amount)
	}
	fee := amount.Mul(s.feePercent).Div(decimal.NewFromInt(100)).Round(Scale)
	entry := domain.NewTransaction(memberID, domain.TxWithdrawal, amount, fee, source)
	entry.Status = domain.TxPending
	entry.Reference = uuid.NewString()
	entry.Description = "withdrawal from " + source + " balance"

	var created *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.lockWallet(ctx, op, memberID)
		if err != nil {
			return err
		}
		if err := s.ensureAvailable(ctx, op, wallet, source, amount); err != nil {
			return err
		}
		created, err = s.ledger.Create(ctx, entry)
		return domain.Transient(op, err)
	})
	if err != nil {
		zap.L().Warn("withdrawal rejected", zap.Int64("memberID", memberID), zap.String("source", source), zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal requested", zap.Int64("memberID", memberID), zap.Int64("transactionID", created.ID),
		zap.String("amount", amount.String()), zap.String("fee", fee.String()))
	return created, nil
}

// CompleteWithdrawal settles a pending withdrawal and debits the wallet.
func (s *Service) CompleteWithdrawal(ctx context.Context, id int64, processedBy string) (*domain.Transaction, error) {
	return s.finishWithdrawal(ctx, "wallet.CompleteWithdrawal", id, domain.TxCompleted, processedBy, nil)
}

// FailWithdrawal releases the reservation; no balance changes.
func (s *Service) FailWithdrawal(ctx context.Context, id int64, processedBy, reason string) (*domain.Transaction, error) {
	return s.finishWithdrawal(ctx, "wallet.FailWithdrawal", id, domain.TxFailed, processedBy, &reason)
}

func (s *Service) finishWithdrawal(ctx context.Context, op string, id int64, status domain.TransactionStatus, processedBy string, reason *string) (*domain.Transaction, error) {
	var entry *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.ledger.FindByIDForUpdate(ctx, id)
		if err != nil {
			return domain.Transient(op, err)
		}
		if entry == nil || entry.Type != domain.TxWithdrawal {
			return domain.NewNotFoundError(op, "withdrawal %d not found", id)
		}
		if entry.Status != domain.TxPending {
			return domain.NewStateConflictError(op, "withdrawal %d is already %s", id, entry.Status)
		}

		now := s.now()
		entry.Status = status
		entry.ProcessedBy = &processedBy
		entry.ProcessedAt = &now
		entry.FailureReason = reason

		var wallet *domain.Wallet
		if status == domain.TxCompleted {
			if wallet, err = s.lockWallet(ctx, op, entry.MemberID); err != nil {
				return err
			}
			if err := wallet.Apply(entry); err != nil {
				return err
			}
		}
		ok, err := s.ledger.SetStatus(ctx, entry)
		if err != nil {
			return domain.Transient(op, err)
		}
		if !ok {
			return domain.NewStateConflictError(op, "withdrawal %d is no longer pending", id)
		}
		if wallet != nil {
			return domain.Transient(op, s.wallets.Update(ctx, wallet))
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to settle withdrawal", zap.Int64("transactionID", id), zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *Service) PendingWithdrawals(ctx context.Context, limit int) ([]domain.Transaction, error) {
	entries, err := s.ledger.FindPending(ctx, domain.TxWithdrawal, limit)
	if err != nil {
		zap.L().Error("failed to fetch pending withdrawals", zap.Error(err))
		return nil, domain.Transient("wallet.PendingWithdrawals", err)
	}
	return entries, nil
}

func (s *Service) ListTransactions(ctx context.Context, memberID int64, limit, offset int) ([]domain.Transaction, error) {
	entries, err := s.ledger.FindByMember(ctx, memberID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Int64("memberID", memberID), zap.Error(err))
		return nil, domain.Transient("wallet.ListTransactions", err)
	}
	return entries, nil
}

// Reconcile replays the member's completed entries from zero and compares the
// result with the stored wallet. A difference is an invariant violation. The
// wallet row stays locked while the entries are read, so no post can land
// between the two reads.
func (s *Service) Reconcile(ctx context.Context, memberID int64) (*domain.Wallet, error) {
	const op = "wallet.Reconcile"
	var (
		stored  *domain.Wallet
		entries []domain.Transaction
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if stored, err = s.wallets.FindByMemberForUpdate(ctx, memberID); err != nil {
			return domain.Transient(op, err)
		}
		if stored == nil {
			return domain.NewNotFoundError(op, "wallet of member %d not found", memberID)
		}
		entries, err = s.ledger.FindCompletedByMember(ctx, memberID)
		return domain.Transient(op, err)
	})
	if err != nil {
		return nil, err
	}
	replayed, err := domain.Replay(memberID, entries)
	if err != nil {
		return nil, err
	}
	if !stored.SameBalances(replayed) {
		mismatch := &domain.WalletMismatchError{MemberID: memberID, Stored: *stored, Replayed: replayed}
		zap.L().Error("wallet does not match ledger", zap.Int64("memberID", memberID), zap.Error(mismatch))
		return nil, mismatch
	}
	return stored, nil
}
