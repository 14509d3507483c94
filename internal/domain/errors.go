package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrStateConflict      = errors.New("state conflict")
	ErrTransientStorage   = errors.New("transient storage error")
	ErrInvariantViolation = errors.New("invariant violation")
)

// Error carries the kind, the failing operation and an optional cause.
type Error struct {
	Kind error
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = e.Msg
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewValidationError(op, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(op, format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func NewStateConflictError(op, format string, args ...any) error {
	return &Error{Kind: ErrStateConflict, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Transient classifies an unclassified storage failure. Errors that already
// carry a kind are returned unchanged.
func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	if classified(err) {
		return err
	}
	return &Error{Kind: ErrTransientStorage, Op: op, Err: err}
}

func classified(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrStateConflict) ||
		errors.Is(err, ErrTransientStorage) ||
		errors.Is(err, ErrInvariantViolation)
}

// WalletMismatchError is raised when a wallet does not equal the replay of its
// completed ledger entries.
type WalletMismatchError struct {
	MemberID int64
	Stored   Wallet
	Replayed Wallet
}

func (e *WalletMismatchError) Error() string {
	return fmt.Sprintf("wallet of member %d does not match ledger: stored main=%s roi=%s commission=%s bonus=%s earned=%s withdrawn=%s, replayed main=%s roi=%s commission=%s bonus=%s earned=%s withdrawn=%s",
		e.MemberID,
		e.Stored.MainBalance, e.Stored.ROIBalance, e.Stored.CommissionBalance, e.Stored.BonusBalance, e.Stored.TotalEarned, e.Stored.TotalWithdrawn,
		e.Replayed.MainBalance, e.Replayed.ROIBalance, e.Replayed.CommissionBalance, e.Replayed.BonusBalance, e.Replayed.TotalEarned, e.Replayed.TotalWithdrawn,
	)
}

func (e *WalletMismatchError) Unwrap() error {
	return ErrInvariantViolation
}
