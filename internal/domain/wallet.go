package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Apply projects one completed ledger entry onto the wallet. It is the only
// place balance arithmetic lives: live posting and replay both go through it.
func (w *Wallet) Apply(tx *Transaction) error {
	if tx.Status != TxCompleted {
		return fmt.Errorf("transaction %d is %s, only completed entries move balances", tx.ID, tx.Status)
	}
	if !tx.NetAmount.Equal(tx.Amount.Sub(tx.FeeAmount)) {
		return &Error{Kind: ErrInvariantViolation, Op: "wallet.apply", Msg: fmt.Sprintf("net amount %s != %s - %s", tx.NetAmount, tx.Amount, tx.FeeAmount)}
	}

	switch tx.Type {
	case TxDeposit:
		w.MainBalance = w.MainBalance.Add(tx.NetAmount)
	case TxInvest:
		w.MainBalance = w.MainBalance.Sub(tx.Amount)
	case TxROIEarning:
		w.ROIBalance = w.ROIBalance.Add(tx.NetAmount)
		w.TotalEarned = w.TotalEarned.Add(tx.NetAmount)
	case TxLevelCommission:
		w.CommissionBalance = w.CommissionBalance.Add(tx.NetAmount)
		w.TotalEarned = w.TotalEarned.Add(tx.NetAmount)
	case TxDirectBonus:
		w.BonusBalance = w.BonusBalance.Add(tx.NetAmount)
		w.TotalEarned = w.TotalEarned.Add(tx.NetAmount)
	case TxWithdrawal:
		field, err := w.field(tx.Source)
		if err != nil {
			return err
		}
		*field = field.Sub(tx.Amount)
		w.TotalWithdrawn = w.TotalWithdrawn.Add(tx.NetAmount)
	case TxFee:
		field, err := w.field(tx.Source)
		if err != nil {
			return err
		}
		*field = field.Sub(tx.Amount)
	default:
		return fmt.Errorf("unknown transaction type %q", tx.Type)
	}
	return nil
}

// Balance returns the balance named by a withdrawal/fee source.
func (w *Wallet) Balance(source string) (decimal.Decimal, error) {
	field, err := w.field(source)
	if err != nil {
		return decimal.Zero, err
	}
	return *field, nil
}

func (w *Wallet) field(source string) (*decimal.Decimal, error) {
	switch source {
	case SourceMain:
		return &w.MainBalance, nil
	case SourceROI:
		return &w.ROIBalance, nil
	case SourceCommission:
		return &w.CommissionBalance, nil
	case SourceBonus:
		return &w.BonusBalance, nil
	}
	return nil, NewValidationError("wallet", "unknown balance source %q", source)
}

// Replay rebuilds a wallet from zero using completed entries in order.
func Replay(memberID int64, entries []Transaction) (Wallet, error) {
	w := Wallet{MemberID: memberID}
	for i := range entries {
		if entries[i].Status != TxCompleted {
			continue
		}
		if err := w.Apply(&entries[i]); err != nil {
			return Wallet{}, err
		}
	}
	return w, nil
}

// SameBalances compares every balance field numerically.
func (w Wallet) SameBalances(other Wallet) bool {
	return w.MainBalance.Equal(other.MainBalance) &&
		w.ROIBalance.Equal(other.ROIBalance) &&
		w.CommissionBalance.Equal(other.CommissionBalance) &&
		w.BonusBalance.Equal(other.BonusBalance) &&
		w.TotalEarned.Equal(other.TotalEarned) &&
		w.TotalWithdrawn.Equal(other.TotalWithdrawn)
}
