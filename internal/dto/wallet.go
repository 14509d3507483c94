package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	Main           decimal.Decimal `json:"main" swaggertype:"string" example:"500.5"`
	ROI            decimal.Decimal `json:"roi" swaggertype:"string" example:"12"`
	Commission     decimal.Decimal `json:"commission" swaggertype:"string" example:"3"`
	Bonus          decimal.Decimal `json:"bonus" swaggertype:"string" example:"50"`
	TotalEarned    decimal.Decimal `json:"total_earned" swaggertype:"string" example:"65"`
	TotalWithdrawn decimal.Decimal `json:"total_withdrawn" swaggertype:"string" example:"0"`
}

type WithdrawRequestDTO struct {
	Source string          `json:"source" example:"roi" enums:"main,roi,commission,bonus"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
}

type DepositRequestDTO struct {
	MemberID    int64           `json:"member_id" example:"1"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1000"`
	Description string          `json:"description,omitempty" example:"bank transfer 42"`
}

type TransactionResponseDTO struct {
	ID                  int64           `json:"id" example:"15"`
	Type                string          `json:"type" example:"roi_earning"`
	Amount              decimal.Decimal `json:"amount" swaggertype:"string" example:"10"`
	FeeAmount           decimal.Decimal `json:"fee_amount" swaggertype:"string" example:"0"`
	NetAmount           decimal.Decimal `json:"net_amount" swaggertype:"string" example:"10"`
	Currency            string          `json:"currency" example:"USDT"`
	Status              string          `json:"status" example:"completed"`
	Source              string          `json:"source,omitempty" example:"roi"`
	Reference           string          `json:"reference"`
	Description         string          `json:"description,omitempty"`
	RelatedMemberID     *int64          `json:"related_member_id,omitempty"`
	RelatedInvestmentID *int64          `json:"related_investment_id,omitempty"`
	FailureReason       *string         `json:"failure_reason,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}
