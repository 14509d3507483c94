package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OpenInvestmentRequestDTO struct {
	PlanID int64           `json:"plan_id" example:"1"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"1000"`
}

type TopUpRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"250"`
}

type InvestmentResponseDTO struct {
	ID             int64           `json:"id" example:"7"`
	PlanID         int64           `json:"plan_id" example:"1"`
	InvestedAmount decimal.Decimal `json:"invested_amount" swaggertype:"string" example:"1000"`
	CurrentValue   decimal.Decimal `json:"current_value" swaggertype:"string" example:"1010"`
	TotalEarned    decimal.Decimal `json:"total_earned" swaggertype:"string" example:"10"`
	Status         string          `json:"status" example:"active"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	LastROIDate    *time.Time      `json:"last_roi_date,omitempty"`
	// EntryID is the ledger entry posted by an open or top-up.
	EntryID int64 `json:"entry_id,omitempty" example:"42"`
}

type ApplyROIRequestDTO struct {
	Amount          decimal.Decimal  `json:"amount" swaggertype:"string" example:"12.5"`
	NewCurrentValue *decimal.Decimal `json:"new_current_value,omitempty" swaggertype:"string"`
	Description     string           `json:"description,omitempty" example:"manual correction"`
}

type BatchROIItemDTO struct {
	InvestmentID int64           `json:"investment_id" example:"7"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"12.5"`
	Description  string          `json:"description,omitempty"`
}

type BatchROIRequestDTO struct {
	Items []BatchROIItemDTO `json:"items"`
}
