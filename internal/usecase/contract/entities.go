package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type GenerateInput struct {
	ProjectID    string          `json:"project_id"`
	Conditions   string          `json:"conditions"`
	PaymentTerms string          `json:"payment_terms"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

type ContractDTO struct {
	ContractID   string          `json:"contract_id"`
	Number       string          `json:"number"`
	ProjectID    string          `json:"project_id"`
	Conditions   string          `json:"conditions"`
	PaymentTerms string          `json:"payment_terms"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Status       string          `json:"status"`
	SignedAt     *time.Time      `json:"signed_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
