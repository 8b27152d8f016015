package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	ClientID    string          `json:"client_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Value       decimal.Decimal `json:"value"`
}

type UpdateDatesInput struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type AdvanceDTO struct {
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectDTO struct {
	ProjectID   string          `json:"project_id"`
	Code        string          `json:"code"`
	ClientID    string          `json:"client_id"`
	ProposalID  *string         `json:"proposal_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Status      string          `json:"status"`
	// Progress is derived on read from deliverables and the date span.
	Progress  int          `json:"progress"`
	Advances  []AdvanceDTO `json:"advances,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
