package proposal

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	ClientID    string          `json:"client_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Terms       string          `json:"terms"`
	Deadline    time.Time       `json:"deadline"`
}

type ProposalDTO struct {
	ProposalID  string          `json:"proposal_id"`
	Number      string          `json:"number"`
	ClientID    string          `json:"client_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Terms       string          `json:"terms"`
	Deadline    time.Time       `json:"deadline"`
	Status      string          `json:"status"`
	ProjectID   *string         `json:"project_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProjectSummary is the slice of the derived project the accept flow reports
// back; the full project read path lives in the project usecase.
type ProjectSummary struct {
	ProjectID string          `json:"project_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	StartDate time.Time       `json:"start_date"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
	Status    string          `json:"status"`
}

type AcceptResult struct {
	Proposal *ProposalDTO    `json:"proposal"`
	Project  *ProjectSummary `json:"project"`
}
