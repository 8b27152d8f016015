package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordInput struct {
	ProjectID   *string         `json:"project_id,omitempty"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
}

type EntryDTO struct {
	EntryID     string          `json:"entry_id"`
	ProjectID   *string         `json:"project_id,omitempty"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BalanceScope selects which entries a balance folds over: one project, one
// client (via its projects), or everything, optionally bounded by date.
type BalanceScope struct {
	ProjectID string     `json:"project_id,omitempty"`
	ClientID  string     `json:"client_id,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
}
