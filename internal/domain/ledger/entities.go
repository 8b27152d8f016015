package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"freelance-engagement-backend/internal/domain/errs"
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Entry is an immutable financial fact. There is no update or delete path:
// the repository only inserts and reads.
type Entry struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	EntryID     string          `gorm:"size:32;uniqueIndex:ux_ledger_entry_id" json:"entry_id"`
	ProjectID   *string         `gorm:"size:32;index:idx_ledger_project" json:"project_id,omitempty"`
	Kind        Kind            `gorm:"size:16" json:"kind"`
	Description string          `gorm:"type:text" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `gorm:"size:80" json:"category"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "ledger_entries" }

func (e *Entry) Validate() []errs.Violation {
	var out []errs.Violation
	if e.Kind != KindIncome && e.Kind != KindExpense {
		out = append(out, errs.Violation{Field: "kind", Rule: "must be income or expense"})
	}
	if strings.TrimSpace(e.Description) == "" {
		out = append(out, errs.Violation{Field: "description", Rule: "is required"})
	}
	if !e.Amount.IsPositive() {
		out = append(out, errs.Violation{Field: "amount", Rule: "must be greater than 0"})
	}
	if e.Date.IsZero() {
		out = append(out, errs.Violation{Field: "date", Rule: "is required"})
	}
	return out
}
