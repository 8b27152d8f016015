package contract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"freelance-engagement-backend/internal/domain/errs"
	"freelance-engagement-backend/internal/domain/transition"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSigned    Status = "signed"
	StatusCancelled Status = "cancelled"
)

// Rules: only draft is mutable; signing stamps the signature date.
var Rules = transition.New("contract", map[string][]string{
	string(StatusDraft): {string(StatusSigned), string(StatusCancelled)},
}).WithEffects(string(StatusDraft), string(StatusSigned), transition.EffectStampSignatureDate)

func ValidTransitionsFrom(s Status) []string { return Rules.From(string(s)) }

type Contract struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	ContractID   string          `gorm:"size:32;uniqueIndex:ux_contracts_contract_id" json:"contract_id"`
	Number       string          `gorm:"size:24;uniqueIndex:ux_contracts_number" json:"number"`
	ProjectID    string          `gorm:"size:32;uniqueIndex:ux_contracts_project" json:"project_id"`
	Conditions   string          `gorm:"type:text" json:"conditions"`
	PaymentTerms string          `gorm:"type:text" json:"payment_terms"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	TotalValue   decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_value"`
	Status       Status          `gorm:"size:16;default:'draft'" json:"status"`
	SignedAt     *time.Time      `json:"signed_at,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Contract) TableName() string { return "contracts" }

func (c *Contract) Validate() []errs.Violation {
	var out []errs.Violation
	if c.ProjectID == "" {
		out = append(out, errs.Violation{Field: "project_id", Rule: "is required"})
	}
	if len(strings.TrimSpace(c.Conditions)) < 10 {
		out = append(out, errs.Violation{Field: "conditions", Rule: "must be at least 10 characters"})
	}
	if len(strings.TrimSpace(c.PaymentTerms)) < 5 {
		out = append(out, errs.Violation{Field: "payment_terms", Rule: "must be at least 5 characters"})
	}
	if c.StartDate.IsZero() {
		out = append(out, errs.Violation{Field: "start_date", Rule: "is required"})
	}
	if c.EndDate.IsZero() {
		out = append(out, errs.Violation{Field: "end_date", Rule: "is required"})
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && !c.StartDate.Before(c.EndDate) {
		out = append(out, errs.Violation{Field: "start_date", Rule: "must be before end_date"})
	}
	if !c.TotalValue.IsPositive() {
		out = append(out, errs.Violation{Field: "total_value", Rule: "must be greater than 0"})
	}
	switch c.Status {
	case StatusDraft, StatusSigned, StatusCancelled:
	default:
		out = append(out, errs.Violation{Field: "status", Rule: "must be one of draft, signed, cancelled"})
	}
	return out
}
