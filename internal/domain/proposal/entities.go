package proposal

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"freelance-engagement-backend/internal/domain/errs"
	"freelance-engagement-backend/internal/domain/transition"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Rules: pending is the only mutable state; accepted/rejected are terminal.
// Accepting implies creating the derived project in the same atomic unit.
var Rules = transition.New("proposal", map[string][]string{
	string(StatusPending): {string(StatusAccepted), string(StatusRejected)},
}).WithEffects(string(StatusPending), string(StatusAccepted), transition.EffectCreateProjectFromProposal)

func ValidTransitionsFrom(s Status) []string { return Rules.From(string(s)) }

type Proposal struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	ProposalID  string          `gorm:"size:32;uniqueIndex:ux_proposals_proposal_id" json:"proposal_id"`
	Number      string          `gorm:"size:24;uniqueIndex:ux_proposals_number" json:"number"`
	ClientID    string          `gorm:"size:32;index:idx_proposals_client" json:"client_id"`
	Title       string          `gorm:"size:160" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	Terms       string          `gorm:"type:text" json:"terms"`
	Deadline    time.Time       `json:"deadline"`
	Status      Status          `gorm:"size:16;default:'pending'" json:"status"`
	// ProjectID back-links the project created when the proposal was accepted.
	ProjectID *string   `gorm:"size:32" json:"project_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Proposal) TableName() string { return "proposals" }

// Validate is pure and side-effect free; now is injected so the
// strictly-future deadline rule stays testable.
func (p *Proposal) Validate(now time.Time) []errs.Violation {
	var out []errs.Violation
	if p.ClientID == "" {
		out = append(out, errs.Violation{Field: "client_id", Rule: "is required"})
	}
	if strings.TrimSpace(p.Title) == "" {
		out = append(out, errs.Violation{Field: "title", Rule: "is required"})
	}
	if strings.TrimSpace(p.Description) == "" {
		out = append(out, errs.Violation{Field: "description", Rule: "is required"})
	}
	if !p.Price.IsPositive() {
		out = append(out, errs.Violation{Field: "price", Rule: "must be greater than 0"})
	}
	if strings.TrimSpace(p.Terms) == "" {
		out = append(out, errs.Violation{Field: "terms", Rule: "is required"})
	}
	if p.Deadline.IsZero() {
		out = append(out, errs.Violation{Field: "deadline", Rule: "is required"})
	} else if !p.Deadline.After(now) {
		out = append(out, errs.Violation{Field: "deadline", Rule: "must be in the future"})
	}
	switch p.Status {
	case StatusPending, StatusAccepted, StatusRejected:
	default:
		out = append(out, errs.Violation{Field: "status", Rule: "must be one of pending, accepted, rejected"})
	}
	return out
}

// Terminal reports whether the proposal can never change state again.
func (p *Proposal) Terminal() bool {
	return len(ValidTransitionsFrom(p.Status)) == 0
}
