package project

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"freelance-engagement-backend/internal/domain/errs"
	"freelance-engagement-backend/internal/domain/transition"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

// Rules: active<->paused, active/paused->finished, any->cancelled. Status
// changes trigger a progress recompute so the stored value never goes
// observably stale. finished->cancelled carries no recompute: a finished
// project is already pinned at 100 and cancelling keeps that value frozen.
var Rules = transition.New("project", map[string][]string{
	string(StatusActive):   {string(StatusPaused), string(StatusFinished), string(StatusCancelled)},
	string(StatusPaused):   {string(StatusActive), string(StatusFinished), string(StatusCancelled)},
	string(StatusFinished): {string(StatusCancelled)},
}).
	WithEffects(string(StatusActive), string(StatusPaused), transition.EffectRecomputeProjectProgress).
	WithEffects(string(StatusPaused), string(StatusActive), transition.EffectRecomputeProjectProgress).
	WithEffects(string(StatusActive), string(StatusCancelled), transition.EffectRecomputeProjectProgress).
	WithEffects(string(StatusPaused), string(StatusCancelled), transition.EffectRecomputeProjectProgress)

func ValidTransitionsFrom(s Status) []string { return Rules.From(string(s)) }

type Project struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	ProjectID string `gorm:"size:32;uniqueIndex:ux_projects_project_id" json:"project_id"`
	Code      string `gorm:"size:24;uniqueIndex:ux_projects_code" json:"code"`
	ClientID  string `gorm:"size:32;index:idx_projects_client" json:"client_id"`
	// ProposalID is set when the project was derived from an accepted proposal.
	ProposalID  *string         `gorm:"size:32" json:"proposal_id,omitempty"`
	Name        string          `gorm:"size:160" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Value       decimal.Decimal `gorm:"type:decimal(18,2)" json:"value"`
	Status      Status          `gorm:"size:16;default:'active'" json:"status"`
	// Progress is a transactional cache of the derived metric (0-100); the
	// source of truth stays the deliverables plus the date span.
	Progress  int       `json:"progress"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// Advance is one dated progress note on a project, ordered by creation.
type Advance struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	ProjectID string    `gorm:"size:32;index:idx_advances_project" json:"project_id"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Advance) TableName() string { return "project_advances" }

func (p *Project) Validate() []errs.Violation {
	var out []errs.Violation
	if p.ClientID == "" {
		out = append(out, errs.Violation{Field: "client_id", Rule: "is required"})
	}
	if strings.TrimSpace(p.Name) == "" {
		out = append(out, errs.Violation{Field: "name", Rule: "is required"})
	}
	if p.StartDate.IsZero() {
		out = append(out, errs.Violation{Field: "start_date", Rule: "is required"})
	}
	if p.EndDate != nil && !p.EndDate.After(p.StartDate) {
		out = append(out, errs.Violation{Field: "end_date", Rule: "must be after start_date"})
	}
	if p.Value.IsNegative() {
		out = append(out, errs.Violation{Field: "value", Rule: "must not be negative"})
	}
	switch p.Status {
	case StatusActive, StatusPaused, StatusFinished, StatusCancelled:
	default:
		out = append(out, errs.Violation{Field: "status", Rule: "must be one of active, paused, finished, cancelled"})
	}
	if p.Progress < 0 || p.Progress > 100 {
		out = append(out, errs.Violation{Field: "progress", Rule: "must be between 0 and 100"})
	}
	return out
}

// WithinSpan reports whether [from, to] fits the project's date range. An
// open-ended project (no end date) only constrains the lower bound.
func (p *Project) WithinSpan(from, to time.Time) bool {
	if from.Before(p.StartDate) {
		return false
	}
	if p.EndDate != nil && to.After(*p.EndDate) {
		return false
	}
	return true
}

// ContainsDate reports whether a single date lies inside the project span.
func (p *Project) ContainsDate(d time.Time) bool {
	return p.WithinSpan(d, d)
}
