package deliverable

import (
	"strings"
	"time"

	"freelance-engagement-backend/internal/domain/errs"
	"freelance-engagement-backend/internal/domain/transition"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDelivered  Status = "delivered"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
)

// Rules: pending -> in_progress -> delivered -> approved, with rejected
// reachable from every state except approved. Approved is terminal: it has
// no outgoing edges, so any attempt out of it fails the legality check.
// Every status change recomputes the owning project's progress in the same
// transaction; entering delivered stamps the delivery date.
var Rules = transition.New("deliverable", map[string][]string{
	string(StatusPending):    {string(StatusInProgress), string(StatusRejected)},
	string(StatusInProgress): {string(StatusDelivered), string(StatusRejected)},
	string(StatusDelivered):  {string(StatusApproved), string(StatusRejected)},
	string(StatusRejected):   {},
}).
	WithEffects(string(StatusPending), string(StatusInProgress), transition.EffectRecomputeProjectProgress).
	WithEffects(string(StatusPending), string(StatusRejected), transition.EffectRecomputeProjectProgress).
	WithEffects(string(StatusInProgress), string(StatusDelivered), transition.EffectStampDeliveryDate, transition.EffectRecomputeProjectProgress).
	WithEffects(string(StatusInProgress), string(StatusRejected), transition.EffectRecomputeProjectProgress).
	WithEffects(string(StatusDelivered), string(StatusApproved), transition.EffectRecomputeProjectProgress).
	WithEffects(string(StatusDelivered), string(StatusRejected), transition.EffectRecomputeProjectProgress)

func ValidTransitionsFrom(s Status) []string { return Rules.From(string(s)) }

type Deliverable struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"-"`
	DeliverableID string     `gorm:"size:32;uniqueIndex:ux_deliverables_deliverable_id" json:"deliverable_id"`
	ProjectID     string     `gorm:"size:32;index:idx_deliverables_project" json:"project_id"`
	Title         string     `gorm:"size:160" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	DueDate       time.Time  `json:"due_date"`
	Status        Status     `gorm:"size:16;default:'pending'" json:"status"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes"`
	OrderIndex    int        `json:"order_index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Deliverable) TableName() string { return "deliverables" }

func (d *Deliverable) Validate() []errs.Violation {
	var out []errs.Violation
	if d.ProjectID == "" {
		out = append(out, errs.Violation{Field: "project_id", Rule: "is required"})
	}
	if strings.TrimSpace(d.Title) == "" {
		out = append(out, errs.Violation{Field: "title", Rule: "is required"})
	}
	if strings.TrimSpace(d.Description) == "" {
		out = append(out, errs.Violation{Field: "description", Rule: "is required"})
	}
	if d.DueDate.IsZero() {
		out = append(out, errs.Violation{Field: "due_date", Rule: "is required"})
	}
	switch d.Status {
	case StatusPending, StatusInProgress, StatusDelivered, StatusApproved, StatusRejected:
	default:
		out = append(out, errs.Violation{Field: "status", Rule: "must be one of pending, in_progress, delivered, approved, rejected"})
	}
	return out
}

// Completed reports whether the deliverable counts toward project progress.
func (d *Deliverable) Completed() bool {
	return d.Status == StatusDelivered || d.Status == StatusApproved
}

// Overdue reports whether the due date passed without a delivery.
func (d *Deliverable) Overdue(now time.Time) bool {
	return now.After(d.DueDate) && !d.Completed()
}
