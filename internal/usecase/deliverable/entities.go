package deliverable

import "time"

type CreateInput struct {
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
}

type DeliverableDTO struct {
	DeliverableID string     `json:"deliverable_id"`
	ProjectID     string     `json:"project_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DueDate       time.Time  `json:"due_date"`
	Status        string     `json:"status"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	OrderIndex    int        `json:"order_index"`
	Overdue       bool       `json:"overdue"`
	CreatedAt     time.Time  `json:"created_at"`
	// ProjectProgress echoes the progress written in the same transaction
	// as a status change, so callers never observe a stale value.
	ProjectProgress int `json:"project_progress"`
}
