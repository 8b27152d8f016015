package deliverable

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deliverable) error
	GetByDeliverableID(ctx context.Context, deliverableID string) (*Deliverable, error)
	GetByDeliverableIDForUpdate(ctx context.Context, deliverableID string) (*Deliverable, error)
	Save(ctx context.Context, d *Deliverable) error
	ListByProject(ctx context.Context, projectID string) ([]Deliverable, error)
	// MaxOrderIndex returns 0 when the project has no deliverables yet.
	MaxOrderIndex(ctx context.Context, projectID string) (int, error)
}
