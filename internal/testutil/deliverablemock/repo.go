package deliverablemock

import (
	"context"

	domain "freelance-engagement-backend/internal/domain/deliverable"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, d *domain.Deliverable) error
	GetByDeliverableIDFn          func(ctx context.Context, deliverableID string) (*domain.Deliverable, error)
	GetByDeliverableIDForUpdateFn func(ctx context.Context, deliverableID string) (*domain.Deliverable, error)
	SaveFn                        func(ctx context.Context, d *domain.Deliverable) error
	ListByProjectFn               func(ctx context.Context, projectID string) ([]domain.Deliverable, error)
	MaxOrderIndexFn               func(ctx context.Context, projectID string) (int, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Deliverable) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}
func (m *Repo) GetByDeliverableID(ctx context.Context, deliverableID string) (*domain.Deliverable, error) {
	if m.GetByDeliverableIDFn != nil {
		return m.GetByDeliverableIDFn(ctx, deliverableID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByDeliverableIDForUpdate(ctx context.Context, deliverableID string) (*domain.Deliverable, error) {
	if m.GetByDeliverableIDForUpdateFn != nil {
		return m.GetByDeliverableIDForUpdateFn(ctx, deliverableID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, d *domain.Deliverable) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}
func (m *Repo) ListByProject(ctx context.Context, projectID string) ([]domain.Deliverable, error) {
	if m.ListByProjectFn != nil {
		return m.ListByProjectFn(ctx, projectID)
	}
	return nil, nil
}
func (m *Repo) MaxOrderIndex(ctx context.Context, projectID string) (int, error) {
	if m.MaxOrderIndexFn != nil {
		return m.MaxOrderIndexFn(ctx, projectID)
	}
	return 0, nil
}
