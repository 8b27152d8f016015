package projectmock

import (
	"context"

	domain "freelance-engagement-backend/internal/domain/project"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, p *domain.Project) error
	GetByProjectIDFn          func(ctx context.Context, projectID string) (*domain.Project, error)
	GetByProjectIDForUpdateFn func(ctx context.Context, projectID string) (*domain.Project, error)
	SaveFn                    func(ctx context.Context, p *domain.Project) error
	ListFn                    func(ctx context.Context, status domain.Status) ([]domain.Project, error)
	ListByClientFn            func(ctx context.Context, clientID string) ([]domain.Project, error)
	AddAdvanceFn              func(ctx context.Context, a *domain.Advance) error
	ListAdvancesFn            func(ctx context.Context, projectID string) ([]domain.Advance, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *Repo) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDFn != nil {
		return m.GetByProjectIDFn(ctx, projectID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByProjectIDForUpdate(ctx context.Context, projectID string) (*domain.Project, error) {
	if m.GetByProjectIDForUpdateFn != nil {
		return m.GetByProjectIDForUpdateFn(ctx, projectID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, p *domain.Project) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
func (m *Repo) List(ctx context.Context, status domain.Status) ([]domain.Project, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return nil, nil
}
func (m *Repo) ListByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	if m.ListByClientFn != nil {
		return m.ListByClientFn(ctx, clientID)
	}
	return nil, nil
}
func (m *Repo) AddAdvance(ctx context.Context, a *domain.Advance) error {
	if m.AddAdvanceFn != nil {
		return m.AddAdvanceFn(ctx, a)
	}
	return nil
}
func (m *Repo) ListAdvances(ctx context.Context, projectID string) ([]domain.Advance, error) {
	if m.ListAdvancesFn != nil {
		return m.ListAdvancesFn(ctx, projectID)
	}
	return nil, nil
}
