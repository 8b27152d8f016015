package ledgermock

import (
	"context"

	domain "freelance-engagement-backend/internal/domain/ledger"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, e *domain.Entry) error
	GetByEntryIDFn   func(ctx context.Context, entryID string) (*domain.Entry, error)
	ListByProjectFn  func(ctx context.Context, projectID string, r domain.Range) ([]domain.Entry, error)
	ListByProjectsFn func(ctx context.Context, projectIDs []string, r domain.Range) ([]domain.Entry, error)
	ListFn           func(ctx context.Context, r domain.Range) ([]domain.Entry, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *Repo) GetByEntryID(ctx context.Context, entryID string) (*domain.Entry, error) {
	if m.GetByEntryIDFn != nil {
		return m.GetByEntryIDFn(ctx, entryID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByProject(ctx context.Context, projectID string, r domain.Range) ([]domain.Entry, error) {
	if m.ListByProjectFn != nil {
		return m.ListByProjectFn(ctx, projectID, r)
	}
	return nil, nil
}
func (m *Repo) ListByProjects(ctx context.Context, projectIDs []string, r domain.Range) ([]domain.Entry, error) {
	if m.ListByProjectsFn != nil {
		return m.ListByProjectsFn(ctx, projectIDs, r)
	}
	return nil, nil
}
func (m *Repo) List(ctx context.Context, r domain.Range) ([]domain.Entry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, r)
	}
	return nil, nil
}
