package contractmock

import (
	"context"

	domain "freelance-engagement-backend/internal/domain/contract"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Contract) error
	GetByContractIDFn          func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetByContractIDForUpdateFn func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetByProjectIDFn           func(ctx context.Context, projectID string) (*domain.Contract, error)
	SaveFn                     func(ctx context.Context, c *domain.Contract) error
	ListFn                     func(ctx context.Context, status domain.Status) ([]domain.Contract, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByContractIDForUpdate(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDForUpdateFn != nil {
		return m.GetByContractIDForUpdateFn(ctx, contractID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByProjectID(ctx context.Context, projectID string) (*domain.Contract, error) {
	if m.GetByProjectIDFn != nil {
		return m.GetByProjectIDFn(ctx, projectID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, c *domain.Contract) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
func (m *Repo) List(ctx context.Context, status domain.Status) ([]domain.Contract, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return nil, nil
}
