package clientmock

import (
	"context"

	domain "freelance-engagement-backend/internal/domain/client"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn        func(ctx context.Context, c *domain.Client) error
	GetByClientIDFn func(ctx context.Context, clientID string) (*domain.Client, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.Client, error)
	SaveFn          func(ctx context.Context, c *domain.Client) error
	ListFn          func(ctx context.Context) ([]domain.Client, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, c *domain.Client) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
func (m *Repo) List(ctx context.Context) ([]domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
