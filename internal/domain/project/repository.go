package project

import "context"

type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByProjectID(ctx context.Context, projectID string) (*Project, error)
	GetByProjectIDForUpdate(ctx context.Context, projectID string) (*Project, error)
	Save(ctx context.Context, p *Project) error
	List(ctx context.Context, status Status) ([]Project, error)
	ListByClient(ctx context.Context, clientID string) ([]Project, error)

	AddAdvance(ctx context.Context, a *Advance) error
	ListAdvances(ctx context.Context, projectID string) ([]Advance, error)
}
