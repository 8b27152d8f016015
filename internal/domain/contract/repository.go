package contract

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	GetByContractID(ctx context.Context, contractID string) (*Contract, error)
	GetByContractIDForUpdate(ctx context.Context, contractID string) (*Contract, error)
	GetByProjectID(ctx context.Context, projectID string) (*Contract, error)
	Save(ctx context.Context, c *Contract) error
	List(ctx context.Context, status Status) ([]Contract, error)
}
