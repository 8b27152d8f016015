package proposal

import "context"

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	GetByProposalID(ctx context.Context, proposalID string) (*Proposal, error)
	// GetByProposalIDForUpdate locks the row for the duration of the
	// surrounding transaction; transition re-checks rely on it.
	GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*Proposal, error)
	Save(ctx context.Context, p *Proposal) error
	List(ctx context.Context, status Status) ([]Proposal, error)
}
