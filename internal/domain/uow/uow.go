package uow

import (
	"context"

	"freelance-engagement-backend/internal/domain/client"
	"freelance-engagement-backend/internal/domain/contract"
	"freelance-engagement-backend/internal/domain/deliverable"
	"freelance-engagement-backend/internal/domain/ledger"
	"freelance-engagement-backend/internal/domain/project"
	"freelance-engagement-backend/internal/domain/proposal"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Clients      client.Repository
	Proposals    proposal.Repository
	Projects     project.Repository
	Contracts    contract.Repository
	Deliverables deliverable.Repository
	Ledger       ledger.Repository
}

// UnitOfWork runs fn against a single atomic transaction: every write inside
// fn commits together or not at all. Returning an error rolls everything back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
