package ledger

import (
	"context"

	clientDomain "freelance-engagement-backend/internal/domain/client"
	"freelance-engagement-backend/internal/domain/errs"
	ledgerDomain "freelance-engagement-backend/internal/domain/ledger"
	"freelance-engagement-backend/internal/domain/metrics"
	projectDomain "freelance-engagement-backend/internal/domain/project"
	"freelance-engagement-backend/internal/usecase/storerr"
	"freelance-engagement-backend/pkg/id"
)

type Usecase struct {
	ledger   ledgerDomain.Repository
	projects projectDomain.Repository
	clients  clientDomain.Repository
}

func NewUsecase(entries ledgerDomain.Repository, projects projectDomain.Repository, clients clientDomain.Repository) *Usecase {
	return &Usecase{ledger: entries, projects: projects, clients: clients}
}

// Record inserts an immutable ledger entry. Entries are never updated or
// deleted afterwards; corrections are recorded as new entries.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*EntryDTO, error) {
	e := &ledgerDomain.Entry{
		EntryID:     id.NewID32(),
		ProjectID:   in.ProjectID,
		Kind:        ledgerDomain.Kind(in.Kind),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date.UTC(),
		Category:    in.Category,
	}
	if v := e.Validate(); len(v) > 0 {
		return nil, errs.NewValidation("ledger_entry", v)
	}

	if in.ProjectID != nil {
		if _, err := u.projects.GetByProjectID(ctx, *in.ProjectID); err != nil {
			return nil, storerr.NotFound("project", *in.ProjectID, err)
		}
	}

	if err := u.ledger.Create(ctx, e); err != nil {
		return nil, storerr.Conflict("record ledger entry", err)
	}
	return toDTO(e), nil
}

// Balance folds the scoped entries into {income, expense, balance} with
// exact decimal arithmetic. The read has no side effects on primary data.
func (u *Usecase) Balance(ctx context.Context, scope BalanceScope) (*metrics.BalanceReport, error) {
	entries, err := u.scopedEntries(ctx, scope)
	if err != nil {
		return nil, err
	}
	report := metrics.Balance(entries)
	return &report, nil
}

func (u *Usecase) Entries(ctx context.Context, scope BalanceScope) ([]EntryDTO, error) {
	entries, err := u.scopedEntries(ctx, scope)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for i := range entries {
		out = append(out, *toDTO(&entries[i]))
	}
	return out, nil
}

func (u *Usecase) scopedEntries(ctx context.Context, scope BalanceScope) ([]ledgerDomain.Entry, error) {
	rng := ledgerDomain.Range{From: scope.From, To: scope.To}

	switch {
	case scope.ProjectID != "":
		if _, err := u.projects.GetByProjectID(ctx, scope.ProjectID); err != nil {
			return nil, storerr.NotFound("project", scope.ProjectID, err)
		}
		return u.ledger.ListByProject(ctx, scope.ProjectID, rng)

	case scope.ClientID != "":
		if _, err := u.clients.GetByClientID(ctx, scope.ClientID); err != nil {
			return nil, storerr.NotFound("client", scope.ClientID, err)
		}
		projects, err := u.projects.ListByClient(ctx, scope.ClientID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(projects))
		for i := range projects {
			ids = append(ids, projects[i].ProjectID)
		}
		return u.ledger.ListByProjects(ctx, ids, rng)

	default:
		return u.ledger.List(ctx, rng)
	}
}

func toDTO(e *ledgerDomain.Entry) *EntryDTO {
	return &EntryDTO{
		EntryID:     e.EntryID,
		ProjectID:   e.ProjectID,
		Kind:        string(e.Kind),
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
	}
}
