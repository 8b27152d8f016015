package proposal

import (
	"context"
	"time"

	clientDomain "freelance-engagement-backend/internal/domain/client"
	"freelance-engagement-backend/internal/domain/errs"
	projectDomain "freelance-engagement-backend/internal/domain/project"
	proposalDomain "freelance-engagement-backend/internal/domain/proposal"
	"freelance-engagement-backend/internal/domain/transition"
	"freelance-engagement-backend/internal/domain/uow"
	"freelance-engagement-backend/internal/usecase/storerr"
	"freelance-engagement-backend/pkg/id"
)

// createAttempts bounds the reference-number collision retry.
const createAttempts = 3

type Usecase struct {
	proposals proposalDomain.Repository
	clients   clientDomain.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(proposals proposalDomain.Repository, clients clientDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{proposals: proposals, clients: clients, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ProposalDTO, error) {
	now := time.Now().UTC()

	p := &proposalDomain.Proposal{
		ProposalID:  id.NewID32(),
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Terms:       in.Terms,
		Deadline:    in.Deadline.UTC(),
		Status:      proposalDomain.StatusPending,
	}
	if v := p.Validate(now); len(v) > 0 {
		return nil, errs.NewValidation("proposal", v)
	}

	if _, err := u.clients.GetByClientID(ctx, in.ClientID); err != nil {
		return nil, storerr.NotFound("client", in.ClientID, err)
	}

	var err error
	for i := 0; i < createAttempts; i++ {
		p.Number = id.NewRef("PROP", now)
		if err = u.proposals.Create(ctx, p); err == nil {
			break
		}
		if !storerr.IsDuplicate(err) {
			return nil, err
		}
	}
	if err != nil {
		return nil, &errs.ConcurrencyConflictError{Op: "create proposal", Err: err}
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, proposalID string) (*ProposalDTO, error) {
	p, err := u.proposals.GetByProposalID(ctx, proposalID)
	if err != nil {
		return nil, storerr.NotFound("proposal", proposalID, err)
	}
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context, status proposalDomain.Status) ([]ProposalDTO, error) {
	list, err := u.proposals.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]ProposalDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

// Accept flips a pending proposal to accepted and creates the derived
// project in the same transaction. The proposal row is re-read under lock
// inside the transaction, so of two concurrent accepts exactly one commits;
// the loser observes the accepted state and fails the transition check.
func (u *Usecase) Accept(ctx context.Context, proposalID string) (*AcceptResult, error) {
	var result *AcceptResult

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Proposals.GetByProposalIDForUpdate(ctx, proposalID)
		if err != nil {
			return storerr.NotFound("proposal", proposalID, err)
		}

		effects, err := proposalDomain.Rules.Attempt(string(p.Status), string(proposalDomain.StatusAccepted))
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		var prj *projectDomain.Project
		for _, ef := range effects {
			if ef != transition.EffectCreateProjectFromProposal {
				continue
			}
			prj = projectFromProposal(p, now)
			if v := prj.Validate(); len(v) > 0 {
				return errs.NewValidation("project", v)
			}
			if err := createProjectWithRetry(ctx, r, prj, now); err != nil {
				return err
			}
		}

		p.Status = proposalDomain.StatusAccepted
		if prj != nil {
			p.ProjectID = &prj.ProjectID
		}
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}

		result = &AcceptResult{Proposal: toDTO(p), Project: toSummary(prj)}
		return nil
	})
	if err != nil {
		return nil, storerr.Tx("accept proposal", err)
	}
	return result, nil
}

// Reject is a single-document transition; it still runs under the
// transaction lock so a concurrent accept/reject cannot double-apply.
func (u *Usecase) Reject(ctx context.Context, proposalID string) (*ProposalDTO, error) {
	var dto *ProposalDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Proposals.GetByProposalIDForUpdate(ctx, proposalID)
		if err != nil {
			return storerr.NotFound("proposal", proposalID, err)
		}
		if _, err := proposalDomain.Rules.Attempt(string(p.Status), string(proposalDomain.StatusRejected)); err != nil {
			return err
		}
		p.Status = proposalDomain.StatusRejected
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, storerr.Tx("reject proposal", err)
	}
	return dto, nil
}

// projectFromProposal inherits title, description, price and deadline from
// the accepted proposal; the project starts now and stays active.
func projectFromProposal(p *proposalDomain.Proposal, now time.Time) *projectDomain.Project {
	deadline := p.Deadline
	return &projectDomain.Project{
		ProjectID:   id.NewID32(),
		ClientID:    p.ClientID,
		ProposalID:  &p.ProposalID,
		Name:        p.Title,
		Description: p.Description,
		StartDate:   now,
		EndDate:     &deadline,
		Value:       p.Price,
		Status:      projectDomain.StatusActive,
	}
}

func createProjectWithRetry(ctx context.Context, r uow.Repos, prj *projectDomain.Project, now time.Time) error {
	var err error
	for i := 0; i < createAttempts; i++ {
		prj.Code = id.NewRef("PRJ", now)
		if err = r.Projects.Create(ctx, prj); err == nil {
			return nil
		}
		if !storerr.IsDuplicate(err) {
			return err
		}
	}
	return &errs.ConcurrencyConflictError{Op: "create project", Err: err}
}

func toDTO(p *proposalDomain.Proposal) *ProposalDTO {
	return &ProposalDTO{
		ProposalID:  p.ProposalID,
		Number:      p.Number,
		ClientID:    p.ClientID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Terms:       p.Terms,
		Deadline:    p.Deadline,
		Status:      string(p.Status),
		ProjectID:   p.ProjectID,
		CreatedAt:   p.CreatedAt,
	}
}

func toSummary(prj *projectDomain.Project) *ProjectSummary {
	if prj == nil {
		return nil
	}
	return &ProjectSummary{
		ProjectID: prj.ProjectID,
		Code:      prj.Code,
		Name:      prj.Name,
		Value:     prj.Value,
		StartDate: prj.StartDate,
		EndDate:   prj.EndDate,
		Status:    string(prj.Status),
	}
}
