package project

import (
	"context"
	"errors"
	"time"

	clientDomain "freelance-engagement-backend/internal/domain/client"
	contractDomain "freelance-engagement-backend/internal/domain/contract"
	deliverableDomain "freelance-engagement-backend/internal/domain/deliverable"
	"freelance-engagement-backend/internal/domain/errs"
	"freelance-engagement-backend/internal/domain/metrics"
	projectDomain "freelance-engagement-backend/internal/domain/project"
	"freelance-engagement-backend/internal/domain/transition"
	"freelance-engagement-backend/internal/domain/uow"
	"freelance-engagement-backend/internal/usecase/storerr"
	"freelance-engagement-backend/pkg/id"

	"gorm.io/gorm"
)

const createAttempts = 3

// ProgressCache fronts the derived-progress read path. A nil cache disables
// caching; every mutation to the inputs invalidates the entry.
type ProgressCache interface {
	Get(ctx context.Context, projectID string) (int, bool, error)
	Set(ctx context.Context, projectID string, progress int) error
	Invalidate(ctx context.Context, projectID string) error
}

type Usecase struct {
	projects     projectDomain.Repository
	clients      clientDomain.Repository
	deliverables deliverableDomain.Repository
	uow          uow.UnitOfWork
	cache        ProgressCache
	weights      metrics.Weights
}

func NewUsecase(
	projects projectDomain.Repository,
	clients clientDomain.Repository,
	deliverables deliverableDomain.Repository,
	tx uow.UnitOfWork,
	cache ProgressCache,
) *Usecase {
	return &Usecase{
		projects:     projects,
		clients:      clients,
		deliverables: deliverables,
		uow:          tx,
		cache:        cache,
		weights:      metrics.DefaultWeights,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ProjectDTO, error) {
	now := time.Now().UTC()

	p := &projectDomain.Project{
		ProjectID:   id.NewID32(),
		ClientID:    in.ClientID,
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate.UTC(),
		Value:       in.Value,
		Status:      projectDomain.StatusActive,
	}
	if in.EndDate != nil {
		end := in.EndDate.UTC()
		p.EndDate = &end
	}
	if v := p.Validate(); len(v) > 0 {
		return nil, errs.NewValidation("project", v)
	}

	if _, err := u.clients.GetByClientID(ctx, in.ClientID); err != nil {
		return nil, storerr.NotFound("client", in.ClientID, err)
	}

	var err error
	for i := 0; i < createAttempts; i++ {
		p.Code = id.NewRef("PRJ", now)
		if err = u.projects.Create(ctx, p); err == nil {
			break
		}
		if !storerr.IsDuplicate(err) {
			return nil, err
		}
	}
	if err != nil {
		return nil, &errs.ConcurrencyConflictError{Op: "create project", Err: err}
	}
	return u.toDTO(ctx, p, nil), nil
}

// Get returns the project merged with its derived progress. Progress comes
// from the cache when fresh, otherwise it is recomputed from the current
// deliverables and date span.
func (u *Usecase) Get(ctx context.Context, projectID string) (*ProjectDTO, error) {
	p, err := u.projects.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, storerr.NotFound("project", projectID, err)
	}

	progress, err := u.progressFor(ctx, p)
	if err != nil {
		return nil, err
	}
	p.Progress = progress

	advances, err := u.projects.ListAdvances(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return u.toDTO(ctx, p, advances), nil
}

func (u *Usecase) List(ctx context.Context, status projectDomain.Status) ([]ProjectDTO, error) {
	list, err := u.projects.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]ProjectDTO, 0, len(list))
	for i := range list {
		out = append(out, *u.toDTO(ctx, &list[i], nil))
	}
	return out, nil
}

// ChangeStatus applies a table-guarded status transition. Finishing forces
// progress to 100; cancelling freezes it at the value computed in the same
// transaction so it stops advancing with time.
func (u *Usecase) ChangeStatus(ctx context.Context, projectID string, target projectDomain.Status) (*ProjectDTO, error) {
	var dto *ProjectDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectIDForUpdate(ctx, projectID)
		if err != nil {
			return storerr.NotFound("project", projectID, err)
		}

		effects, err := projectDomain.Rules.Attempt(string(p.Status), string(target))
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, ef := range effects {
			if ef != transition.EffectRecomputeProjectProgress {
				continue
			}
			dels, err := r.Deliverables.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			// computed against the pre-transition status: a project being
			// cancelled freezes at its value as of this moment
			p.Progress = metrics.Progress(now, p, dels, u.weights)
		}

		p.Status = target
		if target == projectDomain.StatusFinished {
			p.Progress = 100
		}
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		dto = u.toDTO(ctx, p, nil)
		return nil
	})
	if err != nil {
		return nil, storerr.Tx("change project status", err)
	}
	u.invalidate(ctx, projectID)
	return dto, nil
}

// RegisterAdvance appends a dated progress note to the project.
func (u *Usecase) RegisterAdvance(ctx context.Context, projectID, note string) (*AdvanceDTO, error) {
	if note == "" {
		return nil, errs.NewValidation("advance", []errs.Violation{{Field: "note", Rule: "is required"}})
	}
	if _, err := u.projects.GetByProjectID(ctx, projectID); err != nil {
		return nil, storerr.NotFound("project", projectID, err)
	}
	a := &projectDomain.Advance{ProjectID: projectID, Note: note}
	if err := u.projects.AddAdvance(ctx, a); err != nil {
		return nil, err
	}
	return &AdvanceDTO{Note: a.Note, CreatedAt: a.CreatedAt}, nil
}

// UpdateDates moves the project span. Narrowing is refused while a signed
// contract or an existing deliverable due date would fall outside the new
// span; the checks run against rows read in the same transaction.
func (u *Usecase) UpdateDates(ctx context.Context, projectID string, in UpdateDatesInput) (*ProjectDTO, error) {
	var dto *ProjectDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectIDForUpdate(ctx, projectID)
		if err != nil {
			return storerr.NotFound("project", projectID, err)
		}

		p.StartDate = in.StartDate.UTC()
		p.EndDate = nil
		if in.EndDate != nil {
			end := in.EndDate.UTC()
			p.EndDate = &end
		}
		if v := p.Validate(); len(v) > 0 {
			return errs.NewValidation("project", v)
		}

		c, err := r.Contracts.GetByProjectID(ctx, projectID)
		switch {
		case err == nil:
			if c.Status == contractDomain.StatusSigned && !p.WithinSpan(c.StartDate, c.EndDate) {
				return &errs.InvariantViolationError{
					Entity: "project",
					Rule:   "date span cannot exclude the signed contract's dates",
				}
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		dels, err := r.Deliverables.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		for i := range dels {
			if !p.ContainsDate(dels[i].DueDate) {
				return &errs.InvariantViolationError{
					Entity: "project",
					Rule:   "date span cannot exclude an existing deliverable due date",
				}
			}
		}

		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		dto = u.toDTO(ctx, p, nil)
		return nil
	})
	if err != nil {
		return nil, storerr.Tx("update project dates", err)
	}
	u.invalidate(ctx, projectID)
	return dto, nil
}

func (u *Usecase) progressFor(ctx context.Context, p *projectDomain.Project) (int, error) {
	switch p.Status {
	case projectDomain.StatusFinished:
		return 100, nil
	case projectDomain.StatusCancelled:
		return p.Progress, nil
	}

	if u.cache != nil {
		if v, ok, err := u.cache.Get(ctx, p.ProjectID); err == nil && ok {
			return v, nil
		}
	}

	dels, err := u.deliverables.ListByProject(ctx, p.ProjectID)
	if err != nil {
		return 0, err
	}
	progress := metrics.Progress(time.Now().UTC(), p, dels, u.weights)

	if u.cache != nil {
		_ = u.cache.Set(ctx, p.ProjectID, progress)
	}
	return progress, nil
}

func (u *Usecase) invalidate(ctx context.Context, projectID string) {
	if u.cache != nil {
		_ = u.cache.Invalidate(ctx, projectID)
	}
}

func (u *Usecase) toDTO(_ context.Context, p *projectDomain.Project, advances []projectDomain.Advance) *ProjectDTO {
	dto := &ProjectDTO{
		ProjectID:   p.ProjectID,
		Code:        p.Code,
		ClientID:    p.ClientID,
		ProposalID:  p.ProposalID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Value:       p.Value,
		Status:      string(p.Status),
		Progress:    p.Progress,
		CreatedAt:   p.CreatedAt,
	}
	for i := range advances {
		dto.Advances = append(dto.Advances, AdvanceDTO{Note: advances[i].Note, CreatedAt: advances[i].CreatedAt})
	}
	return dto
}
