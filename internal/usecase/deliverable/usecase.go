package deliverable

import (
	"context"
	"time"

	deliverableDomain "freelance-engagement-backend/internal/domain/deliverable"
	"freelance-engagement-backend/internal/domain/errs"
	"freelance-engagement-backend/internal/domain/metrics"
	"freelance-engagement-backend/internal/domain/transition"
	"freelance-engagement-backend/internal/domain/uow"
	"freelance-engagement-backend/internal/usecase/storerr"
	"freelance-engagement-backend/pkg/id"
)

// ProgressInvalidator drops the cached progress of a project after its
// inputs changed. A nil invalidator is a no-op.
type ProgressInvalidator interface {
	Invalidate(ctx context.Context, projectID string) error
}

type Usecase struct {
	deliverables deliverableDomain.Repository
	uow          uow.UnitOfWork
	cache        ProgressInvalidator
	weights      metrics.Weights
}

func NewUsecase(deliverables deliverableDomain.Repository, tx uow.UnitOfWork, cache ProgressInvalidator) *Usecase {
	return &Usecase{deliverables: deliverables, uow: tx, cache: cache, weights: metrics.DefaultWeights}
}

// Create inserts a deliverable and refreshes the owning project's stored
// progress in the same transaction (a new deliverable changes the total the
// completed fraction is computed against).
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DeliverableDTO, error) {
	d := &deliverableDomain.Deliverable{
		DeliverableID: id.NewID32(),
		ProjectID:     in.ProjectID,
		Title:         in.Title,
		Description:   in.Description,
		DueDate:       in.DueDate.UTC(),
		Status:        deliverableDomain.StatusPending,
	}
	if v := d.Validate(); len(v) > 0 {
		return nil, errs.NewValidation("deliverable", v)
	}

	var dto *DeliverableDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectIDForUpdate(ctx, in.ProjectID)
		if err != nil {
			return storerr.NotFound("project", in.ProjectID, err)
		}
		if !p.ContainsDate(d.DueDate) {
			return &errs.InvariantViolationError{
				Entity: "deliverable",
				Rule:   "due date must lie within the project date span",
			}
		}

		max, err := r.Deliverables.MaxOrderIndex(ctx, in.ProjectID)
		if err != nil {
			return err
		}
		d.OrderIndex = max + 1

		if err := r.Deliverables.Create(ctx, d); err != nil {
			return err
		}

		dels, err := r.Deliverables.ListByProject(ctx, in.ProjectID)
		if err != nil {
			return err
		}
		p.Progress = metrics.Progress(time.Now().UTC(), p, dels, u.weights)
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}

		dto = toDTO(d, p.Progress)
		return nil
	})
	if err != nil {
		return nil, storerr.Tx("create deliverable", err)
	}
	u.invalidate(ctx, in.ProjectID)
	return dto, nil
}

// ChangeStatus validates the transition against the table, applies the
// implied side effects (delivery-date stamp, progress recompute) and writes
// the deliverable plus the owning project in one transaction. A deliverable
// that reached approved has no outgoing edges, so any further change fails.
func (u *Usecase) ChangeStatus(ctx context.Context, deliverableID string, target deliverableDomain.Status, note string) (*DeliverableDTO, error) {
	var (
		dto       *DeliverableDTO
		projectID string
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Deliverables.GetByDeliverableIDForUpdate(ctx, deliverableID)
		if err != nil {
			return storerr.NotFound("deliverable", deliverableID, err)
		}
		projectID = d.ProjectID

		effects, err := deliverableDomain.Rules.Attempt(string(d.Status), string(target))
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		d.Status = target
		if note != "" {
			d.Notes = note
		}

		recompute := false
		for _, ef := range effects {
			switch ef {
			case transition.EffectStampDeliveryDate:
				d.DeliveredAt = &now
			case transition.EffectRecomputeProjectProgress:
				recompute = true
			}
		}

		if err := r.Deliverables.Save(ctx, d); err != nil {
			return err
		}

		progress := 0
		if recompute {
			p, err := r.Projects.GetByProjectIDForUpdate(ctx, d.ProjectID)
			if err != nil {
				return storerr.NotFound("project", d.ProjectID, err)
			}
			dels, err := r.Deliverables.ListByProject(ctx, d.ProjectID)
			if err != nil {
				return err
			}
			p.Progress = metrics.Progress(now, p, dels, u.weights)
			if err := r.Projects.Save(ctx, p); err != nil {
				return err
			}
			progress = p.Progress
		}

		dto = toDTO(d, progress)
		return nil
	})
	if err != nil {
		return nil, storerr.Tx("change deliverable status", err)
	}
	u.invalidate(ctx, projectID)
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, deliverableID string) (*DeliverableDTO, error) {
	d, err := u.deliverables.GetByDeliverableID(ctx, deliverableID)
	if err != nil {
		return nil, storerr.NotFound("deliverable", deliverableID, err)
	}
	return toDTO(d, 0), nil
}

func (u *Usecase) ListByProject(ctx context.Context, projectID string) ([]DeliverableDTO, error) {
	list, err := u.deliverables.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]DeliverableDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i], 0))
	}
	return out, nil
}

func (u *Usecase) invalidate(ctx context.Context, projectID string) {
	if u.cache != nil && projectID != "" {
		_ = u.cache.Invalidate(ctx, projectID)
	}
}

func toDTO(d *deliverableDomain.Deliverable, projectProgress int) *DeliverableDTO {
	return &DeliverableDTO{
		DeliverableID:   d.DeliverableID,
		ProjectID:       d.ProjectID,
		Title:           d.Title,
		Description:     d.Description,
		DueDate:         d.DueDate,
		Status:          string(d.Status),
		DeliveredAt:     d.DeliveredAt,
		Notes:           d.Notes,
		OrderIndex:      d.OrderIndex,
		Overdue:         d.Overdue(time.Now().UTC()),
		CreatedAt:       d.CreatedAt,
		ProjectProgress: projectProgress,
	}
}
