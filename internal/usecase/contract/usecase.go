package contract

import (
	"context"
	"errors"
	"time"

	contractDomain "freelance-engagement-backend/internal/domain/contract"
	"freelance-engagement-backend/internal/domain/errs"
	projectDomain "freelance-engagement-backend/internal/domain/project"
	"freelance-engagement-backend/internal/domain/transition"
	"freelance-engagement-backend/internal/domain/uow"
	"freelance-engagement-backend/internal/usecase/storerr"
	"freelance-engagement-backend/pkg/id"

	"gorm.io/gorm"
)

const createAttempts = 3

type Usecase struct {
	contracts contractDomain.Repository
	projects  projectDomain.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(contracts contractDomain.Repository, projects projectDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{contracts: contracts, projects: projects, uow: tx}
}

// Generate creates a draft contract bound to exactly one project. The
// project is read under lock in the same transaction so the span check and
// the insert cannot race a concurrent project date edit.
func (u *Usecase) Generate(ctx context.Context, in GenerateInput) (*ContractDTO, error) {
	now := time.Now().UTC()

	c := &contractDomain.Contract{
		ContractID:   id.NewID32(),
		ProjectID:    in.ProjectID,
		Conditions:   in.Conditions,
		PaymentTerms: in.PaymentTerms,
		StartDate:    in.StartDate.UTC(),
		EndDate:      in.EndDate.UTC(),
		TotalValue:   in.TotalValue,
		Status:       contractDomain.StatusDraft,
	}
	if v := c.Validate(); len(v) > 0 {
		return nil, errs.NewValidation("contract", v)
	}

	var dto *ContractDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByProjectIDForUpdate(ctx, in.ProjectID)
		if err != nil {
			return storerr.NotFound("project", in.ProjectID, err)
		}
		if !p.WithinSpan(c.StartDate, c.EndDate) {
			return &errs.InvariantViolationError{
				Entity: "contract",
				Rule:   "dates must fall within the project date span",
			}
		}

		if _, err := r.Contracts.GetByProjectID(ctx, in.ProjectID); err == nil {
			return &errs.InvariantViolationError{
				Entity: "contract",
				Rule:   "project already has a contract",
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		for i := 0; i < createAttempts; i++ {
			c.Number = id.NewRef("CTR", now)
			if err = r.Contracts.Create(ctx, c); err == nil {
				dto = toDTO(c)
				return nil
			}
			if !storerr.IsDuplicate(err) {
				return err
			}
		}
		return &errs.ConcurrencyConflictError{Op: "create contract", Err: err}
	})
	if err != nil {
		return nil, storerr.Tx("generate contract", err)
	}
	return dto, nil
}

// Sign transitions draft -> signed and stamps the signature date. The
// project span is re-validated at commit time: the dates may have drifted
// since the contract was drafted.
func (u *Usecase) Sign(ctx context.Context, contractID string) (*ContractDTO, error) {
	return u.transition(ctx, contractID, contractDomain.StatusSigned)
}

// Cancel transitions draft -> cancelled.
func (u *Usecase) Cancel(ctx context.Context, contractID string) (*ContractDTO, error) {
	return u.transition(ctx, contractID, contractDomain.StatusCancelled)
}

func (u *Usecase) transition(ctx context.Context, contractID string, target contractDomain.Status) (*ContractDTO, error) {
	var dto *ContractDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Contracts.GetByContractIDForUpdate(ctx, contractID)
		if err != nil {
			return storerr.NotFound("contract", contractID, err)
		}

		effects, err := contractDomain.Rules.Attempt(string(c.Status), string(target))
		if err != nil {
			return err
		}

		p, err := r.Projects.GetByProjectIDForUpdate(ctx, c.ProjectID)
		if err != nil {
			return storerr.NotFound("project", c.ProjectID, err)
		}
		if !p.WithinSpan(c.StartDate, c.EndDate) {
			return &errs.InvariantViolationError{
				Entity: "contract",
				Rule:   "dates no longer fall within the project date span",
			}
		}

		now := time.Now().UTC()
		for _, ef := range effects {
			if ef == transition.EffectStampSignatureDate {
				c.SignedAt = &now
			}
		}

		c.Status = target
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, storerr.Tx("contract "+string(target), err)
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, contractID string) (*ContractDTO, error) {
	c, err := u.contracts.GetByContractID(ctx, contractID)
	if err != nil {
		return nil, storerr.NotFound("contract", contractID, err)
	}
	return toDTO(c), nil
}

func (u *Usecase) GetByProject(ctx context.Context, projectID string) (*ContractDTO, error) {
	c, err := u.contracts.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, storerr.NotFound("contract", "project:"+projectID, err)
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context, status contractDomain.Status) ([]ContractDTO, error) {
	list, err := u.contracts.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]ContractDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

func toDTO(c *contractDomain.Contract) *ContractDTO {
	return &ContractDTO{
		ContractID:   c.ContractID,
		Number:       c.Number,
		ProjectID:    c.ProjectID,
		Conditions:   c.Conditions,
		PaymentTerms: c.PaymentTerms,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		TotalValue:   c.TotalValue,
		Status:       string(c.Status),
		SignedAt:     c.SignedAt,
		CreatedAt:    c.CreatedAt,
	}
}
