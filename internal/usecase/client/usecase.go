package client

import (
	"context"
	"errors"

	clientDomain "freelance-engagement-backend/internal/domain/client"
	"freelance-engagement-backend/internal/domain/errs"
	"freelance-engagement-backend/internal/usecase/storerr"
	"freelance-engagement-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ clients clientDomain.Repository }

func NewUsecase(clients clientDomain.Repository) *Usecase { return &Usecase{clients: clients} }

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ClientDTO, error) {
	c := &clientDomain.Client{
		ClientID: id.NewID32(),
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Company:  in.Company,
	}
	if v := c.Validate(); len(v) > 0 {
		return nil, errs.NewValidation("client", v)
	}

	// Pre-check for a friendly error; the unique index on email stays the
	// actual guarantee under concurrent creates.
	if _, err := u.clients.GetByEmail(ctx, in.Email); err == nil {
		return nil, &errs.InvariantViolationError{Entity: "client", Rule: "email already registered"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := u.clients.Create(ctx, c); err != nil {
		return nil, storerr.Conflict("create client", err)
	}
	return toDTO(c), nil
}

func (u *Usecase) UpdateContact(ctx context.Context, clientID string, in UpdateContactInput) (*ClientDTO, error) {
	c, err := u.clients.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, storerr.NotFound("client", clientID, err)
	}

	if in.Email != "" {
		c.Email = in.Email
	}
	if in.Phone != "" {
		c.Phone = in.Phone
	}
	if v := c.Validate(); len(v) > 0 {
		return nil, errs.NewValidation("client", v)
	}

	if err := u.clients.Save(ctx, c); err != nil {
		return nil, storerr.Conflict("update client contact", err)
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*ClientDTO, error) {
	c, err := u.clients.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, storerr.NotFound("client", clientID, err)
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]ClientDTO, error) {
	list, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClientDTO, 0, len(list))
	for i := range list {
		out = append(out, *toDTO(&list[i]))
	}
	return out, nil
}

func toDTO(c *clientDomain.Client) *ClientDTO {
	return &ClientDTO{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
	}
}
