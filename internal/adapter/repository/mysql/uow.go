package mysql

import (
	"context"

	"freelance-engagement-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Clients:      &ClientRepository{db: tx},
			Proposals:    &ProposalRepository{db: tx},
			Projects:     &ProjectRepository{db: tx},
			Contracts:    &ContractRepository{db: tx},
			Deliverables: &DeliverableRepository{db: tx},
			Ledger:       &LedgerRepository{db: tx},
		}
		return fn(r)
	})
}
