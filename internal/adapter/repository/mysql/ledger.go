package mysql

import (
	"context"

	ledgerDomain "freelance-engagement-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Create(ctx context.Context, e *ledgerDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LedgerRepository) GetByEntryID(ctx context.Context, entryID string) (*ledgerDomain.Entry, error) {
	var out ledgerDomain.Entry
	res := r.db.WithContext(ctx).Where("entry_id = ?", entryID).First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) ListByProject(ctx context.Context, projectID string, rng ledgerDomain.Range) ([]ledgerDomain.Entry, error) {
	q := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	var out []ledgerDomain.Entry
	res := applyRange(q, rng).Order("date ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) ListByProjects(ctx context.Context, projectIDs []string, rng ledgerDomain.Range) ([]ledgerDomain.Entry, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).Where("project_id IN ?", projectIDs)
	var out []ledgerDomain.Entry
	res := applyRange(q, rng).Order("date ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) List(ctx context.Context, rng ledgerDomain.Range) ([]ledgerDomain.Entry, error) {
	var out []ledgerDomain.Entry
	res := applyRange(r.db.WithContext(ctx), rng).Order("date ASC, id ASC").Find(&out)
	return out, res.Error
}

func applyRange(q *gorm.DB, rng ledgerDomain.Range) *gorm.DB {
	if rng.From != nil {
		q = q.Where("date >= ?", *rng.From)
	}
	if rng.To != nil {
		q = q.Where("date <= ?", *rng.To)
	}
	return q
}
