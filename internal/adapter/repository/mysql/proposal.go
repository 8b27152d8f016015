package mysql

import (
	"context"

	proposalDomain "freelance-engagement-backend/internal/domain/proposal"

	"gorm.io/gorm"
)

type ProposalRepository struct{ db *gorm.DB }

func NewProposalRepository(db *gorm.DB) *ProposalRepository { return &ProposalRepository{db: db} }

func (r *ProposalRepository) Create(ctx context.Context, p *proposalDomain.Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProposalRepository) Save(ctx context.Context, p *proposalDomain.Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProposalRepository) GetByProposalID(ctx context.Context, proposalID string) (*proposalDomain.Proposal, error) {
	var out proposalDomain.Proposal
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&out)
	return &out, res.Error
}

func (r *ProposalRepository) GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*proposalDomain.Proposal, error) {
	var out proposalDomain.Proposal
	res := withLock(r.db.WithContext(ctx)).Where("proposal_id = ?", proposalID).First(&out)
	return &out, res.Error
}

func (r *ProposalRepository) List(ctx context.Context, status proposalDomain.Status) ([]proposalDomain.Proposal, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []proposalDomain.Proposal
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
