package mysql

import (
	"context"

	contractDomain "freelance-engagement-backend/internal/domain/contract"

	"gorm.io/gorm"
)

type ContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) *ContractRepository { return &ContractRepository{db: db} }

func (r *ContractRepository) Create(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContractRepository) Save(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContractRepository) GetByContractID(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("contract_id = ?", contractID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetByContractIDForUpdate(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := withLock(r.db.WithContext(ctx)).Where("contract_id = ?", contractID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetByProjectID(ctx context.Context, projectID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) List(ctx context.Context, status contractDomain.Status) ([]contractDomain.Contract, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []contractDomain.Contract
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
