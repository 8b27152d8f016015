package mysql

import (
	"context"

	deliverableDomain "freelance-engagement-backend/internal/domain/deliverable"

	"gorm.io/gorm"
)

type DeliverableRepository struct{ db *gorm.DB }

func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

func (r *DeliverableRepository) Create(ctx context.Context, d *deliverableDomain.Deliverable) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DeliverableRepository) Save(ctx context.Context, d *deliverableDomain.Deliverable) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DeliverableRepository) GetByDeliverableID(ctx context.Context, deliverableID string) (*deliverableDomain.Deliverable, error) {
	var out deliverableDomain.Deliverable
	res := r.db.WithContext(ctx).Where("deliverable_id = ?", deliverableID).First(&out)
	return &out, res.Error
}

func (r *DeliverableRepository) GetByDeliverableIDForUpdate(ctx context.Context, deliverableID string) (*deliverableDomain.Deliverable, error) {
	var out deliverableDomain.Deliverable
	res := withLock(r.db.WithContext(ctx)).Where("deliverable_id = ?", deliverableID).First(&out)
	return &out, res.Error
}

func (r *DeliverableRepository) ListByProject(ctx context.Context, projectID string) ([]deliverableDomain.Deliverable, error) {
	var out []deliverableDomain.Deliverable
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("order_index ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *DeliverableRepository) MaxOrderIndex(ctx context.Context, projectID string) (int, error) {
	var max *int
	res := r.db.WithContext(ctx).Model(&deliverableDomain.Deliverable{}).
		Where("project_id = ?", projectID).
		Select("MAX(order_index)").
		Scan(&max)
	if res.Error != nil {
		return 0, res.Error
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
