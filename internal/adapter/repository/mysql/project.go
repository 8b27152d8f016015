package mysql

import (
	"context"

	projectDomain "freelance-engagement-backend/internal/domain/project"

	"gorm.io/gorm"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) Create(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) Save(ctx context.Context, p *projectDomain.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) GetByProjectIDForUpdate(ctx context.Context, projectID string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	res := withLock(r.db.WithContext(ctx)).Where("project_id = ?", projectID).First(&out)
	return &out, res.Error
}

func (r *ProjectRepository) List(ctx context.Context, status projectDomain.Status) ([]projectDomain.Project, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []projectDomain.Project
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ProjectRepository) ListByClient(ctx context.Context, clientID string) ([]projectDomain.Project, error) {
	var out []projectDomain.Project
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ProjectRepository) AddAdvance(ctx context.Context, a *projectDomain.Advance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ProjectRepository) ListAdvances(ctx context.Context, projectID string) ([]projectDomain.Advance, error) {
	var out []projectDomain.Advance
	res := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at ASC, id ASC").Find(&out)
	return out, res.Error
}
