package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/visibility"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(project).Error
}

// ListVisible returns the projects the policy can read, newest first.
func (r *ProjectRepository) ListVisible(ctx context.Context, policy visibility.Policy) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Scopes(policy.Projects).
		Order("projects.created_at desc").Order("projects.id desc").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindVisible(ctx context.Context, policy visibility.Policy, id string) (*model.Project, error) {
	return r.findScoped(ctx, policy.Projects, id)
}

func (r *ProjectRepository) FindManaged(ctx context.Context, policy visibility.Policy, id string) (*model.Project, error) {
	return r.findScoped(ctx, policy.ManagedProjects, id)
}

func (r *ProjectRepository) CountVisible(ctx context.Context, policy visibility.Policy) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).Scopes(policy.Projects).Count(&count).Error
	return count, err
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Model(project).
		Select("name", "description", "updated_at").
		Updates(project).Error
}

// Delete removes the project; its tasks are removed by the foreign key
// cascade.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id).Error
}

func (r *ProjectRepository) findScoped(ctx context.Context, scope func(*gorm.DB) *gorm.DB, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Scopes(scope).Where("projects.id = ?", id).First(&project).Error
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}
