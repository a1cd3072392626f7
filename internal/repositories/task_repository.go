package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard.com/taskboard/internal/constants"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/visibility"
)

type TaskRepository struct {
	db *gorm.DB
}

// TaskFilter narrows a visible task listing. Zero values do not filter.
type TaskFilter struct {
	ProjectID string
	Status    constants.TaskStatus
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = constants.StatusTodo
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindVisible(ctx context.Context, policy visibility.Policy, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Scopes(policy.Tasks).Where("tasks.id = ?", id).First(&task).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

// ListVisible returns the tasks the policy can read, newest first.
func (r *TaskRepository) ListVisible(ctx context.Context, policy visibility.Policy, filter TaskFilter) ([]model.Task, error) {
	var tasks []model.Task
	err := r.filtered(ctx, policy, filter).
		Order("tasks.created_at desc").Order("tasks.id desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountVisible(ctx context.Context, policy visibility.Policy, filter TaskFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, policy, filter).Count(&count).Error
	return count, err
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Model(task).
		Select("title", "description", "status", "assignee_type", "assignee_id", "updated_at").
		Updates(task).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}

func (r *TaskRepository) filtered(ctx context.Context, policy visibility.Policy, filter TaskFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Task{}).Scopes(policy.Tasks)
	if filter.ProjectID != "" {
		query = query.Where("tasks.project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("tasks.status = ?", string(filter.Status))
	}
	return query
}
