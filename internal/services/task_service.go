package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"taskboard.com/taskboard/internal/constants"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/visibility"
)

const maxTaskTitleLength = 100

const (
	msgInvalidStatus       = "Status is not included in the list"
	msgInvalidAssigneeType = "Assignee type is not included in the list"
	msgAssigneeMissing     = "Assignee must exist"
)

type TaskService struct {
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	users    *repository.UserRepository
	logger   *zap.Logger
}

type NewTask struct {
	ProjectID    string
	Title        string
	Description  string
	Status       *string
	AssigneeType *string
	AssigneeID   *string
}

// TaskChanges holds a partial update. Nil fields are left untouched; an
// empty AssigneeID clears the assignee.
type TaskChanges struct {
	Title        *string
	Description  *string
	Status       *string
	AssigneeType *string
	AssigneeID   *string
}

func NewTaskService(
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		users:    users,
		logger:   logger,
	}
}

func (s *TaskService) Create(ctx context.Context, in NewTask) (*model.Task, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.FindManaged(ctx, visibility.For(user), in.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      constants.StatusTodo,
		ProjectID:   project.ID,
	}

	v := &apperrors.ValidationError{}
	validateTitle(v, task.Title)
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		applyStatus(v, task, *in.Status)
	}
	if err := s.applyAssignee(ctx, v, task, in.AssigneeType, in.AssigneeID); err != nil {
		return nil, err
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID),
		zap.String("project_id", task.ProjectID),
		zap.String("status", string(task.Status)),
	)
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id string, in TaskChanges) (*model.Task, error) {
	task, err := s.visible(ctx, id)
	if err != nil {
		return nil, err
	}

	v := &apperrors.ValidationError{}
	if in.Title != nil {
		task.Title = *in.Title
		validateTitle(v, task.Title)
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		applyStatus(v, task, *in.Status)
	}
	if err := s.applyAssignee(ctx, v, task, in.AssigneeType, in.AssigneeID); err != nil {
		return nil, err
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	task, err := s.visible(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Info("task deleted", zap.String("task_id", task.ID))
	return nil
}

// List returns the caller's visible tasks, optionally narrowed to one project.
func (s *TaskService) List(ctx context.Context, projectID string) ([]model.Task, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListVisible(ctx, visibility.For(user), repository.TaskFilter{ProjectID: projectID})
}

// Get returns nil for tasks that do not exist or are not visible.
func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.visible(ctx, id)
	if errors.Is(err, apperrors.ErrTaskNotFound) {
		return nil, nil
	}
	return task, err
}

// Assignee loads the user a task is delegated to. A dangling reference
// yields nil.
func (s *TaskService) Assignee(ctx context.Context, task *model.Task) (*model.User, error) {
	a, ok := task.Assignee()
	if !ok {
		return nil, nil
	}
	switch a.Kind {
	case constants.AssigneeUser:
		user, err := s.users.FindByID(ctx, a.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return user, err
	default:
		return nil, nil
	}
}

func (s *TaskService) Project(ctx context.Context, task *model.Task) (*model.Project, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindVisible(ctx, visibility.For(user), task.ProjectID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return project, err
}

func (s *TaskService) visible(ctx context.Context, id string) (*model.Task, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.FindVisible(ctx, visibility.For(user), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

// applyAssignee resolves the requested assignee onto task. Both arguments
// nil means no change.
func (s *TaskService) applyAssignee(ctx context.Context, v *apperrors.ValidationError, task *model.Task, kind, id *string) error {
	if kind == nil && id == nil {
		return nil
	}
	if id != nil && *id == "" {
		task.SetAssignee(nil)
		return nil
	}
	if id == nil {
		v.Add(msgAssigneeMissing)
		return nil
	}

	assigneeKind := constants.AssigneeUser
	if kind != nil && *kind != "" {
		parsed, err := constants.ParseAssigneeKind(*kind)
		if err != nil {
			v.Add(msgInvalidAssigneeType)
			return nil
		}
		assigneeKind = parsed
	}

	switch assigneeKind {
	case constants.AssigneeUser:
		user, err := s.users.FindByID(ctx, *id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				v.Add(msgAssigneeMissing)
				return nil
			}
			return fmt.Errorf("find assignee: %w", err)
		}
		a := model.UserAssignee(user.ID)
		task.SetAssignee(&a)
	}
	return nil
}

func applyStatus(v *apperrors.ValidationError, task *model.Task, raw string) {
	status, err := constants.ParseTaskStatus(raw)
	if err != nil {
		v.Add(msgInvalidStatus)
		return
	}
	task.Status = status
}

func validateTitle(v *apperrors.ValidationError, title string) {
	if requirePresent(v, "Title", title) {
		requireMaxLength(v, "Title", title, maxTaskTitleLength)
	}
}
