package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"taskboard.com/taskboard/internal/constants"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/visibility"
)

const maxProjectNameLength = 100

// ProjectCreation selects who may create projects.
type ProjectCreation int

const (
	AdminsCreateProjects ProjectCreation = iota
	AnyoneCreatesProjects
)

type ProjectService struct {
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
	users    *repository.UserRepository
	creation ProjectCreation
	logger   *zap.Logger
}

type NewProject struct {
	Name        string
	Description string
}

type ProjectChanges struct {
	Name        *string
	Description *string
}

// Board groups a project's visible tasks by status column.
type Board struct {
	Todo       []model.Task
	InProgress []model.Task
	Done       []model.Task
}

func NewProjectService(
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
	users *repository.UserRepository,
	creation ProjectCreation,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projects: projects,
		tasks:    tasks,
		users:    users,
		creation: creation,
		logger:   logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, in NewProject) (*model.Project, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	if s.creation == AdminsCreateProjects && !IsAdmin(user) {
		return nil, apperrors.ErrForbidden
	}

	if err := validateProject(in.Name, in.Description); err != nil {
		return nil, err
	}

	project := &model.Project{
		Name:        in.Name,
		Description: in.Description,
		UserID:      user.ID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info("project created", zap.String("project_id", project.ID), zap.String("user_id", user.ID))
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in ProjectChanges) (*model.Project, error) {
	project, err := s.managed(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if err := validateProject(project.Name, project.Description); err != nil {
		return nil, err
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete removes a project the caller owns along with all of its tasks.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	project, err := s.managed(ctx, id)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, project.ID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.logger.Info("project deleted", zap.String("project_id", project.ID))
	return nil
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return s.projects.ListVisible(ctx, visibility.For(user))
}

// Get returns nil for projects that do not exist or are not visible.
func (s *ProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindVisible(ctx, visibility.For(user), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return project, err
}

// TaskCount is the number of the project's tasks the caller can see.
func (s *ProjectService) TaskCount(ctx context.Context, project *model.Project) (int64, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return 0, err
	}
	return s.tasks.CountVisible(ctx, visibility.For(user), repository.TaskFilter{ProjectID: project.ID})
}

func (s *ProjectService) Owner(ctx context.Context, project *model.Project) (*model.User, error) {
	owner, err := s.users.FindByID(ctx, project.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return owner, err
}

func (s *ProjectService) Board(ctx context.Context, project *model.Project) (*Board, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListVisible(ctx, visibility.For(user), repository.TaskFilter{ProjectID: project.ID})
	if err != nil {
		return nil, err
	}

	board := &Board{
		Todo:       []model.Task{},
		InProgress: []model.Task{},
		Done:       []model.Task{},
	}
	for _, task := range tasks {
		switch task.Status {
		case constants.StatusTodo:
			board.Todo = append(board.Todo, task)
		case constants.StatusInProgress:
			board.InProgress = append(board.InProgress, task)
		case constants.StatusDone:
			board.Done = append(board.Done, task)
		}
	}
	return board, nil
}

func (s *ProjectService) managed(ctx context.Context, id string) (*model.Project, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindManaged(ctx, visibility.For(user), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

func validateProject(name, description string) error {
	v := &apperrors.ValidationError{}
	if requirePresent(v, "Name", name) {
		requireMaxLength(v, "Name", name, maxProjectNameLength)
	}
	requirePresent(v, "Description", description)
	return v.Err()
}
