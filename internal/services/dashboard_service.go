package services

import (
	"context"

	"taskboard.com/taskboard/internal/constants"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/visibility"
)

// Dashboard summarizes what the viewer can see. Archived tasks count toward
// TotalTasks only.
type Dashboard struct {
	TotalProjects int64 `json:"totalProjects"`
	TotalTasks    int64 `json:"totalTasks"`
	Completed     int64 `json:"completed"`
	InProgress    int64 `json:"inProgress"`
	ToDo          int64 `json:"toDo"`
}

type DashboardService struct {
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
}

func NewDashboardService(projects *repository.ProjectRepository, tasks *repository.TaskRepository) *DashboardService {
	return &DashboardService{projects: projects, tasks: tasks}
}

func (s *DashboardService) Compute(ctx context.Context) (*Dashboard, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	policy := visibility.For(user)

	var d Dashboard
	if d.TotalProjects, err = s.projects.CountVisible(ctx, policy); err != nil {
		return nil, err
	}

	counters := []struct {
		dst    *int64
		status constants.TaskStatus
	}{
		{&d.TotalTasks, ""},
		{&d.Completed, constants.StatusDone},
		{&d.InProgress, constants.StatusInProgress},
		{&d.ToDo, constants.StatusTodo},
	}
	for _, c := range counters {
		n, err := s.tasks.CountVisible(ctx, policy, repository.TaskFilter{Status: c.status})
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return &d, nil
}
