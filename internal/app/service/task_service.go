package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	tasks         ports.TaskRepository
	projects      ports.ProjectRepository
	notifications ports.NotificationRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, notifications ports.NotificationRepository) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, notifications: notifications}
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) ListProjectTasks(ctx context.Context, projectID uint64) (domain.Project, []domain.Task, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return domain.Project{}, nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return domain.Project{}, nil, err
	}

	return project, tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	// The parent is attached by the caller from the URL, not by the form;
	// resolve it here both to 404 on a dead link and for the log message.
	project, err := s.projects.GetByID(ctx, task.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}

	s.notify(ctx, fmt.Sprintf("New task added: %s to project %s", created.Title, project.Name))
	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	s.notify(ctx, fmt.Sprintf("Task edited: %s", task.Title))
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return domain.Task{}, err
	}

	s.notify(ctx, fmt.Sprintf("Task deleted: %s", task.Title))
	return task, nil
}

func (s *TaskService) SetTaskPriority(ctx context.Context, id uint64, priority int) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	// Negative priorities are silently ignored: the caller still gets the
	// task back (and redirects), but nothing is written or logged.
	if priority < 0 {
		return task, nil
	}

	task.Priority = priority
	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	s.notify(ctx, fmt.Sprintf("Task priority updated: %s to %d", task.Title, priority))
	return task, nil
}

func (s *TaskService) notify(ctx context.Context, message string) {
	if _, err := s.notifications.Create(ctx, message); err != nil {
		zap.L().Error("failed to record notification", zap.String("message", message), zap.Error(err))
	}
}
