package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id uint64) error
	// ListByProject returns the project's tasks ordered by ascending priority.
	ListByProject(ctx context.Context, projectID uint64) ([]domain.Task, error)
	Count(ctx context.Context) (int64, error)
}

type TaskService interface {
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	// ListProjectTasks resolves the parent project and its tasks ordered by
	// ascending priority.
	ListProjectTasks(ctx context.Context, projectID uint64) (domain.Project, []domain.Task, error)
	// CreateTask persists a task whose ProjectID has already been attached by
	// the caller.
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	// DeleteTask removes the task and returns it so callers can still address
	// its parent project.
	DeleteTask(ctx context.Context, id uint64) (domain.Task, error)
	// SetTaskPriority stores the new priority. A negative priority is a
	// silent no-op: the stored value is kept and no notification is recorded.
	SetTaskPriority(ctx context.Context, id uint64, priority int) (domain.Task, error)
}
