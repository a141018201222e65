package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, name string) (domain.Project, error)
	GetByID(ctx context.Context, id uint64) (domain.Project, error)
	Update(ctx context.Context, project domain.Project) error
	Delete(ctx context.Context, id uint64) error
	// List returns all projects, newest first.
	List(ctx context.Context) ([]domain.Project, error)
	Count(ctx context.Context) (int64, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id uint64) (domain.Project, error)
	CreateProject(ctx context.Context, name string) (domain.Project, error)
	RenameProject(ctx context.Context, id uint64, name string) (domain.Project, error)
	DeleteProject(ctx context.Context, id uint64) error
}
