package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type ProjectService struct {
	projects      ports.ProjectRepository
	notifications ports.NotificationRepository
}

var _ ports.ProjectService = (*ProjectService)(nil)

func NewProjectService(projects ports.ProjectRepository, notifications ports.NotificationRepository) *ProjectService {
	return &ProjectService{projects: projects, notifications: notifications}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id uint64) (domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) CreateProject(ctx context.Context, name string) (domain.Project, error) {
	project, err := s.projects.Create(ctx, name)
	if err != nil {
		return domain.Project{}, err
	}

	s.notify(ctx, fmt.Sprintf("New project added: %s", project.Name))
	return project, nil
}

func (s *ProjectService) RenameProject(ctx context.Context, id uint64, name string) (domain.Project, error) {
	project := domain.Project{ID: id, Name: name}
	if err := s.projects.Update(ctx, project); err != nil {
		return domain.Project{}, err
	}

	s.notify(ctx, fmt.Sprintf("Project edited: %s", project.Name))
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint64) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Tasks under the project are removed by the store's cascade.
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, fmt.Sprintf("Project deleted: %s", project.Name))
	return nil
}

// notify appends to the notification log after the entity write has already
// succeeded. The two writes are not atomic; a failure here loses the log
// entry, not the mutation.
func (s *ProjectService) notify(ctx context.Context, message string) {
	if _, err := s.notifications.Create(ctx, message); err != nil {
		zap.L().Error("failed to record notification", zap.String("message", message), zap.Error(err))
	}
}
