package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type NotificationService struct {
	notifications ports.NotificationRepository
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(notifications ports.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// MarkNotificationRead flips the read flag. There is no mark-unread; the
// transition is one-way and re-marking is a no-op. This action does not log
// a notification of its own.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, id uint64) error {
	return s.notifications.MarkRead(ctx, id)
}

type DashboardService struct {
	projects      ports.ProjectRepository
	tasks         ports.TaskRepository
	notifications ports.NotificationRepository
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(projects ports.ProjectRepository, tasks ports.TaskRepository, notifications ports.NotificationRepository) *DashboardService {
	return &DashboardService{projects: projects, tasks: tasks, notifications: notifications}
}

// Dashboard computes the totals live from the store on every call rather
// than maintaining running counters.
func (s *DashboardService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	totalProjects, err := s.projects.Count(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	totalTasks, err := s.tasks.Count(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	totalNotifications, err := s.notifications.Count(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	notifications, err := s.notifications.List(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.Dashboard{
		TotalProjects:      totalProjects,
		TotalTasks:         totalTasks,
		TotalNotifications: totalNotifications,
		Notifications:      notifications,
	}, nil
}
