package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, message string) (domain.Notification, error)
	// MarkRead flips read to true. Marking an already-read notification is a
	// no-op, not an error.
	MarkRead(ctx context.Context, id uint64) error
	// List returns the full log, newest first.
	List(ctx context.Context) ([]domain.Notification, error)
	Count(ctx context.Context) (int64, error)
}

type NotificationService interface {
	MarkNotificationRead(ctx context.Context, id uint64) error
}

type DashboardService interface {
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}
