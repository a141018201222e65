package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToDashboardPage(dashboard domain.Dashboard) dto.DashboardPage {
	return dto.DashboardPage{
		TotalProjects:      dashboard.TotalProjects,
		TotalTasks:         dashboard.TotalTasks,
		TotalNotifications: dashboard.TotalNotifications,
		Notifications:      ToNotificationItems(dashboard.Notifications),
	}
}

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, ToNotificationItem(notification))
	}
	return items
}

func ToNotificationItem(notification domain.Notification) dto.NotificationItem {
	return dto.NotificationItem{
		ID:        notification.ID,
		Message:   notification.Message,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
}
