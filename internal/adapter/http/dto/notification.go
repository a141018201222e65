package dto

type NotificationItem struct {
	ID        uint64 `json:"id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

type DashboardPage struct {
	TotalProjects      int64              `json:"total_projects"`
	TotalTasks         int64              `json:"total_tasks"`
	TotalNotifications int64              `json:"total_notifications"`
	Notifications      []NotificationItem `json:"notifications"`
}
