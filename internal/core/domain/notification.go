package domain

import "time"

// Notification is an append-only log entry recording a mutating action.
// It is not linked back to the project or task that triggered it.
type Notification struct {
	ID        uint64
	Message   string
	Read      bool
	CreatedAt time.Time
}

// Dashboard aggregates the live counters and the notification log shown on
// the landing page. Counts are computed at read time, never cached.
type Dashboard struct {
	TotalProjects      int64
	TotalTasks         int64
	TotalNotifications int64
	Notifications      []Notification
}
