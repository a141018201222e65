package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID        uint64    `db:"id"`
	Message   string    `db:"message"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, message string) (domain.Notification, error) {
	createdAt := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO notifications (message, read, created_at) VALUES (?, 0, ?)",
		message, createdAt,
	)
	if err != nil {
		return domain.Notification{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Notification{}, err
	}

	return domain.Notification{ID: uint64(id), Message: message, CreatedAt: createdAt}, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE notifications SET read = 1 WHERE id = ?", id)
	if err != nil {
		return err
	}

	// The update matches whether or not the notification was already read,
	// so re-marking stays idempotent.
	return requireRowsAffected(res, domain.ErrNotificationNotFound)
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	var rows []notificationRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, message, read, created_at FROM notifications ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, domain.Notification(row))
	}

	return notifications, nil
}

func (r *NotificationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM notifications"); err != nil {
		return 0, err
	}

	return count, nil
}
