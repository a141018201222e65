package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64 `db:"id"`
	ProjectID   uint64 `db:"project_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Priority    int    `db:"priority"`
	Completed   bool   `db:"completed"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tasks (project_id, title, description, priority, completed) VALUES (?, ?, ?, ?, ?)",
		task.ProjectID, task.Title, task.Description, task.Priority, task.Completed,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	task.ID = uint64(id)
	return task, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, project_id, title, description, priority, completed FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	return domain.Task(row), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET title = ?, description = ?, priority = ?, completed = ? WHERE id = ?",
		task.Title, task.Description, task.Priority, task.Completed, task.ID,
	)
	if err != nil {
		return err
	}

	return requireRowsAffected(res, domain.ErrTaskNotFound)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	return requireRowsAffected(res, domain.ErrTaskNotFound)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, project_id, title, description, priority, completed FROM tasks WHERE project_id = ? ORDER BY priority, id",
		projectID,
	)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, domain.Task(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks"); err != nil {
		return 0, err
	}

	return count, nil
}
