package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, name string) (domain.Project, error) {
	res, err := r.db.ExecContext(ctx, "INSERT INTO projects (name) VALUES (?)", name)
	if err != nil {
		return domain.Project{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Project{}, err
	}

	return domain.Project{ID: uint64(id), Name: name}, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (domain.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row, "SELECT id, name FROM projects WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}

	return domain.Project(row), nil
}

func (r *ProjectRepository) Update(ctx context.Context, project domain.Project) error {
	res, err := r.db.ExecContext(ctx, "UPDATE projects SET name = ? WHERE id = ?", project.Name, project.ID)
	if err != nil {
		return err
	}

	return requireRowsAffected(res, domain.ErrProjectNotFound)
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	// Tasks owned by the project go with it via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	return requireRowsAffected(res, domain.ErrProjectNotFound)
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name FROM projects ORDER BY id DESC"); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, domain.Project(row))
	}

	return projects, nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM projects"); err != nil {
		return 0, err
	}

	return count, nil
}

func requireRowsAffected(res sql.Result, missing error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return missing
	}
	return nil
}
