package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"workstack.io/tracker/core/db"
	"workstack.io/tracker/internal/model"
)

type taskStore struct {
	conn db.DBTX
}

const taskColumns = "id, project_id, title, description, status, assignee_email, due_date, created_at, updated_at"

func scanTask(row pgx.Row) (*model.Task, error) {
	var t model.Task
	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status,
		&t.AssigneeEmail, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func scanTasks(rows pgx.Rows) ([]model.Task, error) {
	defer rows.Close()
	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (s *taskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	return scanTask(row)
}

func (s *taskStore) GetForUpdate(ctx context.Context, id int64) (*model.Task, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1 FOR UPDATE", id)
	return scanTask(row)
}

func (s *taskStore) GetByProjectAndTitle(ctx context.Context, projectID int64, title string) (*model.Task, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE project_id = $1 AND title = $2",
		projectID, title)
	return scanTask(row)
}

func (s *taskStore) List(ctx context.Context) ([]model.Task, error) {
	rows, err := s.conn.Query(ctx,
		"SELECT "+taskColumns+" FROM tasks ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

func (s *taskStore) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	rows, err := s.conn.Query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE project_id = $1 ORDER BY created_at DESC",
		projectID)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

func (s *taskStore) Search(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	query := "SELECT t." + strings.ReplaceAll(taskColumns, ", ", ", t.") + " FROM tasks t"
	conds := []string{}
	args := []any{}

	if filter.OrganizationSlug != nil {
		query += " JOIN projects p ON p.id = t.project_id JOIN organizations o ON o.id = p.organization_id"
		args = append(args, *filter.OrganizationSlug)
		conds = append(conds, fmt.Sprintf("o.slug = $%d", len(args)))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		conds = append(conds, fmt.Sprintf("t.project_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filter.CreatedAfter != nil {
		args = append(args, *filter.CreatedAfter)
		conds = append(conds, fmt.Sprintf("t.created_at >= $%d", len(args)))
	}
	if filter.CreatedBefore != nil {
		args = append(args, *filter.CreatedBefore)
		conds = append(conds, fmt.Sprintf("t.created_at <= $%d", len(args)))
	}
	if filter.Query != nil {
		args = append(args, "%"+*filter.Query+"%")
		conds = append(conds, fmt.Sprintf("(t.title ILIKE $%d OR t.description ILIKE $%d)", len(args), len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

func (s *taskStore) CountByOrganization(ctx context.Context, orgID int64) (int, error) {
	var count int
	err := s.conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE p.organization_id = $1`, orgID).Scan(&count)
	return count, err
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO tasks (id, project_id, title, description, status, assignee_email, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+taskColumns,
		task.ID, task.ProjectID, task.Title, task.Description, task.Status,
		task.AssigneeEmail, task.DueDate)

	created, err := scanTask(row)
	if err != nil {
		return mapWriteError(err)
	}
	*task = *created
	return nil
}

func (s *taskStore) Update(ctx context.Context, task *model.Task) error {
	row := s.conn.QueryRow(ctx, `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, assignee_email = $5, due_date = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+taskColumns,
		task.ID, task.Title, task.Description, task.Status, task.AssigneeEmail, task.DueDate)

	updated, err := scanTask(row)
	if err != nil {
		return mapWriteError(err)
	}
	*task = *updated
	return nil
}

func (s *taskStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.conn.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
