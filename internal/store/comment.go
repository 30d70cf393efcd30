package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"workstack.io/tracker/core/db"
	"workstack.io/tracker/internal/model"
)

type commentStore struct {
	conn db.DBTX
}

const commentColumns = "id, task_id, content, author_email, created_at, updated_at"

func scanComment(row pgx.Row) (*model.TaskComment, error) {
	var c model.TaskComment
	err := row.Scan(&c.ID, &c.TaskID, &c.Content, &c.AuthorEmail, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func scanComments(rows pgx.Rows) ([]model.TaskComment, error) {
	defer rows.Close()
	comments := []model.TaskComment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (s *commentStore) GetByID(ctx context.Context, id int64) (*model.TaskComment, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+commentColumns+" FROM task_comments WHERE id = $1", id)
	return scanComment(row)
}

func (s *commentStore) GetByNaturalKey(ctx context.Context, taskID int64, authorEmail, content string) (*model.TaskComment, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+commentColumns+" FROM task_comments WHERE task_id = $1 AND author_email = $2 AND content = $3",
		taskID, authorEmail, content)
	return scanComment(row)
}

func (s *commentStore) List(ctx context.Context) ([]model.TaskComment, error) {
	rows, err := s.conn.Query(ctx,
		"SELECT "+commentColumns+" FROM task_comments ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return scanComments(rows)
}

func (s *commentStore) ListByTask(ctx context.Context, taskID int64) ([]model.TaskComment, error) {
	rows, err := s.conn.Query(ctx,
		"SELECT "+commentColumns+" FROM task_comments WHERE task_id = $1 ORDER BY created_at DESC",
		taskID)
	if err != nil {
		return nil, err
	}
	return scanComments(rows)
}

func (s *commentStore) CountByTask(ctx context.Context, taskID int64) (int, error) {
	var count int
	err := s.conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM task_comments WHERE task_id = $1", taskID).Scan(&count)
	return count, err
}

func (s *commentStore) Create(ctx context.Context, comment *model.TaskComment) error {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO task_comments (id, task_id, content, author_email)
		VALUES ($1, $2, $3, $4)
		RETURNING `+commentColumns,
		comment.ID, comment.TaskID, comment.Content, comment.AuthorEmail)

	created, err := scanComment(row)
	if err != nil {
		return mapWriteError(err)
	}
	*comment = *created
	return nil
}
