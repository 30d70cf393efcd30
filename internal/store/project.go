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

type projectStore struct {
	conn db.DBTX
}

const projectColumns = "id, organization_id, name, description, status, due_date, created_at, updated_at"

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Description, &p.Status,
		&p.DueDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanProjects(rows pgx.Rows) ([]model.Project, error) {
	defer rows.Close()
	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *projectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1", id)
	return scanProject(row)
}

func (s *projectStore) GetForUpdate(ctx context.Context, id int64) (*model.Project, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1 FOR UPDATE", id)
	return scanProject(row)
}

func (s *projectStore) GetByOrgAndName(ctx context.Context, orgID int64, name string) (*model.Project, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE organization_id = $1 AND name = $2",
		orgID, name)
	return scanProject(row)
}

func (s *projectStore) List(ctx context.Context) ([]model.Project, error) {
	rows, err := s.conn.Query(ctx,
		"SELECT "+projectColumns+" FROM projects ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return scanProjects(rows)
}

func (s *projectStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Project, error) {
	rows, err := s.conn.Query(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE organization_id = $1 ORDER BY created_at DESC",
		orgID)
	if err != nil {
		return nil, err
	}
	return scanProjects(rows)
}

func (s *projectStore) Search(ctx context.Context, filter ProjectFilter) ([]model.Project, error) {
	query := "SELECT p." + strings.ReplaceAll(projectColumns, ", ", ", p.") + " FROM projects p"
	conds := []string{}
	args := []any{}

	if filter.OrganizationSlug != nil {
		query += " JOIN organizations o ON o.id = p.organization_id"
		args = append(args, *filter.OrganizationSlug)
		conds = append(conds, fmt.Sprintf("o.slug = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if filter.CreatedAfter != nil {
		args = append(args, *filter.CreatedAfter)
		conds = append(conds, fmt.Sprintf("p.created_at >= $%d", len(args)))
	}
	if filter.CreatedBefore != nil {
		args = append(args, *filter.CreatedBefore)
		conds = append(conds, fmt.Sprintf("p.created_at <= $%d", len(args)))
	}
	if filter.Query != nil {
		args = append(args, "%"+*filter.Query+"%")
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanProjects(rows)
}

func (s *projectStore) CountByOrganization(ctx context.Context, orgID int64) (int, error) {
	var count int
	err := s.conn.QueryRow(ctx,
		"SELECT COUNT(*) FROM projects WHERE organization_id = $1", orgID).Scan(&count)
	return count, err
}

func (s *projectStore) Create(ctx context.Context, project *model.Project) error {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO projects (id, organization_id, name, description, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+projectColumns,
		project.ID, project.OrganizationID, project.Name, project.Description,
		project.Status, project.DueDate)

	created, err := scanProject(row)
	if err != nil {
		return mapWriteError(err)
	}
	*project = *created
	return nil
}

func (s *projectStore) Update(ctx context.Context, project *model.Project) error {
	row := s.conn.QueryRow(ctx, `
		UPDATE projects
		SET name = $2, description = $3, status = $4, due_date = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+projectColumns,
		project.ID, project.Name, project.Description, project.Status, project.DueDate)

	updated, err := scanProject(row)
	if err != nil {
		return mapWriteError(err)
	}
	*project = *updated
	return nil
}

func (s *projectStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.conn.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
