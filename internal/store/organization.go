package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"workstack.io/tracker/core/db"
	"workstack.io/tracker/internal/model"
)

type organizationStore struct {
	conn db.DBTX
}

const organizationColumns = "id, name, slug, contact_email, created_at, updated_at"

func scanOrganization(row pgx.Row) (*model.Organization, error) {
	var org model.Organization
	err := row.Scan(&org.ID, &org.Name, &org.Slug, &org.ContactEmail, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+organizationColumns+" FROM organizations WHERE id = $1", id)
	return scanOrganization(row)
}

func (s *organizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+organizationColumns+" FROM organizations WHERE slug = $1", slug)
	return scanOrganization(row)
}

func (s *organizationStore) List(ctx context.Context) ([]model.Organization, error) {
	rows, err := s.conn.Query(ctx,
		"SELECT "+organizationColumns+" FROM organizations ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := []model.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, *org)
	}
	return orgs, rows.Err()
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row := s.conn.QueryRow(ctx, `
		INSERT INTO organizations (id, name, slug, contact_email)
		VALUES ($1, $2, $3, $4)
		RETURNING `+organizationColumns,
		org.ID, org.Name, org.Slug, org.ContactEmail)

	created, err := scanOrganization(row)
	if err != nil {
		return mapWriteError(err)
	}
	*org = *created
	return nil
}

func (s *organizationStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.conn.Exec(ctx, "DELETE FROM organizations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
