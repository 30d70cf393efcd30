package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"workstack.io/tracker/core/db"
)

type Stores struct {
	conn db.DBTX
}

// NewStores builds the store set over a connection or transaction.
func NewStores(conn db.DBTX) *Stores {
	return &Stores{conn: conn}
}

func (s *Stores) Organizations() OrganizationStore {
	return &organizationStore{conn: s.conn}
}

func (s *Stores) Projects() ProjectStore {
	return &projectStore{conn: s.conn}
}

func (s *Stores) Tasks() TaskStore {
	return &taskStore{conn: s.conn}
}

func (s *Stores) Comments() CommentStore {
	return &commentStore{conn: s.conn}
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapWriteError converts constraint violations into store sentinels:
// unique violations become ErrConflict, foreign-key violations on insert
// become ErrNotFound (the referenced parent is gone).
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrConflict
		case pgForeignKeyViolation:
			return ErrNotFound
		}
	}
	return err
}
