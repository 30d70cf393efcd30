package service

import (
	"context"

	"workstack.io/tracker/core/db"
	"workstack.io/tracker/internal/store"
)

// StoreProvider exposes the stores bound to a transactional operation.
type StoreProvider interface {
	Organizations() store.OrganizationStore
	Projects() store.ProjectStore
	Tasks() store.TaskStore
	Comments() store.CommentStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(database *db.DB) TxRunner {
	return &dbTxRunner{db: database}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(tx db.DBTX) error {
		return fn(store.NewStores(tx))
	})
}
