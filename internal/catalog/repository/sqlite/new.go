// Package sqlite implements the catalog repository on the shared SQLite
// database opened by internal/storage.
package sqlite

import (
	"database/sql"

	"storefront-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed product repository.
func New(db *sql.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}
