package records

import (
	"context"
	"fmt"
	"path/filepath"

	"loadscreen-export/core/reconcile"

	"gorm.io/gorm"
)

// Store loads and saves the record set.
type Store interface {
	// Load returns every record in insertion order. A store that was never
	// written returns no records and no error.
	Load(ctx context.Context) ([]reconcile.Record, error)
	// Save persists records. Records already stored are kept as they are.
	Save(ctx context.Context, records []reconcile.Record) error
	// Location describes where the records live, for logs.
	Location() string
}

// DBOpener opens the database lazily; only database drivers call it.
type DBOpener func() (*gorm.DB, error)

// New builds the store selected by cfg.Driver.
func New(cfg Config, outDir string, open DBOpener) (Store, error) {
	switch cfg.Driver {
	case DriverJSON, "":
		return NewFileStore(filepath.Join(outDir, cfg.DBFile)), nil
	case DriverMySQL, DriverSQLite:
		db, err := open()
		if err != nil {
			return nil, fmt.Errorf("records database: %w", err)
		}
		return NewDBStore(db)
	default:
		return nil, fmt.Errorf("unknown records driver %q", cfg.Driver)
	}
}
