// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens either MySQL or SQLite depending on the configured
// driver. SQLite is used for single-machine setups and for tests
// (Name ":memory:").
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table layout so integrity
// checks can report a records table that drifted from the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "loading_screen_records", []string{"crc32", "size"})
package database
