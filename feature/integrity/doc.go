// Package integrity provides health checks for an export installation.
//
// Where the loadingscreen package decides what to export, this package
// validates that everything an export relies on, and everything it produced,
// is still in place.
//
// # Checks Provided
//
//   - Archive: The item document and at least one loading screen asset are present.
//   - Output: The output and image directories exist.
//   - Records: Every record's image file exists and no export key is stored twice.
//   - Database: The records table carries the columns of the records model (database drivers only).
//   - Storage: The record documents and every recorded image are published to the bucket (when storage is enabled).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/archive : Runs the archive check.
//   - GET /integrity/output : Runs the output check (supports ?fix=true).
//   - GET /integrity/records : Runs the records check.
//   - GET /integrity/database : Runs the schema check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
