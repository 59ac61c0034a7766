// Package records persists the export database, the list of images already
// written together with the archive identity (CRC32, size, path) they were
// produced from.
//
// Two Store implementations exist: FileStore keeps the indented
// loadingscreens-db.json next to the images, DBStore keeps one row per record
// in MySQL or SQLite through GORM. Both are append-only.
//
// The package also writes the public "basic" document (loadingscreens.json)
// and publishes images and documents to an S3 bucket.
package records
