// Package config provides configuration management for the loading screen exporter.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Command-line flags override the loaded values.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Archive: game directory or VPK path and the entries to read (ARCHIVE_PATH, ARCHIVE_ASSET_DIR)
//   - Export: output directory, image size and format, concurrency (EXPORT_OUT_DIR, EXPORT_CONCURRENCY)
//   - Records: record store driver and file names (RECORDS_DRIVER)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings for publishing
//   - Server: HTTP server settings (port, API key, export schedule)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Export.OutDir)
package config
