// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so exported images
// and record documents can be published to AWS S3 or a self-hosted MinIO
// instance, and so tests can use the mock in core/storage/mocks.
//
// # Helpers
//
//   - EnsureBucket: creates the target bucket on first publish.
//   - ListKeys: lists every object under a prefix, used by integrity checks.
//   - Config.ObjectKey: applies the configured key prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
