package checks

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"loadscreen-export/core/storage"
	"loadscreen-export/feature/loadingscreen/records"

	"go.uber.org/zap"
)

// CheckPublished returns the names (relative to the output directory) that
// have no object in the bucket.
func CheckPublished(ctx context.Context, client storage.Client, cfg storage.Config, names []string) ([]string, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", cfg.Bucket)
	}

	keys, err := storage.ListKeys(ctx, client, cfg.Bucket, cfg.Prefix)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, name := range names {
		if _, ok := keys[cfg.ObjectKey(name)]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing, nil
}

// FixPublished uploads the missing names from outDir.
func FixPublished(ctx context.Context, pub *records.Publisher, outDir string, logger *zap.Logger, missing []string) error {
	for _, name := range missing {
		if err := pub.PublishFile(ctx, filepath.Join(outDir, name), name); err != nil {
			logger.Error("Failed to publish file", zap.String("name", name), zap.Error(err))
			return err
		}
		logger.Info("Published missing file", zap.String("name", name))
	}
	return nil
}
