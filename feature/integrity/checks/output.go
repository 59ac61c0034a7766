package checks

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// CheckOutput returns the directories in dirs that do not exist.
// A path that exists but is not a directory is an error.
func CheckOutput(dirs []string) ([]string, error) {
	var missing []string
	for _, dir := range dirs {
		st, err := os.Stat(dir)
		if os.IsNotExist(err) {
			missing = append(missing, dir)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
		}
		if !st.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dir)
		}
	}
	return missing, nil
}

// FixOutput creates the missing directories.
func FixOutput(logger *zap.Logger, missing []string) error {
	for _, dir := range missing {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("Failed to create directory", zap.String("dir", dir), zap.Error(err))
			return err
		}
		logger.Info("Created missing directory", zap.String("dir", dir))
	}
	return nil
}
