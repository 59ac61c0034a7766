package checks

import (
	"errors"
	"fmt"

	"loadscreen-export/core/archive"
)

// ArchiveReport describes what the game archive offers.
type ArchiveReport struct {
	Status     string   `json:"status"` // "ok", "error"
	ItemsEntry string   `json:"items_entry"`
	ItemsFound bool     `json:"items_found"`
	Assets     int      `json:"assets"`
	Errors     []string `json:"errors"`
}

// CheckArchive verifies that src holds the item document and at least one
// asset matching the configured extension and selection.
func CheckArchive(src archive.Source, cfg archive.Config) (*ArchiveReport, error) {
	if src == nil {
		return nil, fmt.Errorf("archive is nil")
	}
	filter, err := cfg.AssetFilter()
	if err != nil {
		return nil, err
	}

	report := &ArchiveReport{
		Status:     "ok",
		ItemsEntry: cfg.ItemsEntry,
		Errors:     []string{},
	}

	if _, err := archive.Lookup(src, cfg.ItemsEntry); err != nil {
		if !errors.Is(err, archive.ErrEntryNotFound) {
			return nil, err
		}
		report.Status = "error"
		report.Errors = append(report.Errors, fmt.Sprintf("item document %s not found", cfg.ItemsEntry))
	} else {
		report.ItemsFound = true
	}

	report.Assets = len(archive.Fetch(src, cfg.AssetExtension, filter))
	if report.Assets == 0 {
		report.Status = "error"
		report.Errors = append(report.Errors, fmt.Sprintf("no .%s assets match %q", cfg.AssetExtension, cfg.AssetSelection()))
	}
	return report, nil
}
