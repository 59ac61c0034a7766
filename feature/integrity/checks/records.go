package checks

import (
	"os"
	"path/filepath"

	"loadscreen-export/core/reconcile"
)

// RecordsReport lists record set problems.
type RecordsReport struct {
	Status string `json:"status"` // "ok", "error"
	Total  int    `json:"total"`
	// MissingImages holds image links whose file is gone from the image directory.
	MissingImages []string `json:"missing_images"`
	// Duplicates holds the full paths recorded more than once with the same key.
	Duplicates []string `json:"duplicates"`
}

// CheckRecords compares recs with the files in imageDir.
func CheckRecords(recs []reconcile.Record, imageDir string) *RecordsReport {
	report := &RecordsReport{
		Status:        "ok",
		Total:         len(recs),
		MissingImages: []string{},
		Duplicates:    []string{},
	}

	seen := make(map[reconcile.Key]int, len(recs))
	for _, r := range recs {
		seen[r.Key()]++
		if seen[r.Key()] == 2 {
			report.Duplicates = append(report.Duplicates, r.FullPath)
		}

		if r.ImageLink == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(imageDir, r.ImageLink)); err != nil {
			report.MissingImages = append(report.MissingImages, r.ImageLink)
		}
	}

	if len(report.MissingImages) > 0 || len(report.Duplicates) > 0 {
		report.Status = "error"
	}
	return report
}
