package records

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loadscreen-export/core/reconcile"
)

// DateLayout renders dbDate as a long date, e.g. "Monday, January 2, 2006".
const DateLayout = "Monday, January 2, 2006"

// BasicInfo is the public view of a record.
type BasicInfo struct {
	Name      string `json:"Name"`
	ImageLink string `json:"ImageLink"`
}

// Document is the public loadingscreens.json document.
type Document struct {
	Info   []BasicInfo `json:"info"`
	DBDate string      `json:"dbDate"`
	RunID  string      `json:"runId,omitempty"`
}

// BuildDocument lists every record in order. now is rendered in UTC.
func BuildDocument(records []reconcile.Record, now time.Time, runID string) Document {
	info := make([]BasicInfo, len(records))
	for i, r := range records {
		info[i] = BasicInfo{Name: r.Name, ImageLink: r.ImageLink}
	}
	return Document{
		Info:   info,
		DBDate: now.UTC().Format(DateLayout),
		RunID:  runID,
	}
}

// Encode returns the indented JSON of d.
func (d Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// WriteDocument writes d to path atomically.
func WriteDocument(ctx context.Context, path string, d Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := d.Encode()
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return writeFileAtomic(path, data)
}
