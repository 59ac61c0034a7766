// Package export writes loading screen images out of the archive.
package export

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/imaging"
	"loadscreen-export/core/reconcile"
	"loadscreen-export/core/utils"
)

// ImageExporter reads, decodes, resizes and writes one texture per work item.
type ImageExporter struct {
	source  archive.Source
	decoder imaging.Decoder
	dir     string
	width   int
	height  int
	format  imaging.Format
	quality int
}

// NewImageExporter returns an exporter writing into cfg.ImagePath().
func NewImageExporter(src archive.Source, decoder imaging.Decoder, cfg Config) (*ImageExporter, error) {
	format, _, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &ImageExporter{
		source:  src,
		decoder: decoder,
		dir:     cfg.ImagePath(),
		width:   cfg.Width,
		height:  cfg.Height,
		format:  format,
		quality: cfg.Quality,
	}, nil
}

// Dir returns the image directory.
func (e *ImageExporter) Dir() string {
	return e.dir
}

// FileName returns the image file name for an item name.
func (e *ImageExporter) FileName(name string) string {
	return utils.SafeFileName(name) + "." + e.format.Ext()
}

// Prepare creates the image directory.
func (e *ImageExporter) Prepare() error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create image directory: %w", err)
	}
	return nil
}

// Export implements reconcile.Exporter. The record's ImageLink is the file
// name relative to the image directory.
func (e *ImageExporter) Export(ctx context.Context, work reconcile.WorkItem) (reconcile.Record, error) {
	data, err := e.source.ReadEntry(ctx, work.Entry)
	if err != nil {
		return reconcile.Record{}, fmt.Errorf("read %s: %w", work.Entry.FullPath(), err)
	}

	img, err := e.decoder.Decode(ctx, work.Entry.FullPath(), data)
	if err != nil {
		return reconcile.Record{}, err
	}
	img = imaging.Resize(img, e.width, e.height)

	name := e.FileName(work.Item.Name)
	if err := e.write(filepath.Join(e.dir, name), func(w *bufio.Writer) error {
		return imaging.Encode(w, img, e.format, e.quality)
	}); err != nil {
		return reconcile.Record{}, err
	}

	return reconcile.NewRecord(work, name), nil
}

func (e *ImageExporter) write(path string, encode func(*bufio.Writer) error) error {
	tmp, err := os.CreateTemp(e.dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := encode(w); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
