package integrity

import (
	"context"
	"fmt"
	"path/filepath"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/storage"
	"loadscreen-export/feature/integrity/checks"
	"loadscreen-export/feature/loadingscreen"
	"loadscreen-export/feature/loadingscreen/export"
	"loadscreen-export/feature/loadingscreen/records"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options wires the service to the exporter's resources.
// DB and Storage are optional; their checks report an error when unset.
type Options struct {
	Open    loadingscreen.Opener
	Archive archive.Config
	Export  export.Config
	Records records.Config
	Store   records.Store
	DB      *gorm.DB
	Storage storage.Client
	Bucket  storage.Config
	Logger  *zap.Logger
}

// Service handles integrity checks.
type Service struct {
	opts      Options
	publisher *records.Publisher
	logger    *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &Service{opts: opts, logger: opts.Logger}
	if opts.Storage != nil {
		s.publisher = records.NewPublisher(opts.Storage, opts.Bucket)
	}
	return s
}

// CheckArchive opens the archive and reports what it offers.
func (s *Service) CheckArchive(ctx context.Context) (*checks.ArchiveReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.opts.Open == nil {
		return nil, fmt.Errorf("archive is not configured")
	}
	pkg, err := s.opts.Open()
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer pkg.Close()
	return checks.CheckArchive(pkg, s.opts.Archive)
}

// OutputDirs returns the directories an export writes to.
func (s *Service) OutputDirs() []string {
	return []string{s.opts.Export.OutDir, s.opts.Export.ImagePath()}
}

// CheckOutput returns the missing output directories.
func (s *Service) CheckOutput() ([]string, error) {
	return checks.CheckOutput(s.OutputDirs())
}

// FixOutput creates the missing output directories.
func (s *Service) FixOutput(missing []string) error {
	return checks.FixOutput(s.logger, missing)
}

// CheckRecords compares the stored records with the exported images.
func (s *Service) CheckRecords(ctx context.Context) (*checks.RecordsReport, error) {
	recs, err := s.opts.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckRecords(recs, s.opts.Export.ImagePath()), nil
}

// CheckDatabase verifies the records table schema.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.opts.DB, records.Row{})
}

// PublishedNames lists what a complete bucket holds: both record documents
// and one image per record.
func (s *Service) PublishedNames(ctx context.Context) ([]string, error) {
	recs, err := s.opts.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	names := []string{s.opts.Records.BasicFile, s.opts.Records.DBFile}
	for _, r := range recs {
		if r.ImageLink != "" {
			names = append(names, filepath.ToSlash(filepath.Join(s.opts.Export.ImageDir, r.ImageLink)))
		}
	}
	return names, nil
}

// CheckStorage returns the published names missing from the bucket.
func (s *Service) CheckStorage(ctx context.Context) ([]string, error) {
	if s.opts.Storage == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	names, err := s.PublishedNames(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckPublished(ctx, s.opts.Storage, s.opts.Bucket, names)
}

// FixStorage uploads the missing names from the output directory.
func (s *Service) FixStorage(ctx context.Context, missing []string) error {
	if s.publisher == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := s.publisher.Prepare(ctx); err != nil {
		return err
	}
	return checks.FixPublished(ctx, s.publisher, s.opts.Export.OutDir, s.logger, missing)
}

// Report runs every check and collects the results in the same shape the
// individual endpoints use.
func (s *Service) Report(ctx context.Context) map[string]interface{} {
	report := make(map[string]interface{})

	if arc, err := s.CheckArchive(ctx); err != nil {
		report["archive"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["archive"] = arc
	}

	if missing, err := s.CheckOutput(); err != nil {
		report["output"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["output"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if recs, err := s.CheckRecords(ctx); err != nil {
		report["records"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["records"] = recs
	}

	if s.opts.DB != nil {
		if schema, err := s.CheckDatabase(); err != nil {
			report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
		} else {
			report["database"] = schema
		}
	}

	if s.opts.Storage != nil {
		if missing, err := s.CheckStorage(ctx); err != nil {
			report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
		} else {
			report["storage"] = map[string]interface{}{"status": "ok", "missing": missing}
		}
	}

	return report
}
