package loadingscreen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/imaging"
	"loadscreen-export/core/logger"
	"loadscreen-export/core/metrics"
	"loadscreen-export/core/reconcile"
	"loadscreen-export/core/utils"
	"loadscreen-export/feature/loadingscreen/export"
	"loadscreen-export/feature/loadingscreen/records"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrRunInProgress is returned when an export is started while another one runs.
	ErrRunInProgress = errors.New("an export is already running")
	// ErrPartialExport is returned when some images could not be exported.
	// The images that were exported are recorded.
	ErrPartialExport = errors.New("export finished with failures")
)

// notFoundNameWidth bounds item names in not found warnings.
const notFoundNameWidth = 30

// Options configures a Service.
type Options struct {
	Open      Opener
	Archive   archive.Config
	Export    export.Config
	Records   records.Config
	Store     records.Store
	Decoder   imaging.Decoder
	Publisher *records.Publisher // nil disables publishing
	Metrics   *metrics.Metrics   // nil disables metrics
	Logger    *zap.Logger
	PlanTTL   time.Duration
}

// Service runs loading screen exports.
type Service struct {
	opts      Options
	reconcile reconcile.Options
	cache     *reconcile.PlanCache
	logger    *zap.Logger

	running sync.Mutex
	now     func() time.Time
}

// NewService validates opts and returns a service.
func NewService(opts Options) (*Service, error) {
	_, tieBreak, err := opts.Export.Validate()
	if err != nil {
		return nil, err
	}
	if opts.Open == nil || opts.Store == nil {
		return nil, errors.New("loadingscreen: archive opener and record store are required")
	}
	if opts.Decoder == nil {
		opts.Decoder = imaging.RasterDecoder{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ro := reconcile.Options{DirPrefix: opts.Archive.DirPrefix, TieBreak: tieBreak}
	if ro.DirPrefix == "" {
		ro.DirPrefix = reconcile.DefaultDirPrefix
	}

	loader := &openingLoader{open: opts.Open, cfg: opts.Archive, store: opts.Store}
	return &Service{
		opts:      opts,
		reconcile: ro,
		cache:     reconcile.NewPlanCache(loader, ro, opts.PlanTTL),
		logger:    opts.Logger,
		now:       time.Now,
	}, nil
}

// RunOptions controls a single run.
type RunOptions struct {
	// DryRun stops after planning.
	DryRun bool
	// OnPlan is called once the plan is known, before exporting.
	OnPlan func(*reconcile.Plan)
	// OnProgress is called after each image.
	OnProgress func(reconcile.Progress)
}

// Failure describes one image that could not be exported.
type Failure struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Report summarizes a run.
type Report struct {
	RunID    string             `json:"run_id"`
	Started  time.Time          `json:"started"`
	Duration time.Duration      `json:"duration"`
	DryRun   bool               `json:"dry_run"`
	Summary  reconcile.Summary  `json:"summary"`
	Exported []reconcile.Record `json:"exported"`
	Failed   []Failure          `json:"failed"`
	NotFound []reconcile.Item   `json:"not_found"`
	Records  int                `json:"records"`

	Plan *reconcile.Plan `json:"-"`
}

// Run reconciles the archive with the stored records and exports what changed.
//
// Records for the images that were written are persisted even when other
// images fail or ctx is cancelled half way.
func (s *Service) Run(ctx context.Context, ro RunOptions) (*Report, error) {
	if !s.running.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.running.Unlock()

	report := &Report{RunID: uuid.NewString(), Started: s.now(), DryRun: ro.DryRun}
	log := logger.WithRun(s.logger, report.RunID)

	outcome := metrics.OutcomeFailed
	defer func() {
		report.Duration = time.Since(report.Started)
		if !ro.DryRun {
			s.opts.Metrics.ObserveRun(outcome, report.Started, report.Records)
		}
	}()

	pkg, err := s.opts.Open()
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer pkg.Close()

	src := NewSource(pkg, s.opts.Archive, s.opts.Store)
	plan, in, err := reconcile.Reconcile(ctx, src, s.reconcile)
	if err != nil {
		return nil, err
	}
	report.Plan = plan
	report.Summary = plan.Summary
	report.NotFound = plan.NotFound
	report.Records = len(in.Records)

	if len(in.Records) > 0 {
		log.Info(fmt.Sprintf("%d loading screens in db", len(in.Records)))
	}
	log.Debug("Collected loading screen information",
		zap.Int("items", len(in.Items)),
		zap.Int("assets", len(in.Entries)))
	for _, item := range plan.NotFound {
		log.Warn("Loading screen asset not found",
			zap.Int("id", item.ID),
			zap.String("name", utils.Truncate(item.Name, notFoundNameWidth)),
			zap.String("path", item.Path))
	}
	s.opts.Metrics.ObserveItems(plan.Summary.Export, plan.Summary.Skip, plan.Summary.NotFound)

	if ro.OnPlan != nil {
		ro.OnPlan(plan)
	}
	if ro.DryRun {
		outcome = metrics.OutcomeOK
		return report, nil
	}

	exp, err := export.NewImageExporter(pkg, s.opts.Decoder, s.opts.Export)
	if err != nil {
		return nil, err
	}
	if err := exp.Prepare(); err != nil {
		return nil, err
	}
	if s.opts.Publisher != nil && len(plan.Work) > 0 {
		if err := s.opts.Publisher.Prepare(ctx); err != nil {
			return nil, fmt.Errorf("prepare bucket: %w", err)
		}
	}

	log.Debug("Exporting loading screens", zap.Int("count", len(plan.Work)))
	res, execErr := reconcile.Execute(ctx, plan, s.exporter(exp, log), reconcile.ExecuteOptions{
		Concurrency: s.opts.Export.Workers(),
		OnProgress:  ro.OnProgress,
	})

	// persist whatever was produced, even after cancellation
	saveCtx := context.WithoutCancel(ctx)
	committed := reconcile.Commit(in.Records, res.Exported)
	if err := s.persist(saveCtx, committed, report.RunID); err != nil {
		return report, err
	}
	s.cache.Invalidate()

	report.Exported = res.Exported
	report.Records = len(committed)
	for _, f := range res.Failed {
		report.Failed = append(report.Failed, Failure{
			ID:    f.Work.Item.ID,
			Name:  f.Work.Item.Name,
			Path:  f.Work.Entry.FullPath(),
			Error: f.Err.Error(),
		})
	}

	log.Info(fmt.Sprintf("Finished exporting %d loading screens in %.2fs", len(res.Exported), time.Since(report.Started).Seconds()))
	log.Info(fmt.Sprintf("%d not found and %d skipped.", plan.Summary.NotFound, plan.Summary.Skip))

	if execErr != nil {
		return report, execErr
	}
	if len(res.Failed) > 0 {
		outcome = metrics.OutcomePartial
		return report, fmt.Errorf("%w: %d of %d images failed", ErrPartialExport, len(res.Failed), len(plan.Work))
	}
	outcome = metrics.OutcomeOK
	return report, nil
}

// exporter wraps exp with per-image logging, metrics and publishing.
func (s *Service) exporter(exp *export.ImageExporter, log *zap.Logger) reconcile.Exporter {
	return reconcile.ExporterFunc(func(ctx context.Context, w reconcile.WorkItem) (reconcile.Record, error) {
		rec, err := exp.Export(ctx, w)
		if err == nil && s.opts.Publisher != nil {
			err = s.opts.Publisher.PublishFile(ctx,
				filepath.Join(exp.Dir(), rec.ImageLink),
				filepath.Join(s.opts.Export.ImageDir, rec.ImageLink))
		}
		s.opts.Metrics.ObserveImage(err)
		if err != nil {
			log.Error("Export failed", zap.String("name", w.Item.Name), zap.Error(err))
			return reconcile.Record{}, err
		}
		log.Debug("Exported " + rec.ImageLink)
		return rec, nil
	})
}

// persist saves the record set, writes the public document and publishes both.
func (s *Service) persist(ctx context.Context, committed []reconcile.Record, runID string) error {
	if err := s.opts.Store.Save(ctx, committed); err != nil {
		return err
	}

	doc := records.BuildDocument(committed, s.now(), runID)
	docPath := filepath.Join(s.opts.Export.OutDir, s.opts.Records.BasicFile)
	if err := records.WriteDocument(ctx, docPath, doc); err != nil {
		return err
	}

	if s.opts.Publisher == nil {
		return nil
	}
	docBytes, err := doc.Encode()
	if err != nil {
		return err
	}
	if err := s.opts.Publisher.PublishBytes(ctx, s.opts.Records.BasicFile, docBytes); err != nil {
		return err
	}
	dbBytes, err := json.MarshalIndent(committed, "", "  ")
	if err != nil {
		return err
	}
	return s.opts.Publisher.PublishBytes(ctx, s.opts.Records.DBFile, dbBytes)
}

// Plan returns the plan the next run would execute. refresh drops the cached one.
func (s *Service) Plan(ctx context.Context, refresh bool) (*reconcile.Plan, error) {
	if refresh {
		s.cache.Invalidate()
	}
	return s.cache.Get(ctx)
}

// Items lists the loading screen items of the archive. raw skips name normalization.
func (s *Service) Items(ctx context.Context, raw bool) ([]reconcile.Item, error) {
	pkg, err := s.opts.Open()
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer pkg.Close()

	src := NewSource(pkg, s.opts.Archive, s.opts.Store)
	if raw {
		return src.RawItems(ctx)
	}
	return src.LoadItems(ctx)
}

// Records returns the stored records.
func (s *Service) Records(ctx context.Context) ([]reconcile.Record, error) {
	return s.opts.Store.Load(ctx)
}

// RecordsByID returns the stored records of one item, oldest first.
func (s *Service) RecordsByID(ctx context.Context, id int) ([]reconcile.Record, error) {
	all, err := s.opts.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []reconcile.Record
	for _, r := range all {
		if r.ID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

// Document builds the public document from the stored records.
func (s *Service) Document(ctx context.Context) (records.Document, error) {
	all, err := s.opts.Store.Load(ctx)
	if err != nil {
		return records.Document{}, err
	}
	return records.BuildDocument(all, s.now(), ""), nil
}

// PullRecords replaces an empty local store with the record set published to
// the bucket. It returns the number of records restored.
func (s *Service) PullRecords(ctx context.Context) (int, error) {
	if s.opts.Publisher == nil {
		return 0, errors.New("storage publishing is disabled")
	}
	local, err := s.opts.Store.Load(ctx)
	if err != nil {
		return 0, err
	}
	if len(local) > 0 {
		return 0, fmt.Errorf("%s already holds %d records", s.opts.Store.Location(), len(local))
	}

	data, err := s.opts.Publisher.Pull(ctx, s.opts.Records.DBFile)
	if err != nil {
		return 0, err
	}
	var remote []reconcile.Record
	if err := json.Unmarshal(data, &remote); err != nil {
		return 0, fmt.Errorf("decode %s: %w", s.opts.Records.DBFile, err)
	}
	if err := s.opts.Store.Save(ctx, remote); err != nil {
		return 0, err
	}
	s.cache.Invalidate()
	return len(remote), nil
}

// ImageDir returns the directory images are written to.
func (s *Service) ImageDir() string {
	return s.opts.Export.ImagePath()
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}
