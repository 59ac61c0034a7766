package cmd

import (
	"errors"
	"fmt"
	"time"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/archive/vpk"
	"loadscreen-export/core/config"
	"loadscreen-export/core/database"
	"loadscreen-export/core/imaging"
	"loadscreen-export/core/logger"
	"loadscreen-export/core/metrics"
	"loadscreen-export/core/storage"
	"loadscreen-export/feature/integrity"
	"loadscreen-export/feature/loadingscreen"
	"loadscreen-export/feature/loadingscreen/records"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errNoDotaPath = errors.New("missing dota path, usage: dotals -d <path to dota2> <outdir>")

// app holds everything a command needs, built from config and flags.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB // set when records live in a database
	store   records.Store
	storage storage.Client
	service *loadingscreen.Service
}

type appOptions struct {
	// requireArchive fails early when no archive path is configured.
	requireArchive bool
	// metrics registers the export metrics with the default registry.
	metrics bool
}

// newApp loads the configuration, applies the global flags and the optional
// <outdir> argument, and wires the export service.
func newApp(args []string, opts appOptions) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dotaPath != "" {
		cfg.Archive.Path = dotaPath
	}
	if len(args) > 0 {
		cfg.Export.OutDir = args[0]
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if opts.requireArchive && cfg.Archive.Path == "" {
		return nil, errNoDotaPath
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{cfg: cfg, logger: logg}

	store, err := records.New(cfg.Records, cfg.Export.OutDir, func() (*gorm.DB, error) {
		db, err := database.Connect(cfg.RecordsDatabase())
		if err != nil {
			return nil, err
		}
		a.db = db
		logg.Debug("Connected to records database", zap.String("driver", cfg.RecordsDatabase().Driver))
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	a.store = store

	var publisher *records.Publisher
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		a.storage = client
		publisher = records.NewPublisher(client, cfg.Storage)
	}

	var m *metrics.Metrics
	if opts.metrics {
		m = metrics.New(prometheus.DefaultRegisterer)
	}

	svc, err := loadingscreen.NewService(loadingscreen.Options{
		Open:      openArchive(cfg.Archive.Path),
		Archive:   cfg.Archive,
		Export:    cfg.Export,
		Records:   cfg.Records,
		Store:     store,
		Decoder:   newDecoder(cfg.Export.DecoderCommand),
		Publisher: publisher,
		Metrics:   m,
		Logger:    logg,
		PlanTTL:   time.Duration(cfg.Server.PlanCacheSeconds) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	a.service = svc

	logg.Debug("Configuration loaded",
		zap.String("archive", archive.PackagePath(cfg.Archive.Path)),
		zap.String("out_dir", cfg.Export.OutDir),
		zap.String("records", store.Location()),
		zap.Bool("publishing", publisher != nil))
	return a, nil
}

// integrityOptions exposes the app's resources to the integrity checks.
func (a *app) integrityOptions() integrity.Options {
	return integrity.Options{
		Open:    openArchive(a.cfg.Archive.Path),
		Archive: a.cfg.Archive,
		Export:  a.cfg.Export,
		Records: a.cfg.Records,
		Store:   a.store,
		DB:      a.db,
		Storage: a.storage,
		Bucket:  a.cfg.Storage,
		Logger:  a.logger,
	}
}

func openArchive(path string) loadingscreen.Opener {
	return func() (loadingscreen.Package, error) {
		if path == "" {
			return nil, errNoDotaPath
		}
		pkg, err := vpk.Open(archive.PackagePath(path))
		if err != nil {
			return nil, err
		}
		return pkg, nil
	}
}

func newDecoder(command string) imaging.Decoder {
	chain := imaging.Chain{}
	if d := imaging.NewCommandDecoder(command); d != nil {
		chain = append(chain, d)
	}
	return append(chain, imaging.RasterDecoder{})
}
