package loadingscreen

import (
	"context"
	"fmt"
	"io"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/reconcile"
	"loadscreen-export/feature/loadingscreen/items"
	"loadscreen-export/feature/loadingscreen/records"
)

// Package is an opened archive.
type Package interface {
	archive.Source
	io.Closer
}

// Opener opens the archive for one run.
type Opener func() (Package, error)

// Source reads items and assets from an opened archive and records from a
// store. It implements reconcile.Loader.
type Source struct {
	pkg   archive.Source
	cfg   archive.Config
	store records.Store
}

var _ reconcile.Loader = (*Source)(nil)

// NewSource binds an opened archive and a record store.
func NewSource(pkg archive.Source, cfg archive.Config, store records.Store) *Source {
	return &Source{pkg: pkg, cfg: cfg, store: store}
}

// RawItems returns the loading screen items as written in the document,
// before normalization.
func (s *Source) RawItems(ctx context.Context) ([]reconcile.Item, error) {
	blob, err := archive.ReadFile(ctx, s.pkg, s.cfg.ItemsEntry)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.cfg.ItemsEntry, err)
	}
	list, err := items.Parse(blob, items.IsLoadingScreen)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.cfg.ItemsEntry, err)
	}
	return list, nil
}

// LoadItems implements reconcile.Loader.
func (s *Source) LoadItems(ctx context.Context) ([]reconcile.Item, error) {
	raw, err := s.RawItems(ctx)
	if err != nil {
		return nil, err
	}
	return items.NormalizeAll(raw)
}

// LoadEntries implements reconcile.Loader.
func (s *Source) LoadEntries(ctx context.Context) ([]archive.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filter, err := s.cfg.AssetFilter()
	if err != nil {
		return nil, err
	}
	return archive.Fetch(s.pkg, s.cfg.AssetExtension, filter), nil
}

// LoadRecords implements reconcile.Loader.
func (s *Source) LoadRecords(ctx context.Context) ([]reconcile.Record, error) {
	return s.store.Load(ctx)
}

// openingLoader opens the archive for every load, so a cached plan always
// reflects the archive on disk when it is rebuilt.
type openingLoader struct {
	open  Opener
	cfg   archive.Config
	store records.Store
}

func (l *openingLoader) with(fn func(*Source) error) error {
	pkg, err := l.open()
	if err != nil {
		return err
	}
	defer pkg.Close()
	return fn(NewSource(pkg, l.cfg, l.store))
}

func (l *openingLoader) LoadItems(ctx context.Context) (out []reconcile.Item, err error) {
	err = l.with(func(s *Source) error {
		out, err = s.LoadItems(ctx)
		return err
	})
	return out, err
}

func (l *openingLoader) LoadEntries(ctx context.Context) (out []archive.Entry, err error) {
	err = l.with(func(s *Source) error {
		out, err = s.LoadEntries(ctx)
		return err
	})
	return out, err
}

func (l *openingLoader) LoadRecords(ctx context.Context) ([]reconcile.Record, error) {
	return l.store.Load(ctx)
}
