package reconcile

import (
	"context"
	"fmt"
	"sync"

	"loadscreen-export/core/archive"
)

// Loader provides the three inputs of a reconciliation run.
type Loader interface {
	// LoadItems returns the normalized items to reconcile.
	LoadItems(ctx context.Context) ([]Item, error)

	// LoadEntries returns the candidate asset entries.
	LoadEntries(ctx context.Context) ([]archive.Entry, error)

	// LoadRecords returns the previously exported records. A missing store
	// yields an empty slice, not an error.
	LoadRecords(ctx context.Context) ([]Record, error)
}

// Inputs holds everything BuildPlan needs.
type Inputs struct {
	Items   []Item
	Entries []archive.Entry
	Records []Record
}

// LoadInputs runs the three loads of l concurrently.
func LoadInputs(ctx context.Context, l Loader) (*Inputs, error) {
	var (
		in                          Inputs
		itemsErr, entryErr, recsErr error
		wg                          sync.WaitGroup
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		in.Items, itemsErr = l.LoadItems(ctx)
	}()

	go func() {
		defer wg.Done()
		in.Entries, entryErr = l.LoadEntries(ctx)
	}()

	go func() {
		defer wg.Done()
		in.Records, recsErr = l.LoadRecords(ctx)
	}()

	wg.Wait()

	if itemsErr != nil {
		return nil, fmt.Errorf("load items: %w", itemsErr)
	}
	if entryErr != nil {
		return nil, fmt.Errorf("load entries: %w", entryErr)
	}
	if recsErr != nil {
		return nil, fmt.Errorf("load records: %w", recsErr)
	}

	return &in, nil
}

// Reconcile loads the inputs from l and builds the plan.
func Reconcile(ctx context.Context, l Loader, opts Options) (*Plan, *Inputs, error) {
	in, err := LoadInputs(ctx, l)
	if err != nil {
		return nil, nil, err
	}
	plan, err := BuildPlan(in.Items, in.Entries, in.Records, opts)
	if err != nil {
		return nil, nil, err
	}
	return plan, in, nil
}
