package reconcile

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Exporter turns one work item into an image and reports the record for it.
type Exporter interface {
	Export(ctx context.Context, work WorkItem) (Record, error)
}

// ExporterFunc adapts a function to the Exporter interface.
type ExporterFunc func(ctx context.Context, work WorkItem) (Record, error)

// Export calls f.
func (f ExporterFunc) Export(ctx context.Context, work WorkItem) (Record, error) {
	return f(ctx, work)
}

// Progress is reported once per finished work item.
type Progress struct {
	Done   int
	Total  int
	Work   WorkItem
	Record Record
	Err    error
}

// ExecuteOptions controls plan execution.
type ExecuteOptions struct {
	// Concurrency bounds the number of items exported at once.
	// Zero or less uses runtime.NumCPU().
	Concurrency int
	// OnProgress, if set, is called after each item. Calls may come from
	// several goroutines at once.
	OnProgress func(Progress)
}

// Failure is a work item that could not be exported.
type Failure struct {
	Work WorkItem
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("export %s: %v", f.Work.Item.Name, f.Err)
}

// ExecuteResult holds the outcome of Execute.
type ExecuteResult struct {
	// Exported holds the records of successful items, in work list order.
	Exported []Record
	// Failed holds the items whose export failed, in work list order.
	Failed []Failure
	// Completed counts finished items, successful or not.
	Completed int64
}

// Execute exports every work item of plan.
//
// Items run independently: an item failure is recorded in the result and does
// not cancel the others. When ctx is cancelled no new item is started and
// ctx.Err() is returned together with the partial result, so callers can still
// persist the records that were produced.
func Execute(ctx context.Context, plan *Plan, exporter Exporter, opts ExecuteOptions) (*ExecuteResult, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	total := len(plan.Work)
	records := make([]*Record, total)
	failures := make([]*Failure, total)
	var done atomic.Int64

	var g errgroup.Group
	g.SetLimit(limit)

	for i, work := range plan.Work {
		i, work := i, work
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			rec, err := exporter.Export(ctx, work)
			if err != nil {
				failures[i] = &Failure{Work: work, Err: err}
			} else {
				records[i] = &rec
			}
			n := done.Add(1)
			if opts.OnProgress != nil {
				opts.OnProgress(Progress{Done: int(n), Total: total, Work: work, Record: rec, Err: err})
			}
			return nil
		})
	}
	_ = g.Wait()

	res := &ExecuteResult{
		Exported:  make([]Record, 0, total),
		Completed: done.Load(),
	}
	for i := 0; i < total; i++ {
		if records[i] != nil {
			res.Exported = append(res.Exported, *records[i])
		}
		if failures[i] != nil {
			res.Failed = append(res.Failed, *failures[i])
		}
	}

	return res, ctx.Err()
}
