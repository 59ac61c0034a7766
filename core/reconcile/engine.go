package reconcile

import (
	"sort"
	"strings"

	"loadscreen-export/core/archive"
)

// Index is a set of export identities built from the previous records.
type Index map[Key]struct{}

// NewIndex indexes records by export identity.
func NewIndex(records []Record) Index {
	idx := make(Index, len(records))
	for _, r := range records {
		idx[r.Key()] = struct{}{}
	}
	return idx
}

// Has reports whether a record already covers entry.
func (idx Index) Has(entry archive.Entry) bool {
	_, ok := idx[KeyOf(entry)]
	return ok
}

// Locate finds the entry whose path, with opts.DirPrefix stripped, starts with
// the item's path. It returns the chosen entry, the number of candidates and
// whether one was found. An item with an empty path matches nothing.
func Locate(item Item, entries []archive.Entry, opts Options) (archive.Entry, int, error) {
	// An empty prefix would match every entry; treat the item as NotFound
	// instead of exporting an arbitrary image.
	if item.Path == "" {
		return archive.Entry{}, 0, nil
	}

	var candidates []archive.Entry
	for _, e := range entries {
		if !strings.HasPrefix(e.FullPath(), opts.DirPrefix) {
			continue
		}
		if strings.HasPrefix(e.TrimmedPath(opts.DirPrefix), item.Path) {
			candidates = append(candidates, e)
		}
	}

	switch len(candidates) {
	case 0:
		return archive.Entry{}, 0, nil
	case 1:
		return candidates[0], 1, nil
	}

	switch opts.TieBreak {
	case TieBreakFirst:
		return candidates[0], len(candidates), nil
	case TieBreakError:
		paths := make([]string, len(candidates))
		for i, c := range candidates {
			paths[i] = c.FullPath()
		}
		return archive.Entry{}, len(candidates), &AmbiguousMatchError{Item: item, Candidates: paths}
	default:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if shorter(c.FullPath(), best.FullPath()) {
				best = c
			}
		}
		return best, len(candidates), nil
	}
}

func shorter(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// Classify computes the status of a single item. It has no side effects and
// does not depend on any other item.
func Classify(item Item, entries []archive.Entry, prior Index, opts Options) (Result, error) {
	entry, candidates, err := Locate(item, entries, opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Item: item, Candidates: candidates}
	switch {
	case candidates == 0:
		res.Status = StatusNotFound
	case prior.Has(entry):
		res.Status = StatusSkip
		res.Entry = entry
	default:
		res.Status = StatusExport
		res.Entry = entry
	}
	return res, nil
}

// BuildPlan classifies every item and assembles the export work list.
func BuildPlan(items []Item, entries []archive.Entry, prior []Record, opts Options) (*Plan, error) {
	idx := NewIndex(prior)

	plan := &Plan{
		Work:     make([]WorkItem, 0),
		NotFound: make([]Item, 0),
		Results:  make([]Result, 0, len(items)),
	}
	plan.Summary.TotalItems = len(items)

	for _, item := range items {
		res, err := Classify(item, entries, idx, opts)
		if err != nil {
			return nil, err
		}
		plan.Results = append(plan.Results, res)

		if res.Candidates > 1 {
			plan.Summary.Ambiguous++
		}

		switch res.Status {
		case StatusNotFound:
			plan.Summary.NotFound++
			plan.NotFound = append(plan.NotFound, item)
		case StatusSkip:
			plan.Summary.Skip++
		case StatusExport:
			plan.Summary.Export++
			plan.Work = append(plan.Work, WorkItem{Item: item, Entry: res.Entry})
		}
	}

	// Ordinal, stable: equal names keep their input order.
	sort.SliceStable(plan.Work, func(i, j int) bool {
		return plan.Work[i].Item.Name < plan.Work[j].Item.Name
	})

	return plan, nil
}
