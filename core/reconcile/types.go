package reconcile

import (
	"loadscreen-export/core/archive"
)

// DefaultDirPrefix is stripped from entry paths before matching item paths.
const DefaultDirPrefix = "panorama/images/"

// Item is one loading screen definition.
type Item struct {
	// ID is the declared item identifier.
	ID int `json:"id"`
	// Name is the display name; also used as the image file name.
	Name string `json:"name"`
	// Type is the item prefab, e.g. "loading_screen".
	Type string `json:"type"`
	// Path is the asset reference relative to DefaultDirPrefix.
	Path string `json:"path"`
}

func (i Item) String() string {
	return i.Name + "|" + i.Path
}

// Record is the persisted proof that an archive entry was exported.
// JSON field names follow the loadingscreens-db.json layout.
type Record struct {
	ID        int    `json:"ID"`
	Name      string `json:"Name"`
	ImageLink string `json:"ImageLink"`
	Crc32     uint32 `json:"Crc32"`
	Size      uint32 `json:"Size"`
	FullPath  string `json:"FullPath"`
}

// Matches reports whether the record was produced from entry.
func (r Record) Matches(entry archive.Entry) bool {
	return r.Key() == KeyOf(entry)
}

// Key returns the export identity of the record.
func (r Record) Key() Key {
	return Key{Crc32: r.Crc32, Size: r.Size, FullPath: r.FullPath}
}

// Key is the export identity: two exports are the same iff their keys are equal.
type Key struct {
	Crc32    uint32
	Size     uint32
	FullPath string
}

// KeyOf returns the export identity of an archive entry.
func KeyOf(entry archive.Entry) Key {
	return Key{Crc32: entry.CRC32, Size: entry.Length, FullPath: entry.FullPath()}
}

// Status is the outcome of classifying one item.
type Status string

const (
	// StatusExport means the item's asset is new or changed.
	StatusExport Status = "export"
	// StatusSkip means a record already covers the item's asset.
	StatusSkip Status = "skip"
	// StatusNotFound means no archive entry matches the item's path.
	StatusNotFound Status = "not_found"
)

// Result is the classification of one item.
type Result struct {
	Item   Item          `json:"item"`
	Status Status        `json:"status"`
	Entry  archive.Entry `json:"entry"`
	// Candidates is the number of entries matching the item's path.
	Candidates int `json:"candidates"`
}

// WorkItem pairs an item with the entry to export for it.
type WorkItem struct {
	Item  Item          `json:"item"`
	Entry archive.Entry `json:"entry"`
}

// Plan is the output of a reconciliation.
type Plan struct {
	// Work is the export work list, sorted by item name.
	Work []WorkItem `json:"work"`
	// NotFound lists items without a matching entry, in input order.
	NotFound []Item `json:"not_found"`
	// Results holds the per-item classification, in input order.
	Results []Result `json:"results"`
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate counts for a plan.
type Summary struct {
	// TotalItems is the number of items classified.
	TotalItems int `json:"total_items"`
	// Export counts items that need exporting.
	Export int `json:"export"`
	// Skip counts items already covered by a record.
	Skip int `json:"skip"`
	// NotFound counts items without an archive entry.
	NotFound int `json:"not_found"`
	// Ambiguous counts items whose path matched more than one entry.
	Ambiguous int `json:"ambiguous"`
}

// TieBreak picks the entry used when an item path matches several entries.
type TieBreak string

const (
	// TieBreakShortest picks the shortest full path, then the smallest one.
	TieBreakShortest TieBreak = "shortest"
	// TieBreakFirst picks the first match in archive order.
	TieBreakFirst TieBreak = "first"
	// TieBreakError refuses ambiguous matches.
	TieBreakError TieBreak = "error"
)

// Valid reports whether t is a known tie-break mode.
func (t TieBreak) Valid() bool {
	switch t {
	case TieBreakShortest, TieBreakFirst, TieBreakError:
		return true
	default:
		return false
	}
}

// Options controls matching.
type Options struct {
	// DirPrefix is stripped from entry paths before prefix matching.
	DirPrefix string
	// TieBreak resolves paths matching several entries.
	TieBreak TieBreak
}

// DefaultOptions returns the options used by the exporter.
func DefaultOptions() Options {
	return Options{
		DirPrefix: DefaultDirPrefix,
		TieBreak:  TieBreakShortest,
	}
}
