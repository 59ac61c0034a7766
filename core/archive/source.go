package archive

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrEntryNotFound is returned when a lookup by path yields nothing.
var ErrEntryNotFound = errors.New("archive entry not found")

// DefaultPackage is the main content package relative to the game directory.
var DefaultPackage = filepath.Join("game", "dota", "pak01_dir.vpk")

// Source is a read-only view over an archive.
type Source interface {
	// Entries returns every entry stored with the given extension.
	Entries(extension string) []Entry
	// ReadEntry returns the complete bytes of an entry.
	ReadEntry(ctx context.Context, entry Entry) ([]byte, error)
}

// Filter selects entries.
type Filter func(Entry) bool

// Fetch returns the entries of the given extension accepted by every filter,
// in archive order.
func Fetch(src Source, extension string, filters ...Filter) []Entry {
	var out []Entry
	for _, e := range src.Entries(extension) {
		if matchAll(e, filters) {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by its full path, e.g. "scripts/items/items_game.txt".
func Lookup(src Source, fullPath string) (Entry, error) {
	ext := strings.TrimPrefix(filepath.Ext(fullPath), ".")
	for _, e := range src.Entries(ext) {
		if e.FullPath() == fullPath {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, fullPath)
}

// ReadFile looks up fullPath and returns its bytes.
func ReadFile(ctx context.Context, src Source, fullPath string) ([]byte, error) {
	entry, err := Lookup(src, fullPath)
	if err != nil {
		return nil, err
	}
	return src.ReadEntry(ctx, entry)
}

// PackagePath resolves the archive to open. A path ending in ".vpk" is used
// as is, anything else is treated as the game installation directory.
func PackagePath(p string) string {
	if strings.EqualFold(filepath.Ext(p), ".vpk") {
		return p
	}
	return filepath.Join(p, DefaultPackage)
}

func matchAll(e Entry, filters []Filter) bool {
	for _, f := range filters {
		if f != nil && !f(e) {
			return false
		}
	}
	return true
}
