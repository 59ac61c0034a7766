package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"loadscreen-export/core/archive"
	"loadscreen-export/core/archive/vpk"
	"loadscreen-export/core/config"
	"loadscreen-export/core/keyvalues"
	"loadscreen-export/feature/loadingscreen/items"
)

// Usage: debug_entries [name fragment]
//
// Lists the loading screen assets of the configured archive whose path
// contains the fragment, and the raw item blocks whose name does.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Archive.Path == "" {
		log.Fatal("ARCHIVE_PATH is not set")
	}

	pkg, err := vpk.Open(archive.PackagePath(cfg.Archive.Path))
	if err != nil {
		log.Fatal(err)
	}
	defer pkg.Close()

	fragment := ""
	if len(os.Args) > 1 {
		fragment = strings.ToLower(os.Args[1])
	}

	fmt.Printf("VPK version %d, %d entries\n", pkg.Version(), pkg.Count())

	filter, err := cfg.Archive.AssetFilter()
	if err != nil {
		log.Fatal(err)
	}
	assets := archive.Fetch(pkg, cfg.Archive.AssetExtension, filter)
	fmt.Printf("\n=== %d assets match %q ===\n", len(assets), cfg.Archive.AssetSelection())
	for _, e := range assets {
		if fragment != "" && !strings.Contains(strings.ToLower(e.FullPath()), fragment) {
			continue
		}
		fmt.Printf("%08x %9d %s\n", e.CRC32, e.Length, e.FullPath())
	}

	blob, err := archive.ReadFile(context.Background(), pkg, cfg.Archive.ItemsEntry)
	if err != nil {
		log.Fatal(err)
	}
	lines := keyvalues.Section(keyvalues.SplitLines(blob), items.Collection)
	fmt.Printf("\n=== %s: %d lines in %q ===\n", cfg.Archive.ItemsEntry, len(lines), items.Collection)

	raw, err := items.Parse(blob, items.IsLoadingScreen)
	if err != nil {
		log.Fatal(err)
	}
	count := 0
	for _, it := range raw {
		if fragment != "" && !strings.Contains(strings.ToLower(it.Name), fragment) {
			continue
		}
		normalized, err := items.Normalize(it)
		if err != nil {
			fmt.Printf("%6d %-60s %s (%v)\n", it.ID, it.Name, it.Path, err)
		} else {
			fmt.Printf("%6d %-60s %s -> %s\n", it.ID, it.Name, it.Path, normalized.Name)
		}
		count++
	}
	fmt.Printf("\n%d of %d loading screen items shown\n", count, len(raw))
}
