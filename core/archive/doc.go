// Package archive describes the game content archive as seen by the exporter.
//
// The exporter never depends on a concrete container format. It talks to a
// Source, which lists Entry metadata (path, CRC32, length) and reads the raw
// bytes of one entry. The vpk subpackage implements Source for Valve's VPK
// directory format; tests use in-memory fakes.
//
// # Filters
//
// Entry selection is expressed with Filter values. DirPrefix is the
// "directory starts with" selection used for loading screen textures, Glob
// accepts gobwas/glob patterns such as "panorama/images/loadingscreens/**"
// and All combines them. Config.AssetFilter builds the configured selection.
//
// # Usage
//
//	pkg, err := vpk.Open(archive.PackagePath(cfg.Archive.Path))
//	filter, err := cfg.Archive.AssetFilter()
//	entries := archive.Fetch(pkg, cfg.Archive.AssetExtension, filter)
//
// Watch reports changes to the package files on disk, e.g. after a game update.
package archive
