// Package reconcile decides which loading screen images have to be exported.
//
// Three sources of truth are compared:
//
//  1. Items: the loading screen definitions parsed from items_game.txt.
//  2. Entries: the texture assets found in the game archive.
//  3. Records: what previous runs already exported (the persisted database).
//
// # Classification
//
// Every item is classified on its own:
//
//   - NotFound: no archive entry path (with the image directory prefix
//     stripped) starts with the item's asset path.
//   - Skip: an entry was found and a record with the same (CRC32, size,
//     full path) triple already exists. Name or ID changes alone never force
//     an export; a content, size or path change does.
//   - Export: an entry was found but no record matches it.
//
// The work list is ordered by item name using a stable byte-wise sort, so the
// output does not depend on archive or document order.
//
// # Execution
//
// Execute runs the work list through an Exporter, one goroutine per item under
// a concurrency limit. A failing item does not stop its siblings. Commit folds
// the exported records into the previous set; the set is append-only, so a run
// that dies half way only loses the images it had not finished.
//
// # Usage Example
//
//	in, err := reconcile.LoadInputs(ctx, loader)
//	plan, err := reconcile.BuildPlan(in.Items, in.Entries, in.Records, reconcile.DefaultOptions())
//	res, err := reconcile.Execute(ctx, plan, exporter, reconcile.ExecuteOptions{Concurrency: 8})
//	records := reconcile.Commit(in.Records, res.Exported)
package reconcile
