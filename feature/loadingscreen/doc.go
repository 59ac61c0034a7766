// Package loadingscreen implements the loading screen export feature.
//
// It reconciles three sources of truth:
//  1. Items: loading screen definitions in scripts/items/items_game.txt.
//  2. Assets: vtex_c textures under panorama/images/loadingscreens.
//  3. Records: images written by previous runs (records.Store).
//
// # Components
//
//   - Source: opens the archive and implements reconcile.Loader.
//   - Service: runs a reconciliation and export end to end, persists the
//     records and the public document, and optionally publishes to a bucket.
//   - Handler: HTTP endpoints over the service.
//   - Feature: registers the handler with the loader.Manager.
//
// # HTTP Endpoints
//
//   - GET  /loadingscreens : public document (name and image of each record).
//   - GET  /loadingscreens/plan : what the next run would do.
//   - GET  /loadingscreens/:id : stored records of one item.
//   - POST /loadingscreens/export : run an export now.
//   - GET  /images/* : exported images.
package loadingscreen
