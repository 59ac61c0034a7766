// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation for every non-public route.
//   - rayid: a per-request id stored in the context and echoed in the
//     X-Ray-ID response header, picked up by logger.WithRayID.
package middleware
