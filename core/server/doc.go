// Package server holds the HTTP server configuration.
//
// Config defines the listen port, the API key checked by the auth middleware,
// how long plans are cached, and an optional cron schedule that re-runs the
// export while the server is up. ParseSchedule validates the schedule with the
// same parser the scheduler uses, so a bad spec fails at startup.
package server
