package server

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Schedule is a cron spec for periodic exports, empty to disable.
	Schedule string `mapstructure:"schedule" default:""`
	// PlanCacheSeconds is how long a computed plan is served before rebuilding.
	PlanCacheSeconds int `mapstructure:"plan_cache_seconds" default:"60"`
}

// ScheduleParser accepts standard five field specs and descriptors such as "@hourly".
var ScheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseSchedule validates Schedule. It returns nil when scheduling is off.
func (c Config) ParseSchedule() (cron.Schedule, error) {
	if c.Schedule == "" {
		return nil, nil
	}
	s, err := ScheduleParser.Parse(c.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	return s, nil
}
