package loadingscreen

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job runs an export as a cron job. A run already in progress, e.g. one
// started over HTTP, makes the job a no-op.
func (s *Service) Job(ctx context.Context) cron.Job {
	return cron.FuncJob(func() {
		s.logger.Info("Scheduled export started")
		report, err := s.Run(ctx, RunOptions{})
		switch {
		case errors.Is(err, ErrRunInProgress):
			s.logger.Info("Scheduled export skipped, a run is in progress")
		case err != nil && report != nil:
			s.logger.Warn("Scheduled export finished with errors",
				zap.String("run", report.RunID),
				zap.Int("exported", len(report.Exported)),
				zap.Error(err))
		case err != nil:
			s.logger.Error("Scheduled export failed", zap.Error(err))
		default:
			s.logger.Info("Scheduled export finished",
				zap.String("run", report.RunID),
				zap.Int("exported", len(report.Exported)))
		}
	})
}

// NewScheduler returns a stopped cron runner that exports on schedule.
// Overlapping runs are skipped.
func NewScheduler(ctx context.Context, svc *Service, schedule cron.Schedule) *cron.Cron {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(schedule, svc.Job(ctx))
	return c
}
