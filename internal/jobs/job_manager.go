// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. Jobs are managed through JobManager, which
// starts and stops every job as a unit.
package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statsReportJob *StatsReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	statisticsHandler queries.GetOrderStatisticsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsReportJob: NewStatsReportJob(statisticsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.statsReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.statsReportJob.Stop()
}
