package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsReportJob periodically computes order statistics and writes them to
// the log, giving operators a dashboard snapshot without hitting the API.
type StatsReportJob struct {
	handler queries.GetOrderStatisticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsReportJob creates a job that reports order statistics once a minute.
func NewStatsReportJob(handler queries.GetOrderStatisticsQueryHandler, logger *slog.Logger) *StatsReportJob {
	return &StatsReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_report_job"),
	}
}

// Start begins the statistics report job.
func (j *StatsReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOrderStatisticsQuery()
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stats report job failed to build query", "error", queryErr)
			return
		}

		stats, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stats report job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Order statistics",
			"totalOrders", stats.TotalOrders,
			"deliveredOrders", stats.DeliveredOrders,
			"pendingOrders", stats.PendingOrders,
			"totalRevenue", stats.TotalRevenue.String(),
			"averageOrderValue", stats.AverageOrderValue.String(),
			"customerCount", stats.CustomerCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started (running every minute)")
	return nil
}

// Stop stops the statistics report job.
func (j *StatsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}
