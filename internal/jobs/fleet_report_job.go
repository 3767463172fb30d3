package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"cargo/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the fleet report every ten seconds.
const DefaultReportSchedule = "*/10 * * * * *"

// FleetReader is the query side the report job reads from.
type FleetReader interface {
	Handle(ctx context.Context, query queries.GetFleetQuery) ([]queries.ShipSummary, error)
}

// FleetReportJob periodically prints the description of every ship and logs
// its load figures.
type FleetReportJob struct {
	fleet    FleetReader
	schedule string
	out      io.Writer
	cron     *cron.Cron
	logger   *slog.Logger

	mu sync.Mutex
}

// NewFleetReportJob creates a report job writing to out on the given cron
// schedule (seconds field included). An empty schedule means DefaultReportSchedule.
func NewFleetReportJob(fleet FleetReader, schedule string, out io.Writer, logger *slog.Logger) *FleetReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}
	return &FleetReportJob{
		fleet:    fleet,
		schedule: schedule,
		out:      out,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fleet_report_job"),
	}
}

// Start schedules the report.
func (j *FleetReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Fleet report job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report. Concurrent runs are serialized so their output
// does not interleave.
func (j *FleetReportJob) Run(ctx context.Context) error {
	fleet, err := j.fleet.Handle(ctx, queries.NewGetFleetQuery())
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	for _, ship := range fleet {
		if _, err = fmt.Fprintln(j.out, ship.Description); err != nil {
			return err
		}
		j.logger.InfoContext(ctx, "Ship status",
			"ship", ship.Name,
			"containers", ship.ContainerCount,
			"max_containers", ship.MaxContainers,
			"weight_t", ship.TotalWeight,
			"max_weight_t", ship.MaxWeight,
		)
	}
	return nil
}

// Stop stops the schedule and waits for a running report to finish.
func (j *FleetReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fleet report job stopped")
}
