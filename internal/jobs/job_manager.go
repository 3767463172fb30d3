package jobs

import (
	"fmt"
	"io"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	fleetReportJob *FleetReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(fleet FleetReader, reportSchedule string, out io.Writer, logger *slog.Logger) *JobManager {
	return &JobManager{
		fleetReportJob: NewFleetReportJob(fleet, reportSchedule, out, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fleetReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start fleet report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fleetReportJob.Stop()
}
