// Package jobs provides scheduled background tasks for the cargo fleet.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. FleetReportJob - prints every ship's description and logs its load figures
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(fleetQueryHandler, "*/10 * * * * *", os.Stdout, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. The report
// schedule comes from configuration and defaults to every ten seconds.
//
// # Error Handling
//
// A failing report run is logged and the schedule keeps going. An invalid
// schedule makes StartAll fail.
package jobs
