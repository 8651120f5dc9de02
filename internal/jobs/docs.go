// Package jobs provides scheduled background tasks for the logistics platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. TokenCleanupJob - Runs hourly to purge expired email verification and
// password reset tokens from user accounts
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeExpiredTokensHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "0 * * * *", running at the top
// of every hour. Expired tokens are already rejected at verification time,
// so the purge is a hygiene pass rather than a correctness requirement.
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next scheduled run.
package jobs
