// Package jobs provides scheduled background tasks for the booking
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the rental service.
//
// # Available Jobs
//
// 1. ReservationExpiryJob - Runs every minute to expire stale draft
// reservations whose time-to-live has elapsed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireReservationsHandler, reservationTTL, logger)
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
// The expiry job uses the cron expression "0 * * * * *", once a minute
// at the top of the minute. Expiry is an eventual-consistency sweep:
// a stale draft may survive up to a minute past its deadline, which
// callers of the confirm operation must tolerate anyway since the
// state machine rejects confirming an expired draft.
//
// # Error Handling
//
// The expiry batch is best-effort per reservation: drafts that cannot
// expire are skipped inside the handler, and only infrastructure
// failures surface here and get logged.
package jobs
