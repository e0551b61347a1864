package jobs

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationExpiryJob manages the scheduled expiry of stale draft
// reservations. Runs every minute and expires drafts older than the
// configured time-to-live.
type ReservationExpiryJob struct {
	handler commands.ExpireReservationsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationExpiryJob creates a new job for expiring stale drafts.
// Uses ExpireReservationsCommandHandler to process the expiry batch
// once a minute.
func NewReservationExpiryJob(
	handler commands.ExpireReservationsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *ReservationExpiryJob {
	return &ReservationExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reservation_expiry_job"),
	}
}

// Start begins the reservation expiry job to run every minute.
func (j *ReservationExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireReservationsCommand(j.ttl)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale draft reservations", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation expiry job started (running every minute)")
	return nil
}

// Stop stops the reservation expiry job.
func (j *ReservationExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation expiry job stopped")
}
