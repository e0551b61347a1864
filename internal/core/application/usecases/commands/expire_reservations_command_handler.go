package commands

import (
	"context"
	"log/slog"

	"rental/internal/core/ports"
)

// ExpireReservationsCommandHandler handles the batch expiry of stale
// draft reservations.
//
// The batch is best-effort per reservation: a draft that fails to
// expire (for example one confirmed by a concurrent request after the
// batch loaded it) is logged and skipped, and the remaining drafts are
// still processed and committed together.
type ExpireReservationsCommandHandler struct {
	uowFactory ReservationUoWFactory
	clock      ports.Clock
	logger     *slog.Logger
}

// NewExpireReservationsCommandHandler creates a handler for the
// reservation expiry batch.
func NewExpireReservationsCommandHandler(
	uowFactory ReservationUoWFactory, clock ports.Clock, logger *slog.Logger,
) ExpireReservationsCommandHandler {
	return ExpireReservationsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "expire_reservations"),
	}
}

// Handle processes the expiry batch and returns how many reservations
// were expired.
func (h ExpireReservationsCommandHandler) Handle(
	ctx context.Context, cmd ExpireReservationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()
	cutoff := now.Add(-cmd.TTL())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	drafts, err := reservationRepo.GetDraftsCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, draft := range drafts {
		if err = draft.Expire(now); err != nil {
			h.logger.WarnContext(ctx, "Skipping reservation that cannot expire",
				"reservationID", draft.ID().String(), "error", err)
			continue
		}

		if err = reservationRepo.Update(ctx, draft); err != nil {
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
