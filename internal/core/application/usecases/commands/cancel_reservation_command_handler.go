package commands

import (
	"context"

	"rental/internal/core/ports"
)

// CancelReservationCommandHandler handles reservation cancellation.
// Cancelling a confirmed reservation releases its capacity slot for
// other bookings; the terminal record is kept for audit.
type CancelReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
	clock      ports.Clock
}

// NewCancelReservationCommandHandler creates a handler for reservation
// cancellation operations.
func NewCancelReservationCommandHandler(
	uowFactory ReservationUoWFactory, clock ports.Clock,
) CancelReservationCommandHandler {
	return CancelReservationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the cancellation command.
func (h CancelReservationCommandHandler) Handle(ctx context.Context, cmd CancelReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	aggregate, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(h.clock.Now()); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
