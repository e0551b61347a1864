package commands

import (
	"context"
	"errors"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/reservation"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// ErrBookingWindowNotInFuture is returned when a booking window does
// not start strictly after the current time. Reservations for the past
// or for "right now" are rejected at creation and re-planning.
var ErrBookingWindowNotInFuture = errors.New("booking window must start in the future")

// CreateReservationCommandHandler handles the business logic for
// opening draft reservations. Verifies the customer exists and the
// window lies in the future; no capacity is held until confirmation.
type CreateReservationCommandHandler struct {
	uowFactory BookingUoWFactory
	clock      ports.Clock
}

// NewCreateReservationCommandHandler creates a handler for reservation
// creation operations.
func NewCreateReservationCommandHandler(
	uowFactory BookingUoWFactory, clock ports.Clock,
) CreateReservationCommandHandler {
	return CreateReservationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the reservation creation command.
// The new reservation starts in Draft status.
func (h CreateReservationCommandHandler) Handle(ctx context.Context, cmd CreateReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	period, err := kernel.NewPeriod(cmd.Start(), cmd.End())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if !period.StartsAfter(now) {
		return errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("%w: start %s is not after %s", ErrBookingWindowNotInFuture,
				period.Start(), now))
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	newReservation, err := reservation.NewReservation(
		cmd.ReservationID(), cmd.CustomerID(), cmd.Category(), period, now)
	if err != nil {
		return err
	}

	if err = uow.ReservationRepository().Add(ctx, newReservation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
