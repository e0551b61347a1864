package commands

import (
	"context"
	"fmt"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// ChangeReservationPeriodCommandHandler handles re-planning of draft
// reservations. The new window replaces the old one wholesale and must
// obey the same future-only policy as creation.
type ChangeReservationPeriodCommandHandler struct {
	uowFactory ReservationUoWFactory
	clock      ports.Clock
}

// NewChangeReservationPeriodCommandHandler creates a handler for
// reservation re-planning operations.
func NewChangeReservationPeriodCommandHandler(
	uowFactory ReservationUoWFactory, clock ports.Clock,
) ChangeReservationPeriodCommandHandler {
	return ChangeReservationPeriodCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the re-planning command. Only drafts can change
// their window; the aggregate rejects every other status.
func (h ChangeReservationPeriodCommandHandler) Handle(
	ctx context.Context, cmd ChangeReservationPeriodCommand,
) error {
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

	reservationRepo := uow.ReservationRepository()
	aggregate, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangePeriod(period); err != nil {
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
