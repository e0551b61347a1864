package commands

import (
	"context"

	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
)

// ConfirmReservationCommandHandler handles reservation confirmation.
// Confirmation is the capacity gate of the booking flow: the category's
// fleet and the already-confirmed book are checked inside the same
// transaction, and a conflict aborts before any state changes.
type ConfirmReservationCommandHandler struct {
	uowFactory CapacityUoWFactory
	clock      ports.Clock
}

// NewConfirmReservationCommandHandler creates a handler for
// reservation confirmation operations.
func NewConfirmReservationCommandHandler(
	uowFactory CapacityUoWFactory, clock ports.Clock,
) ConfirmReservationCommandHandler {
	return ConfirmReservationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the confirmation command. Returns a conflict error
// when the category has no remaining capacity over the window.
func (h ConfirmReservationCommandHandler) Handle(ctx context.Context, cmd ConfirmReservationCommand) error {
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

	cars, err := uow.CarRepository().GetAllByCategory(ctx, aggregate.Category())
	if err != nil {
		return err
	}

	confirmed, err := reservationRepo.GetConfirmedByCategory(ctx, aggregate.Category())
	if err != nil {
		return err
	}

	availability := services.NewAvailabilityService()
	if err = availability.CheckCategoryCapacity(
		aggregate.Category(), aggregate.Period(), aggregate.ID(), cars, confirmed); err != nil {
		return err
	}

	if err = aggregate.Confirm(h.clock.Now()); err != nil {
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
