package commands

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/core/domain/model/reservation"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// ErrNoCarAvailable is returned when every car of the reserved
// category is busy over the booking window.
var ErrNoCarAvailable = errors.New("no car available for the reserved category and window")

// PickupCarCommandHandler handles the hand-over of a car against a
// confirmed reservation. It selects a concrete car, creates the
// rental, links it to the reservation, and marks the car rented, all
// in one transaction.
//
// Storage enforces at most one rental per reservation, so two
// concurrent pick-ups of the same reservation cannot both commit: the
// loser fails with an already-exists error and rolls back.
type PickupCarCommandHandler struct {
	uowFactory PickupUoWFactory
	clock      ports.Clock
}

// NewPickupCarCommandHandler creates a handler for pick-up operations.
func NewPickupCarCommandHandler(uowFactory PickupUoWFactory, clock ports.Clock) PickupCarCommandHandler {
	return PickupCarCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the pick-up command. Only Confirmed reservations
// can be fulfilled; the selected car is the free Available car of the
// category with the lowest identifier.
func (h PickupCarCommandHandler) Handle(ctx context.Context, cmd PickupCarCommand) error {
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
	carRepo := uow.CarRepository()
	rentalRepo := uow.RentalRepository()

	aggregate, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}

	if aggregate.Status() != reservation.Confirmed {
		return errs.NewInvalidStatusTransitionErrorWithCause(
			aggregate.Status().String(), rental.Active.String(),
			errors.New("only confirmed reservations can be picked up"))
	}

	cars, err := carRepo.GetAllByCategory(ctx, aggregate.Category())
	if err != nil {
		return err
	}

	activeRentals, err := rentalRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	reservationIDs := make([]kernel.UUID, 0, len(activeRentals))
	for _, active := range activeRentals {
		reservationIDs = append(reservationIDs, active.ReservationID())
	}
	linkedReservations, err := reservationRepo.GetAllByIDs(ctx, reservationIDs)
	if err != nil {
		return err
	}

	availability := services.NewAvailabilityService()
	selectedCar, err := availability.FindAvailableCar(
		aggregate.Category(), aggregate.Period(), cars, activeRentals, linkedReservations)
	if err != nil {
		return err
	}
	if selectedCar == nil {
		return errs.NewConflictErrorWithCause("category", ErrNoCarAvailable)
	}

	newRental, err := rental.NewRental(
		cmd.RentalID(), aggregate.ID(), aggregate.CustomerID(), selectedCar.ID(),
		h.clock.Now(), cmd.FuelLevelOut(), cmd.KmOut())
	if err != nil {
		return err
	}

	if err = aggregate.AssignRental(newRental.ID()); err != nil {
		return err
	}

	if err = selectedCar.MarkAsRented(); err != nil {
		return err
	}

	if err = rentalRepo.Add(ctx, newRental); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = carRepo.Update(ctx, selectedCar); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
