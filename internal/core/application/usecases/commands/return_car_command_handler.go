package commands

import (
	"context"

	"rental/internal/core/ports"
)

// ReturnCarCommandHandler handles the return of a rented car. The
// rental is closed with its incoming readings and the car goes back to
// the Available pool in the same transaction.
type ReturnCarCommandHandler struct {
	uowFactory ReturnUoWFactory
	clock      ports.Clock
}

// NewReturnCarCommandHandler creates a handler for return operations.
func NewReturnCarCommandHandler(uowFactory ReturnUoWFactory, clock ports.Clock) ReturnCarCommandHandler {
	return ReturnCarCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the return command. The domain rejects decreasing
// odometer readings and double returns before anything is persisted.
func (h ReturnCarCommandHandler) Handle(ctx context.Context, cmd ReturnCarCommand) error {
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

	rentalRepo := uow.RentalRepository()
	carRepo := uow.CarRepository()

	aggregate, err := rentalRepo.Get(ctx, cmd.RentalID())
	if err != nil {
		return err
	}

	if err = aggregate.ReturnCar(h.clock.Now(), cmd.FuelLevelIn(), cmd.KmIn()); err != nil {
		return err
	}

	rentedCar, err := carRepo.Get(ctx, aggregate.CarID())
	if err != nil {
		return err
	}

	if err = rentedCar.MarkAsAvailable(); err != nil {
		return err
	}

	if err = rentalRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = carRepo.Update(ctx, rentedCar); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
